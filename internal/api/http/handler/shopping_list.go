package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dtroode/homestock-server/internal/api/http/response"
	"github.com/dtroode/homestock-server/internal/logger"
	"github.com/dtroode/homestock-server/internal/model"
)

// ShoppingList serves per-user shopping lists. Users act on their own list;
// admins may act on anyone's.
type ShoppingList struct {
	service          ShoppingListService
	contextManager   model.ContextManager
	defaultThreshold float64
	logger           *logger.Logger
}

func NewShoppingList(
	service ShoppingListService,
	contextManager model.ContextManager,
	defaultThreshold float64,
	logger *logger.Logger,
) *ShoppingList {
	return &ShoppingList{
		service:          service,
		contextManager:   contextManager,
		defaultThreshold: defaultThreshold,
		logger:           logger,
	}
}

type shoppingListResponse struct {
	ShoppingList model.ShoppingList `json:"shoppingList"`
}

type addItemRequest struct {
	UserID   uuid.UUID `json:"userId"`
	ItemName string    `json:"itemName"`
	Quantity float64   `json:"quantity"`
}

func (h *ShoppingList) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.targetUser(w, r)
	if !ok {
		return
	}

	list, err := h.service.GetList(r.Context(), userID)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	writeList(w, http.StatusOK, list)
}

func (h *ShoppingList) Add(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}
	if req.UserID == uuid.Nil {
		if claims, ok := h.contextManager.GetClaimsFromContext(r.Context()); ok {
			req.UserID = claims.UserID
		}
	}
	if !h.allowed(w, r, req.UserID) {
		return
	}

	list, err := h.service.AddManualItem(r.Context(), req.UserID, req.ItemName, req.Quantity)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	writeList(w, http.StatusCreated, list)
}

func (h *ShoppingList) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.targetUser(w, r)
	if !ok {
		return
	}

	name := chi.URLParam(r, "itemName")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
	}

	list, err := h.service.RemoveItem(r.Context(), userID, name)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	writeList(w, http.StatusOK, list)
}

func (h *ShoppingList) AutoAdd(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.targetUser(w, r)
	if !ok {
		return
	}

	threshold, err := thresholdParam(r, h.defaultThreshold)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	list, err := h.service.AutoReconcile(r.Context(), userID, threshold)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	writeList(w, http.StatusOK, list)
}

// targetUser parses {userId} and checks the caller may access it.
func (h *ShoppingList) targetUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuidParam(r, "userId")
	if err != nil {
		handleError(w, h.logger, err)
		return uuid.Nil, false
	}
	return userID, h.allowed(w, r, userID)
}

func (h *ShoppingList) allowed(w http.ResponseWriter, r *http.Request, userID uuid.UUID) bool {
	claims, ok := h.contextManager.GetClaimsFromContext(r.Context())
	if !ok {
		handleError(w, h.logger, model.ErrUnauthorized)
		return false
	}
	if claims.UserID != userID && claims.Role != model.RoleAdmin {
		handleError(w, h.logger, model.ErrForbidden)
		return false
	}
	return true
}

func writeList(w http.ResponseWriter, status int, list model.ShoppingList) {
	if list.Items == nil {
		list.Items = []model.ShoppingListItem{}
	}
	response.JSON(w, status, shoppingListResponse{ShoppingList: list})
}
