package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/homestock-server/internal/api/http/response"
	"github.com/dtroode/homestock-server/internal/logger"
	"github.com/dtroode/homestock-server/internal/model"
)

const defaultExpiringDays = 7

type Inventory struct {
	service          InventoryService
	defaultThreshold float64
	logger           *logger.Logger
}

func NewInventory(service InventoryService, defaultThreshold float64, logger *logger.Logger) *Inventory {
	return &Inventory{service: service, defaultThreshold: defaultThreshold, logger: logger}
}

// date accepts either RFC 3339 timestamps or plain YYYY-MM-DD dates.
type date struct {
	time.Time
}

func (d *date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

type inventoryRequest struct {
	Name       string     `json:"name"`
	Quantity   float64    `json:"quantity"`
	Unit       model.Unit `json:"unit"`
	ExpiryDate *date      `json:"expiryDate"`
	Category   *uuid.UUID `json:"category"`
}

func (req inventoryRequest) item() model.InventoryItem {
	item := model.InventoryItem{
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		CategoryID: req.Category,
	}
	if req.ExpiryDate != nil {
		t := req.ExpiryDate.Time
		item.ExpiryDate = &t
	}
	return item
}

func (h *Inventory) Create(w http.ResponseWriter, r *http.Request) {
	var req inventoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	item, err := h.service.Create(r.Context(), req.item())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusCreated, item)
}

func (h *Inventory) List(w http.ResponseWriter, r *http.Request) {
	var filter model.InventoryFilter
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			handleError(w, h.logger, fmt.Errorf("%w: invalid categoryId", model.ErrInvalidArgument))
			return
		}
		filter.CategoryID = &id
	}

	items, err := h.service.List(r.Context(), filter)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, nonNil(items))
}

func (h *Inventory) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *Inventory) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	var req inventoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	item, err := h.service.Update(r.Context(), id, req.item())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *Inventory) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleError(w, h.logger, err)
		return
	}
	response.Message(w, http.StatusOK, "Item deleted")
}

func (h *Inventory) Expiring(w http.ResponseWriter, r *http.Request) {
	days := defaultExpiringDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			handleError(w, h.logger, fmt.Errorf("%w: days must be a positive integer", model.ErrInvalidArgument))
			return
		}
		days = n
	}

	items, err := h.service.Expiring(r.Context(), time.Duration(days)*24*time.Hour)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, nonNil(items))
}

func (h *Inventory) Expired(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.Expired(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, nonNil(items))
}

func (h *Inventory) LowStock(w http.ResponseWriter, r *http.Request) {
	threshold, err := thresholdParam(r, h.defaultThreshold)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	items, err := h.service.LowStock(r.Context(), threshold)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, nonNil(items))
}

func thresholdParam(r *http.Request, fallback float64) (float64, error) {
	raw := r.URL.Query().Get("threshold")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid threshold", model.ErrInvalidArgument)
	}
	return v, nil
}

// nonNil makes empty results encode as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
