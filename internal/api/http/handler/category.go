package handler

import (
	"net/http"

	"github.com/dtroode/homestock-server/internal/api/http/response"
	"github.com/dtroode/homestock-server/internal/logger"
)

type Category struct {
	service CategoryService
	logger  *logger.Logger
}

func NewCategory(service CategoryService, logger *logger.Logger) *Category {
	return &Category{service: service, logger: logger}
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Category) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	c, err := h.service.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusCreated, c)
}

func (h *Category) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, categories)
}

func (h *Category) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, c)
}

func (h *Category) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	var req categoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	c, err := h.service.Update(r.Context(), id, req.Name, req.Description)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, c)
}

func (h *Category) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleError(w, h.logger, err)
		return
	}
	response.Message(w, http.StatusOK, "Category deleted")
}
