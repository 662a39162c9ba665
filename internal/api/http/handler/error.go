package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/homestock-server/internal/api/http/response"
	"github.com/dtroode/homestock-server/internal/logger"
	"github.com/dtroode/homestock-server/internal/model"
)

type errorMapping struct {
	err     error
	status  int
	message string
}

// An empty message means the error text itself is returned.
var errorMappings = []errorMapping{
	{model.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
	{model.ErrInvalidArgument, http.StatusBadRequest, ""},
	{model.ErrUnauthorized, http.StatusUnauthorized, "Not authorized"},
	{model.ErrTokenExpired, http.StatusUnauthorized, "Not authorized"},
	{model.ErrForbidden, http.StatusForbidden, "Access denied"},
	{model.ErrNotFound, http.StatusNotFound, ""},
	{model.ErrEmailTaken, http.StatusConflict, ""},
	{model.ErrCategoryExists, http.StatusConflict, ""},
	{model.ErrDuplicateItem, http.StatusConflict, ""},
	{model.ErrVersionConflict, http.StatusConflict, ""},
	{model.ErrUpstream, http.StatusBadGateway, "chatbot service unavailable"},
}

func handleError(w http.ResponseWriter, logger *logger.Logger, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			msg := m.message
			if msg == "" {
				msg = err.Error()
			}
			response.Message(w, m.status, msg)
			return
		}
	}

	logger.Error("HTTP handler: internal error", "error", err.Error())
	response.Message(w, http.StatusInternalServerError, "internal server error")
}
