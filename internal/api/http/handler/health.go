package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dtroode/homestock-server/internal/api/http/response"
	"github.com/dtroode/homestock-server/internal/logger"
)

const healthTimeout = 2 * time.Second

type Health struct {
	db     Pinger
	logger *logger.Logger
}

func NewHealth(db Pinger, logger *logger.Logger) *Health {
	return &Health{db: db, logger: logger}
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("Health handler: database ping failed", "error", err.Error())
		response.JSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Database: "down"})
		return
	}
	response.JSON(w, http.StatusOK, healthResponse{Status: "ok", Database: "up"})
}
