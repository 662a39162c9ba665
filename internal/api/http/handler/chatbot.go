package handler

import (
	"net/http"

	"github.com/dtroode/homestock-server/internal/api/http/response"
	"github.com/dtroode/homestock-server/internal/logger"
)

type Chatbot struct {
	service ChatbotService
	logger  *logger.Logger
}

func NewChatbot(service ChatbotService, logger *logger.Logger) *Chatbot {
	return &Chatbot{service: service, logger: logger}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (h *Chatbot) Reply(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	reply, err := h.service.Reply(r.Context(), req.Message)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, chatResponse{Reply: reply})
}
