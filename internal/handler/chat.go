// Package handler provides HTTP handlers for the support API.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/yoonjun1204/chatbot-for-customer-support/internal/middleware"
	"github.com/yoonjun1204/chatbot-for-customer-support/internal/model"
	"github.com/yoonjun1204/chatbot-for-customer-support/internal/service"
	"github.com/yoonjun1204/chatbot-for-customer-support/pkg/logger"
)

// ChatHandler handles the chat and conversation endpoints.
type ChatHandler struct {
	chatService   *service.ChatService
	conversations *service.ConversationService
	logger        *logger.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chatSvc *service.ChatService, convSvc *service.ConversationService, log *logger.Logger) *ChatHandler {
	return &ChatHandler{
		chatService:   chatSvc,
		conversations: convSvc,
		logger:        log,
	}
}

// Chat handles POST /api/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateMessageContent(req.Message); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := h.chatService.Handle(&req)
	writeJSON(w, http.StatusOK, resp)
}

// Messages handles GET /api/conversations/{id}/messages
func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid conversation ID")
		return
	}

	msgs, err := h.conversations.Messages(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}

	writeJSON(w, http.StatusOK, msgs)
}
