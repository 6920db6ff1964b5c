package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/yoonjun1204/chatbot-for-customer-support/internal/middleware"
	"github.com/yoonjun1204/chatbot-for-customer-support/internal/model"
	"github.com/yoonjun1204/chatbot-for-customer-support/internal/service"
	"github.com/yoonjun1204/chatbot-for-customer-support/pkg/logger"
)

// LoginHandler handles the demo login endpoint.
type LoginHandler struct {
	directory *service.Directory
	logger    *logger.Logger
}

// NewLoginHandler creates a new login handler.
func NewLoginHandler(directory *service.Directory, log *logger.Logger) *LoginHandler {
	return &LoginHandler{
		directory: directory,
		logger:    log,
	}
}

// Login handles POST /api/login
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := middleware.ValidateEmail(req.Email); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, ok := h.directory.Authenticate(req.Email, req.Password)
	if !ok {
		h.logger.Info("login rejected", zap.String("email", req.Email))
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
