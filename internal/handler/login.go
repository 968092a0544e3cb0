package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/adboard/adboard/internal/handler/dto"
	"github.com/adboard/adboard/internal/service"
)

// LoginHandler handles credential verification and token issuance.
type LoginHandler struct {
	svc    *service.AuthService
	logger *slog.Logger
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc *service.AuthService, logger *slog.Logger) *LoginHandler {
	return &LoginHandler{
		svc:    svc,
		logger: logger,
	}
}

// Login handles POST /login.
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.svc.Login(r.Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "incorrect login or password")
			return
		}
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.logger.Info("token_issued", "user_id", token.UserID)

	writeJSON(w, http.StatusOK, dto.LoginResponse{Token: token.ID.String()})
}
