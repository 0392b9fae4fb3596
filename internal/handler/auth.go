package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/TahaKhan8899/goal-tracker/internal/repository"
	"github.com/TahaKhan8899/goal-tracker/internal/service"
)

type AuthHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

func NewAuthHandler(userService *service.UserService, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
	}
}

// Login grants access to known emails only; there is no
// self-registration. Success returns a signed, expiring session token
// the client may present as a bearer credential.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Email == "" {
		respondError(w, http.StatusBadRequest, "Email is required")
		return
	}

	_, err = h.userService.ByEmail(req.Email)
	if err == repository.ErrUserNotFound {
		respondError(w, http.StatusUnauthorized, "You're not in the system")
		return
	}
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	token, err := h.authService.IssueToken(req.Email)
	if err != nil {
		slog.Error("failed to issue session token", "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Token   string `json:"token"`
	}{true, "Login successful", token})
}
