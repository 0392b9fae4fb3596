package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/TahaKhan8899/goal-tracker/internal/ctxkeys"
)

// Every API response is a {success, ...} envelope paired with a
// conventional status code: 400 validation, 401 auth, 500 unexpected.

type apiError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiError{Success: false, Message: message})
}

// callerEmail prefers the verified session identity over the
// client-supplied email parameter.
func callerEmail(r *http.Request, fallback string) string {
	if email := ctxkeys.SessionEmail(r.Context()); email != "" {
		return email
	}
	return fallback
}
