package handler

import (
	"log/slog"
	"net/http"

	"github.com/TahaKhan8899/goal-tracker/internal/service"
)

type AdminHandler struct {
	goalService *service.GoalService
	adminEmails map[string]bool
}

func NewAdminHandler(goalService *service.GoalService, adminEmails []string) *AdminHandler {
	allowed := make(map[string]bool, len(adminEmails))
	for _, email := range adminEmails {
		allowed[email] = true
	}

	return &AdminHandler{
		goalService: goalService,
		adminEmails: allowed,
	}
}

// AllGoals returns every user's goals. Authorization is a fixed
// allow-list check on the caller's email.
func (h *AdminHandler) AllGoals(w http.ResponseWriter, r *http.Request) {
	email := callerEmail(r, r.URL.Query().Get("email"))
	if !h.adminEmails[email] {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	goals, err := h.goalService.All()
	if err != nil {
		slog.Error("failed to list all goals", "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, goalsResponse{Success: true, Goals: goals})
}
