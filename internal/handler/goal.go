package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/TahaKhan8899/goal-tracker/internal/model"
	"github.com/TahaKhan8899/goal-tracker/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

type goalResponse struct {
	Success bool        `json:"success"`
	Goal    *model.Goal `json:"goal"`
}

type goalsResponse struct {
	Success bool          `json:"success"`
	Goals   []*model.Goal `json:"goals"`
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	email := callerEmail(r, r.URL.Query().Get("email"))
	if email == "" {
		respondError(w, http.StatusBadRequest, "Email is required")
		return
	}

	goals, err := h.goalService.ByOwner(email)
	if err != nil {
		slog.Error("failed to list goals", "error", err, "email", email)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, http.StatusOK, goalsResponse{Success: true, Goals: goals})
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email      string `json:"email"`
		Goal       string `json:"goal"`
		TargetDate string `json:"targetDate"`
	}

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := callerEmail(r, req.Email)
	if email == "" || req.Goal == "" || req.TargetDate == "" {
		respondError(w, http.StatusBadRequest, "Email, goal, and target date are required")
		return
	}

	goal, err := h.goalService.Create(email, req.Goal, req.TargetDate)
	if err == service.ErrInvalidTargetDate {
		respondError(w, http.StatusBadRequest, "Target date must be YYYY-MM-DD")
		return
	}
	if err != nil {
		slog.Error("failed to create goal", "error", err, "email", email)
		respondError(w, http.StatusInternalServerError, "Failed to create goal")
		return
	}

	writeJSON(w, http.StatusOK, goalResponse{Success: true, Goal: goal})
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	goalID := r.PathValue("id")
	if goalID == "" {
		respondError(w, http.StatusBadRequest, "Goal ID is required")
		return
	}

	var req struct {
		Goal       *string `json:"goal"`
		TargetDate *string `json:"targetDate"`
		Status     *string `json:"status"`
	}

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	goal, err := h.goalService.Update(goalID, service.GoalUpdates{
		Description: req.Goal,
		TargetDate:  req.TargetDate,
		Status:      req.Status,
	})

	switch err {
	case nil:
	case service.ErrEmptyUpdate:
		respondError(w, http.StatusBadRequest, "No updates provided")
		return
	case service.ErrInvalidStatus:
		respondError(w, http.StatusBadRequest, "Invalid status")
		return
	case service.ErrInvalidTargetDate:
		respondError(w, http.StatusBadRequest, "Target date must be YYYY-MM-DD")
		return
	default:
		slog.Error("failed to update goal", "error", err, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "Failed to update goal")
		return
	}

	writeJSON(w, http.StatusOK, goalResponse{Success: true, Goal: goal})
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	goalID := r.PathValue("id")
	if goalID == "" {
		respondError(w, http.StatusBadRequest, "Goal ID is required")
		return
	}

	err := h.goalService.Delete(goalID)
	if err != nil {
		slog.Error("failed to delete goal", "error", err, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "Failed to delete goal")
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{true, "Goal deleted"})
}

// UpdateStatus is the one-click target from reminder emails: a plain
// navigation flips the goal and redirects to a confirmation page. The
// link carries no signature or expiry, so possession of the URL is the
// only credential.
func (h *GoalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	goalID := q.Get("id")
	status := q.Get("status")
	email := q.Get("email")

	if goalID == "" || status == "" || email == "" {
		respondError(w, http.StatusBadRequest, "Missing required parameters")
		return
	}

	if status != model.StatusCompleted && status != model.StatusIncomplete {
		respondError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	_, err := h.goalService.UpdateStatus(goalID, status)
	if err != nil {
		slog.Error("failed to update goal status", "error", err, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "Failed to update goal status")
		return
	}

	http.Redirect(w, r, "/status-updated?status="+status, http.StatusFound)
}
