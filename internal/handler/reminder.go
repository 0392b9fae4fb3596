package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/TahaKhan8899/goal-tracker/internal/service"
)

// ReminderHandler exposes the batch email triggers, intended to be hit
// by an external scheduler (cron hitting the URL).
type ReminderHandler struct {
	reminderService *service.ReminderService
}

func NewReminderHandler(reminderService *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
	}
}

func (h *ReminderHandler) SendReminders(w http.ResponseWriter, r *http.Request) {
	results, err := h.reminderService.SendReminders()
	if err != nil {
		slog.Error("failed to send reminders", "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if len(results) == 0 {
		writeJSON(w, http.StatusOK, struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}{true, "No reminders to send today"})
		return
	}

	sent := 0
	for _, result := range results {
		if result.Sent {
			sent++
		}
	}

	writeJSON(w, http.StatusOK, struct {
		Success bool                     `json:"success"`
		Message string                   `json:"message"`
		Results []service.ReminderResult `json:"results"`
	}{true, fmt.Sprintf("Sent %d reminders", sent), results})
}

func (h *ReminderHandler) SendDigest(w http.ResponseWriter, r *http.Request) {
	results, err := h.reminderService.SendDigests()
	if err != nil {
		slog.Error("failed to send digests", "error", err)
		respondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	if len(results) == 0 {
		writeJSON(w, http.StatusOK, struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}{true, "No users to send digests to"})
		return
	}

	sent := 0
	for _, result := range results {
		if result.Sent {
			sent++
		}
	}

	writeJSON(w, http.StatusOK, struct {
		Success bool                   `json:"success"`
		Message string                 `json:"message"`
		Results []service.DigestResult `json:"results"`
	}{true, fmt.Sprintf("Sent %d weekly digests", sent), results})
}
