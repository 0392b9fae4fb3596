package handler

import (
	"encoding/json"
	"net/http"

	"github.com/TahaKhan8899/goal-tracker/internal/service"
)

type RewriteHandler struct {
	rewriteService *service.RewriteService
}

func NewRewriteHandler(rewriteService *service.RewriteService) *RewriteHandler {
	return &RewriteHandler{
		rewriteService: rewriteService,
	}
}

// Rewrite returns a single-sentence SMART version of the submitted
// goal text. The service falls back to the original text on any
// failure, so this handler has no 500 path of its own.
func (h *RewriteHandler) Rewrite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Goal string `json:"goal"`
	}

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Goal == "" {
		respondError(w, http.StatusBadRequest, "Goal text is required")
		return
	}

	rewritten := h.rewriteService.Rewrite(r.Context(), req.Goal)

	writeJSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Goal    string `json:"goal"`
	}{true, rewritten})
}
