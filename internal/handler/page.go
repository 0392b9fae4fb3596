package handler

import (
	"fmt"
	"net/http"

	"github.com/TahaKhan8899/goal-tracker/internal/model"
)

type PageHandler struct {
	appName string
}

func NewPageHandler(appName string) *PageHandler {
	return &PageHandler{appName: appName}
}

const statusUpdatedPage = `<!DOCTYPE html>
<html>
<head><title>%s</title></head>
<body style="font-family: sans-serif; max-width: 600px; margin: 80px auto; text-align: center;">
  <h1>%s</h1>
  <p>%s</p>
</body>
</html>
`

// StatusUpdated is the landing page for the one-click email links.
func (h *PageHandler) StatusUpdated(w http.ResponseWriter, r *http.Request) {
	var heading, detail string
	switch r.URL.Query().Get("status") {
	case model.StatusCompleted:
		heading = "Nice work!"
		detail = "Your goal is marked as completed."
	case model.StatusIncomplete:
		heading = "Noted."
		detail = "Your goal is marked as incomplete. There's always next time."
	default:
		heading = "All set."
		detail = "Your goal status has been updated."
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, statusUpdatedPage, h.appName, heading, detail)
}
