package routes

import (
	"net/http"

	"github.com/TahaKhan8899/goal-tracker/internal/app"
	"github.com/TahaKhan8899/goal-tracker/internal/handler"
	"github.com/TahaKhan8899/goal-tracker/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.UserService, app.AuthService)
	goal := handler.NewGoalHandler(app.GoalService)
	admin := handler.NewAdminHandler(app.GoalService, app.Cfg.AdminEmails)
	rewrite := handler.NewRewriteHandler(app.RewriteService)
	reminder := handler.NewReminderHandler(app.ReminderService)
	page := handler.NewPageHandler(app.Cfg.AppName)

	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/auth/login", auth.Login)

	// Goals
	mux.HandleFunc("GET /api/goals", goal.List)
	mux.HandleFunc("POST /api/goals", goal.Create)
	mux.HandleFunc("PUT /api/goals/{id}", goal.Update)
	mux.HandleFunc("DELETE /api/goals/{id}", goal.Delete)

	// One-click status flip from reminder emails
	mux.HandleFunc("GET /api/goals/updateStatus", goal.UpdateStatus)
	mux.HandleFunc("GET /status-updated", page.StatusUpdated)

	// Admin
	mux.HandleFunc("GET /api/admin/getAllGoals", admin.AllGoals)

	// Goal rewriting
	mux.HandleFunc("POST /api/rewriteGoal", rewrite.Rewrite)

	// Batch email triggers (hit by an external scheduler)
	mux.HandleFunc("GET /api/reminders/sendReminders", reminder.SendReminders)
	mux.HandleFunc("GET /api/reminders/sendDigest", reminder.SendDigest)

	// Rate limiting guards the API surface; the limiter middleware also
	// attaches the security headers to every response.
	rateLimiter := middleware.NewRateLimiter(app.Cfg.RateLimit, app.Cfg.RateLimitWindow)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		rateLimiter.Middleware("/api/"),
		middleware.RequestLogging,
		middleware.Session(app.AuthService),
	)
}
