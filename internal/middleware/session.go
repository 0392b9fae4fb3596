package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/TahaKhan8899/goal-tracker/internal/ctxkeys"
	"github.com/TahaKhan8899/goal-tracker/internal/service"
)

// Session resolves a bearer session token into the caller's email and
// stores it in the request context. Requests without a token pass
// through untouched; handlers that received a verified session email
// prefer it over a client-supplied email parameter.
func Session(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				next.ServeHTTP(w, r)
				return
			}

			email, err := authService.VerifyToken(strings.TrimSpace(token))
			if err != nil {
				slog.Debug("session token rejected", "error", err, "path", r.URL.Path)
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithSessionEmail(r.Context(), email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
