package middleware

import (
	"context"
	"net/http"

	"folio-backend/internal/auth"
	"folio-backend/internal/transport"
)

type adminEmailKey struct{}

// AdminAuth gates the admin surface. With no session cookie, or an invalid
// one, the request never reaches the protected handler; the front end maps
// the 401 to its login redirect.
func AdminAuth(manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if manager == nil {
				transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
				return
			}

			cookie, err := r.Cookie(auth.AccessCookieName)
			if err != nil || cookie.Value == "" {
				transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}

			claims, err := manager.Parse(cookie.Value)
			if err != nil || claims.Role != auth.RoleAdmin {
				transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}

			ctx := context.WithValue(r.Context(), adminEmailKey{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func AdminEmailFromContext(ctx context.Context) string {
	if v := ctx.Value(adminEmailKey{}); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
