package httpx

import (
	"net/http"
	"strings"

	"bookstore/internal/auth"
)

// AuthMiddleware guards the mutation routes. Query routes stay public, so
// the middleware is applied per-route rather than globally.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "missing or malformed Authorization header", nil)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token", nil)
				return
			}

			ctx := ContextWithStaff(r.Context(), claims.Sub, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
