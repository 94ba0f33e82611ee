package auth

import (
	"net/http"
	"strconv"
)

// Middleware resolves the caller's identity from the gateway-provided headers
// and attaches it to the request context. An absent or malformed user id
// leaves the request anonymous; handlers decide what that means.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := Identity{}

		if raw := r.Header.Get("X-User-ID"); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id > 0 {
				identity.UserID = uint(id)
				identity.Role = r.Header.Get("X-User-Role")
			}
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}
