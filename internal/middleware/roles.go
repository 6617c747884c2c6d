package middleware

import (
	"net/http"

	"pet-clinic/internal/platform/apperr"
	"pet-clinic/internal/platform/httpx"
	"pet-clinic/internal/ports/auth"
)

// RequireRole corta con 401 si no hay caller y 403 si no tiene ninguno de los roles.
func RequireRole(roles ...auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := Caller(w, r)
			if !ok {
				return
			}
			if !claims.HasAnyRole(roles...) {
				httpx.Fail(w, apperr.KindForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
