package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"pet-clinic/internal/platform/apperr"
	"pet-clinic/internal/platform/httpx"
	"pet-clinic/internal/platform/logger"
	"pet-clinic/internal/platform/metrics"
	"pet-clinic/internal/platform/ratelimit"
)

// KeyFunc arma la clave de rate limit para un request.
type KeyFunc func(r *http.Request) string

// ByIP usa r.RemoteAddr (ya normalizado por chimw.RealIP).
func ByIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

// ByUser usa el caller autenticado y cae a IP si no hay claims.
func ByUser(r *http.Request) string {
	if claims, ok := GetClaims(r.Context()); ok && claims.UserID != "" {
		return "user:" + claims.UserID
	}
	return ByIP(r)
}

// RateLimit responde 429 al superar el límite. Si el limiter falla
// (p.ej. Redis caído) el request pasa y se loguea.
func RateLimit(l ratelimit.Limiter, name string, key KeyFunc, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l == nil {
				next.ServeHTTP(w, r)
				return
			}

			res, err := l.Allow(r.Context(), name+":"+key(r))
			if err != nil {
				log.Warn("rate limiter unavailable", map[string]any{"err": err, "route": name})
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			if !res.Allowed {
				retry := int(time.Until(res.ResetAt).Seconds())
				if retry < 1 {
					retry = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				metrics.RecordRateLimitRejection(name)
				httpx.Fail(w, apperr.KindRateLimited, "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
