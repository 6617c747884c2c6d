package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-clinic/internal/platform/logger"
	"pet-clinic/internal/platform/ratelimit"
	"pet-clinic/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAuthContext_DevHeaders(t *testing.T) {
	var got auth.Claims
	h := AuthContext(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetClaims(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(DebugUserHeader, "vet-1")
	req.Header.Set(DebugRoleHeader, "vet, admin, bogus")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "vet-1", got.UserID)
	assert.Equal(t, []auth.Role{auth.RoleVet, auth.RoleAdmin}, got.Roles)
}

func TestAuthContext_DevDefaultsToOwner(t *testing.T) {
	var got auth.Claims
	h := AuthContext(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetClaims(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(DebugUserHeader, "owner-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, got.HasRole(auth.RoleOwner))
}

func TestRequireRole(t *testing.T) {
	h := AuthContext(nil)(RequireRole(auth.RoleAdmin)(http.HandlerFunc(okHandler)))

	cases := []struct {
		name   string
		user   string
		role   string
		status int
	}{
		{"anonymous", "", "", http.StatusUnauthorized},
		{"owner", "u1", "owner", http.StatusForbidden},
		{"admin", "u2", "admin", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.user != "" {
				req.Header.Set(DebugUserHeader, tc.user)
				req.Header.Set(DebugRoleHeader, tc.role)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestRateLimit_Rejects(t *testing.T) {
	l := ratelimit.NewLocalLimiter(ratelimit.Config{Limit: 1, Window: time.Hour})
	h := RateLimit(l, "login", ByIP, logger.NewNop())(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = "10.0.0.1:5555"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "rate_limited")
}

func TestRecover_RendersInternalError(t *testing.T) {
	h := Recover(logger.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"internal"`)
}
