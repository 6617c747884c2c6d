// Package jwt implementa auth.AuthVerifier y auth.TokenIssuer con tokens HS256
// firmados por el propio servicio.
package jwt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-clinic/internal/ports/auth"

	gojwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenEmpty    = errors.New("token is empty")
	ErrNotConfigured = errors.New("jwt secret not configured")
)

const issuer = "pet-clinic"

type claims struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	gojwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (m *Manager) Issue(_ context.Context, c auth.Claims) (string, time.Time, error) {
	if m == nil || len(m.secret) == 0 {
		return "", time.Time{}, ErrNotConfigured
	}
	if strings.TrimSpace(c.UserID) == "" {
		return "", time.Time{}, errors.New("claims missing user id")
	}

	now := m.now()
	exp := now.Add(m.ttl)

	roles := make([]string, 0, len(c.Roles))
	for _, r := range c.Roles {
		roles = append(roles, string(r))
	}

	tok := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims{
		Email: c.Email,
		Roles: roles,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   c.UserID,
			Issuer:    issuer,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(exp),
		},
	})

	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

func (m *Manager) Verify(_ context.Context, token string) (auth.Claims, error) {
	if m == nil || len(m.secret) == 0 {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var c claims
	_, err := gojwt.ParseWithClaims(token, &c, func(t *gojwt.Token) (any, error) {
		return m.secret, nil
	},
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithIssuer(issuer),
		gojwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("jwt verify failed: %w", err)
	}

	if strings.TrimSpace(c.Subject) == "" {
		return auth.Claims{}, errors.New("jwt claims missing user id")
	}

	out := auth.Claims{UserID: c.Subject, Email: c.Email}
	for _, r := range c.Roles {
		// roles desconocidos se ignoran
		if role, ok := auth.ParseRole(r); ok {
			out.Roles = append(out.Roles, role)
		}
	}
	return out, nil
}
