package jwt

import (
	"context"
	"testing"
	"time"

	"pet-clinic/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	ctx := context.Background()

	tok, exp, err := m.Issue(ctx, auth.Claims{
		UserID: "u-1",
		Email:  "vet@clinic.test",
		Roles:  []auth.Role{auth.RoleVet},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	got, err := m.Verify(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.UserID)
	assert.Equal(t, "vet@clinic.test", got.Email)
	assert.True(t, got.HasRole(auth.RoleVet))
	assert.False(t, got.HasRole(auth.RoleAdmin))
}

func TestManager_RejectsExpired(t *testing.T) {
	m := NewManager("test-secret", time.Minute)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }

	tok, _, err := m.Issue(context.Background(), auth.Claims{UserID: "u-1"})
	require.NoError(t, err)

	m.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err = m.Verify(context.Background(), tok)
	assert.Error(t, err)
}

func TestManager_RejectsOtherSecret(t *testing.T) {
	a := NewManager("secret-a", time.Hour)
	b := NewManager("secret-b", time.Hour)

	tok, _, err := a.Issue(context.Background(), auth.Claims{UserID: "u-1"})
	require.NoError(t, err)

	_, err = b.Verify(context.Background(), tok)
	assert.Error(t, err)
}

func TestManager_EmptyToken(t *testing.T) {
	m := NewManager("s", time.Hour)
	_, err := m.Verify(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}
