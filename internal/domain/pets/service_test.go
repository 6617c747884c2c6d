package pets

import (
	"context"
	"testing"
	"time"

	"pet-clinic/internal/platform/apperr"
	"pet-clinic/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(_ context.Context, p Pet) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(_ context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByOwner(_ context.Context, ownerUserID string) ([]Pet, error) {
	var out []Pet
	for _, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) List(_ context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func fixedNow() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

func newTestService() *Service {
	svc := NewService(newTestRepo())
	svc.now = fixedNow
	return svc
}

func TestCreate_Validates(t *testing.T) {
	svc := newTestService()

	future := fixedNow().Add(48 * time.Hour)
	_, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Species:   "dragon",
		Sex:       "x",
		BirthDate: &future,
	})
	require.Error(t, err)

	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, apperr.KindValidation, e.Kind)
	assert.Contains(t, e.Fields, "name")
	assert.Contains(t, e.Fields, "species")
	assert.Contains(t, e.Fields, "sex")
	assert.Contains(t, e.Fields, "birthDate")
}

func TestCreate_NormalizesAndDefaultsSex(t *testing.T) {
	svc := newTestService()

	p, err := svc.Create(context.Background(), "owner-1", CreateInput{
		Name:    "  Milo ",
		Species: "DOG",
	})
	require.NoError(t, err)
	assert.Equal(t, "Milo", p.Name)
	assert.Equal(t, SpeciesDog, p.Species)
	assert.Equal(t, SexUnknown, p.Sex)
	assert.Equal(t, fixedNow(), p.CreatedAt)

	owner, err := svc.OwnerOf(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner-1", owner)

	_, err = svc.OwnerOf(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfile_ClearsBirthDate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	bd := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)
	p, err := svc.Create(ctx, "owner-1", CreateInput{Name: "Milo", Species: "dog", BirthDate: &bd})
	require.NoError(t, err)

	name := "Milo II"
	updated, err := svc.UpdateProfile(ctx, p.ID, UpdateProfileInput{
		Name:      &name,
		BirthDate: patchBirthDate{Present: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "Milo II", updated.Name)
	assert.Nil(t, updated.BirthDate)
}

func TestUpdateProfile_UnknownPet(t *testing.T) {
	svc := newTestService()
	_, err := svc.UpdateProfile(context.Background(), "missing", UpdateProfileInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccessRules(t *testing.T) {
	p := Pet{OwnerUserID: "owner-1"}

	owner := auth.Claims{UserID: "owner-1", Roles: []auth.Role{auth.RoleOwner}}
	stranger := auth.Claims{UserID: "owner-2", Roles: []auth.Role{auth.RoleOwner}}
	vet := auth.Claims{UserID: "vet-1", Roles: []auth.Role{auth.RoleVet}}
	admin := auth.Claims{UserID: "admin-1", Roles: []auth.Role{auth.RoleAdmin}}

	assert.True(t, CanRead(owner, p))
	assert.False(t, CanRead(stranger, p))
	assert.True(t, CanRead(vet, p))
	assert.True(t, CanRead(admin, p))

	assert.True(t, CanWrite(owner, p))
	assert.False(t, CanWrite(vet, p))
	assert.True(t, CanWrite(admin, p))
}
