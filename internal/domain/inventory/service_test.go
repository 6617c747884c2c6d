package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-clinic/internal/domain/notifications"
	"pet-clinic/internal/platform/apperr"
	"pet-clinic/internal/platform/logger"
	"pet-clinic/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID map[string]Item
}

func (r *testRepo) Create(_ context.Context, it Item) error {
	for _, cur := range r.byID {
		if it.SKU != "" && cur.SKU == it.SKU {
			return ErrSKUTaken
		}
	}
	r.byID[it.ID] = it
	return nil
}

func (r *testRepo) Update(_ context.Context, it Item) error {
	if _, ok := r.byID[it.ID]; !ok {
		return ErrNotFound
	}
	r.byID[it.ID] = it
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Item, error) {
	it, ok := r.byID[id]
	if !ok {
		return Item{}, ErrNotFound
	}
	return it, nil
}

func (r *testRepo) List(_ context.Context, f ListFilter) ([]Item, error) {
	var out []Item
	for _, it := range r.byID {
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		if f.LowStockOnly && !it.IsLowStock() {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (r *testRepo) Adjust(_ context.Context, id string, delta int, at time.Time) (Item, error) {
	it, ok := r.byID[id]
	if !ok {
		return Item{}, ErrNotFound
	}
	if it.Quantity+delta < 0 {
		return Item{}, ErrInsufficientStock
	}
	it.Quantity += delta
	it.UpdatedAt = at
	r.byID[id] = it
	return it, nil
}

func (r *testRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeAlerter struct {
	calls []notifications.SystemInput
	err   error
}

func (f *fakeAlerter) NotifySystem(_ context.Context, in notifications.SystemInput) ([]notifications.Notification, error) {
	f.calls = append(f.calls, in)
	return nil, f.err
}

var admin = auth.Claims{UserID: "admin-1", Roles: []auth.Role{auth.RoleAdmin}}

func newTestService(t *testing.T) (*Service, *testRepo, *fakeAlerter) {
	t.Helper()
	repo := &testRepo{byID: map[string]Item{}}
	alerter := &fakeAlerter{}
	svc := NewService(repo, alerter, logger.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC) }
	return svc, repo, alerter
}

func gauze() ItemInput {
	return ItemInput{Name: "Gauze", Category: "Supplies", SKU: "gz-01", Quantity: 20, Unit: "pack", ReorderLevel: 5}
}

func TestCreate_NormalizesAndValidates(t *testing.T) {
	svc, _, alerter := newTestService(t)
	ctx := context.Background()

	it, err := svc.Create(ctx, gauze())
	require.NoError(t, err)
	assert.Equal(t, "supplies", it.Category)
	assert.Equal(t, "GZ-01", it.SKU)
	assert.False(t, it.IsLowStock())
	assert.Empty(t, alerter.calls)

	_, err = svc.Create(ctx, gauze())
	assert.ErrorIs(t, err, ErrSKUTaken)

	_, err = svc.Create(ctx, ItemInput{Quantity: -1})
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Contains(t, e.Fields, "name")
	assert.Contains(t, e.Fields, "category")
	assert.Contains(t, e.Fields, "quantity")
}

func TestAdjust_NeverNegative(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	it, err := svc.Create(ctx, gauze())
	require.NoError(t, err)

	_, err = svc.Adjust(ctx, admin, it.ID, -21, "used in surgery")
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 20, repo.byID[it.ID].Quantity)

	got, err := svc.Adjust(ctx, admin, it.ID, -20, "used in surgery")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)

	_, err = svc.Adjust(ctx, admin, it.ID, 0, "noop")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	_, err = svc.Adjust(ctx, admin, it.ID, 3, " ")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestAdjust_AlertsOnlyWhenCrossingReorderLevel(t *testing.T) {
	svc, _, alerter := newTestService(t)
	ctx := context.Background()

	it, err := svc.Create(ctx, gauze())
	require.NoError(t, err)

	_, err = svc.Adjust(ctx, admin, it.ID, -10, "weekly usage")
	require.NoError(t, err)
	assert.Empty(t, alerter.calls)

	_, err = svc.Adjust(ctx, admin, it.ID, -6, "weekly usage")
	require.NoError(t, err)
	require.Len(t, alerter.calls, 1)
	call := alerter.calls[0]
	assert.Equal(t, auth.RoleAdmin, call.Role)
	assert.Equal(t, lowStockCategory, call.Category)
	assert.Equal(t, it.ID, call.Attributes["itemId"])
	assert.Equal(t, "4", call.Attributes["quantity"])

	// ya estaba bajo: no se repite
	_, err = svc.Adjust(ctx, admin, it.ID, -1, "weekly usage")
	require.NoError(t, err)
	assert.Len(t, alerter.calls, 1)

	// repone y vuelve a cruzar
	_, err = svc.Adjust(ctx, admin, it.ID, 10, "restock")
	require.NoError(t, err)
	_, err = svc.Adjust(ctx, admin, it.ID, -10, "weekly usage")
	require.NoError(t, err)
	assert.Len(t, alerter.calls, 2)
}

func TestAlertFailureDoesNotFailAdjust(t *testing.T) {
	svc, _, alerter := newTestService(t)
	alerter.err = errors.New("boom")
	ctx := context.Background()

	it, err := svc.Create(ctx, gauze())
	require.NoError(t, err)

	got, err := svc.Adjust(ctx, admin, it.ID, -18, "usage")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Quantity)
}

func TestUpdate_KeepsQuantityAndAlertsOnNewReorderLevel(t *testing.T) {
	svc, _, alerter := newTestService(t)
	ctx := context.Background()

	it, err := svc.Create(ctx, gauze())
	require.NoError(t, err)

	in := gauze()
	in.Quantity = 999
	in.ReorderLevel = 25
	got, err := svc.Update(ctx, it.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Quantity)
	assert.True(t, got.IsLowStock())
	assert.Len(t, alerter.calls, 1)

	_, err = svc.Update(ctx, "missing", in)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAndDelete(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, gauze())
	require.NoError(t, err)
	_, err = svc.Create(ctx, ItemInput{Name: "Rabies vaccine", Category: "Vaccines", SKU: "VAC-R", Quantity: 2, ReorderLevel: 5})
	require.NoError(t, err)

	low, err := svc.List(ctx, ListFilter{LowStockOnly: true})
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Rabies vaccine", low[0].Name)

	byCat, err := svc.List(ctx, ListFilter{Category: " SUPPLIES "})
	require.NoError(t, err)
	require.Len(t, byCat, 1)

	require.NoError(t, svc.Delete(ctx, a.ID))
	_, err = svc.Get(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
