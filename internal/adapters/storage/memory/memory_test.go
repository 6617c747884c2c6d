package memory_test

import (
	"context"
	"testing"
	"time"

	"pet-clinic/internal/adapters/storage/memory"
	"pet-clinic/internal/domain/appointments"
	"pet-clinic/internal/domain/inventory"
	"pet-clinic/internal/domain/notifications"
	"pet-clinic/internal/domain/users"
	"pet-clinic/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func appt(id, vet string, at time.Time, st appointments.Status) appointments.Appointment {
	a := appointments.Appointment{
		ID:                id,
		PetID:             "pet-1",
		OwnerUserID:       "owner-1",
		RequestedDateTime: at,
		ReasonForVisit:    "checkup",
		Status:            st,
		CreatedAt:         base,
		UpdatedAt:         base,
	}
	if vet != "" {
		a.VetUserID = &vet
	}
	return a
}

func TestAppointmentRepo_UpdateIsConditional(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAppointmentRepo()
	require.NoError(t, repo.Create(ctx, appt("a1", "", base, appointments.StatusPending)))

	a, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)

	a.Status = appointments.StatusApproved
	require.NoError(t, repo.Update(ctx, a, appointments.StatusPending))

	// un segundo escritor con la lectura vieja pierde
	a.Status = appointments.StatusCancelled
	err = repo.Update(ctx, a, appointments.StatusPending)
	require.ErrorIs(t, err, appointments.ErrInvalidState)

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, appointments.StatusApproved, got.Status)

	err = repo.Update(ctx, appt("missing", "", base, appointments.StatusApproved), appointments.StatusPending)
	require.ErrorIs(t, err, appointments.ErrNotFound)
}

func TestAppointmentRepo_ClaimReminderOnce(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAppointmentRepo()
	require.NoError(t, repo.Create(ctx, appt("a1", "vet-1", base, appointments.StatusApproved)))
	require.NoError(t, repo.Create(ctx, appt("p1", "", base, appointments.StatusPending)))

	ok, err := repo.ClaimReminder(ctx, "a1", base)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ClaimReminder(ctx, "a1", base.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, got.ReminderSentAt)
	assert.True(t, got.ReminderSentAt.Equal(base))

	ok, err = repo.ClaimReminder(ctx, "p1", base)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.ClaimReminder(ctx, "missing", base)
	require.ErrorIs(t, err, appointments.ErrNotFound)
}

func TestAppointmentRepo_FindConflicts(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAppointmentRepo()
	slot := 30 * time.Minute

	require.NoError(t, repo.Create(ctx, appt("near", "vet-1", base.Add(10*time.Minute), appointments.StatusApproved)))
	require.NoError(t, repo.Create(ctx, appt("edge", "vet-1", base.Add(slot), appointments.StatusApproved)))
	require.NoError(t, repo.Create(ctx, appt("cancelled", "vet-1", base, appointments.StatusCancelled)))
	require.NoError(t, repo.Create(ctx, appt("other-vet", "vet-2", base, appointments.StatusApproved)))
	require.NoError(t, repo.Create(ctx, appt("self", "vet-1", base, appointments.StatusPending)))

	got, err := repo.FindConflicts(ctx, "vet-1", base.Add(-slot), base.Add(slot), "self")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "near", got[0].ID)
}

func TestAppointmentRepo_ListAndCounts(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAppointmentRepo()

	day2 := base.Add(24 * time.Hour)
	require.NoError(t, repo.Create(ctx, appt("late", "", day2, appointments.StatusPending)))
	require.NoError(t, repo.Create(ctx, appt("early", "", base, appointments.StatusPending)))
	require.NoError(t, repo.Create(ctx, appt("done", "vet-1", base.Add(time.Hour), appointments.StatusCompleted)))

	pending, err := repo.List(ctx, appointments.ListFilter{Statuses: []appointments.Status{appointments.StatusPending}})
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "early", pending[0].ID)
	assert.Equal(t, "late", pending[1].ID)

	to := day2
	firstDay, err := repo.List(ctx, appointments.ListFilter{From: &base, To: &to})
	require.NoError(t, err)
	assert.Len(t, firstDay, 2)

	byStatus, err := repo.CountByStatus(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, byStatus[appointments.StatusPending])
	assert.Equal(t, 1, byStatus[appointments.StatusCompleted])

	perDay, err := repo.CountPerDay(ctx, base, day2.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []appointments.DayCount{
		{Date: "2026-03-10", Count: 2},
		{Date: "2026-03-11", Count: 1},
	}, perDay)
}

func TestNotificationRepo_ReadLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNotificationRepo()

	for i, id := range []string{"n1", "n2", "n3"} {
		require.NoError(t, repo.Create(ctx, notifications.Notification{
			ID:        id,
			UserID:    "u1",
			Type:      notifications.TypeGeneral,
			Title:     "t",
			Message:   "m",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Create(ctx, notifications.Notification{ID: "other", UserID: "u2", CreatedAt: base}))

	readAt := base.Add(time.Hour)
	require.NoError(t, repo.MarkRead(ctx, "n1", readAt))
	// idempotente: readAt no se pisa
	require.NoError(t, repo.MarkRead(ctx, "n1", readAt.Add(time.Hour)))

	n1, err := repo.GetByID(ctx, "n1")
	require.NoError(t, err)
	require.NotNil(t, n1.ReadAt)
	assert.True(t, n1.ReadAt.Equal(readAt))

	unread, err := repo.CountUnread(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	updated, err := repo.MarkAllRead(ctx, "u1", readAt)
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	unread, err = repo.CountUnread(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	list, err := repo.ListByUser(ctx, "u1", notifications.ListFilter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "n3", list[0].ID)

	deleted, err := repo.DeleteOlderThan(ctx, base.Add(90*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 3, deleted) // n1, n2 y el de u2

	require.ErrorIs(t, repo.MarkRead(ctx, "n1", readAt), notifications.ErrNotFound)
}

func TestInventoryRepo_AdjustNeverNegative(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInventoryRepo()

	require.NoError(t, repo.Create(ctx, inventory.Item{ID: "i1", Name: "Gauze", SKU: "GZ-1", Quantity: 3}))
	require.ErrorIs(t, repo.Create(ctx, inventory.Item{ID: "i2", Name: "Other", SKU: "GZ-1"}), inventory.ErrSKUTaken)

	// SKU vacío no choca
	require.NoError(t, repo.Create(ctx, inventory.Item{ID: "i3", Name: "A"}))
	require.NoError(t, repo.Create(ctx, inventory.Item{ID: "i4", Name: "B"}))

	it, err := repo.Adjust(ctx, "i1", -3, base)
	require.NoError(t, err)
	assert.Equal(t, 0, it.Quantity)

	_, err = repo.Adjust(ctx, "i1", -1, base)
	require.ErrorIs(t, err, inventory.ErrInsufficientStock)

	_, err = repo.Adjust(ctx, "nope", 1, base)
	require.ErrorIs(t, err, inventory.ErrNotFound)
}

func TestUserRepo_EmailUniqueAndRoles(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewUserRepo()

	require.NoError(t, repo.Create(ctx, users.User{ID: "u1", Email: "ana@example.com", FullName: "Ana", Roles: []auth.Role{auth.RoleOwner}}))
	require.ErrorIs(t, repo.Create(ctx, users.User{ID: "u2", Email: "ana@example.com"}), users.ErrEmailTaken)

	got, err := repo.GetByEmail(ctx, "ANA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	// mutar la copia no toca lo guardado
	got.Roles[0] = auth.RoleAdmin
	admins, err := repo.ListByRole(ctx, auth.RoleAdmin)
	require.NoError(t, err)
	assert.Empty(t, admins)
}
