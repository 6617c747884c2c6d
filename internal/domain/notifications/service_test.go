package notifications

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"pet-clinic/internal/domain/users"
	"pet-clinic/internal/platform/apperr"
	"pet-clinic/internal/platform/logger"
	"pet-clinic/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Notification
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Notification{}}
}

func (r *testRepo) Create(_ context.Context, n Notification) error {
	r.byID[n.ID] = n
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Notification, error) {
	n, ok := r.byID[id]
	if !ok {
		return Notification{}, ErrNotFound
	}
	return n, nil
}

func (r *testRepo) ListByUser(_ context.Context, userID string, f ListFilter) ([]Notification, error) {
	var out []Notification
	for _, n := range r.byID {
		if n.UserID != userID || (f.UnreadOnly && n.IsRead) {
			continue
		}
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *testRepo) MarkRead(_ context.Context, id string, at time.Time) error {
	n, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	n.MarkRead(at)
	r.byID[id] = n
	return nil
}

func (r *testRepo) MarkAllRead(_ context.Context, userID string, at time.Time) (int, error) {
	count := 0
	for id, n := range r.byID {
		if n.UserID == userID && n.MarkRead(at) {
			r.byID[id] = n
			count++
		}
	}
	return count, nil
}

func (r *testRepo) CountUnread(_ context.Context, userID string) (int, error) {
	count := 0
	for _, n := range r.byID {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *testRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	count := 0
	for id, n := range r.byID {
		if n.CreatedAt.Before(cutoff) {
			delete(r.byID, id)
			count++
		}
	}
	return count, nil
}

type fakeDirectory struct {
	profiles map[string]users.Profile
}

func (d fakeDirectory) Profile(_ context.Context, id string) (users.Profile, error) {
	p, ok := d.profiles[id]
	if !ok {
		return users.Profile{}, users.ErrNotFound
	}
	return p, nil
}

func (d fakeDirectory) IDsByRole(_ context.Context, role auth.Role) ([]string, error) {
	var out []string
	for id, p := range d.profiles {
		if p.HasRole(role) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out, nil
}

type sentMail struct{ to, subject string }

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(_ context.Context, to, subject, _ string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject})
	return m.err
}

var base = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestService(opts Options) (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo, logger.NewNop(), opts)
	svc.now = func() time.Time { return base }
	return svc, repo
}

func sampleEvent() AppointmentEvent {
	return AppointmentEvent{
		AppointmentID:     "appt-1",
		PetID:             "pet-1",
		PetName:           "Milo",
		RequestedDateTime: time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC),
		OwnerUserID:       "owner-1",
		VetUserID:         "vet-1",
		VetName:           "Dr. Vega",
		ReasonForVisit:    "Checkup",
	}
}

func TestBuilders_TitlesAndMessages(t *testing.T) {
	ev := sampleEvent()
	ev.Reason = "Clinic closed"

	approved := BuildApproved(ev, time.UTC)
	assert.Equal(t, "owner-1", approved.UserID)
	assert.Contains(t, approved.Title, "Approved")
	assert.Contains(t, approved.Message, "Milo")
	assert.Contains(t, approved.Message, "Mar 15, 2026 at 02:30 PM")
	assert.Contains(t, approved.Message, "Dr. Vega")

	cancelled := BuildCancelled(ev, time.UTC)
	assert.Equal(t, TypeAppointmentCancelled, cancelled.Type)
	assert.Contains(t, cancelled.Message, "Clinic closed")

	assigned := BuildAssigned(ev, time.UTC)
	assert.Equal(t, "vet-1", assigned.UserID)
	assert.Contains(t, assigned.Title, "Assigned")

	reminder := BuildReminder(ev, time.UTC)
	assert.Equal(t, TypeReminder, reminder.Payload.Type())
}

func TestBuilders_UseClinicTimezone(t *testing.T) {
	loc := time.FixedZone("ART", -3*3600)
	d := BuildReminder(sampleEvent(), loc)
	assert.Contains(t, d.Message, "Mar 15, 2026 at 11:30 AM")
}

func TestPayload_KeepsWireShape(t *testing.T) {
	ev := sampleEvent()
	ev.Reason = "Clinic closed"
	d := BuildCancelled(ev, time.UTC)

	data, err := EncodePayload(d.Payload)
	require.NoError(t, err)
	assert.Contains(t, data, `"appointmentId":"appt-1"`)
	assert.Contains(t, data, `"reason":"Clinic closed"`)

	back, err := DecodePayload(TypeAppointmentCancelled, data)
	require.NoError(t, err)
	assert.Equal(t, d.Payload, back)

	none, err := DecodePayload(TypeGeneral, "")
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = DecodePayload(TypeGeneral, `{"x":1}`)
	assert.Error(t, err)
}

func TestCreate_RejectsMismatchedPayload(t *testing.T) {
	svc, _ := newTestService(Options{})
	_, err := svc.Create(context.Background(), Draft{
		UserID:  "u1",
		Type:    TypeReminder,
		Title:   "x",
		Payload: SystemData{Category: "oops"},
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestMarkRead_Idempotent(t *testing.T) {
	svc, _ := newTestService(Options{})
	ctx := context.Background()

	n, err := svc.NotifyAppointmentApproved(ctx, sampleEvent())
	require.NoError(t, err)
	assert.False(t, n.IsRead)

	first, err := svc.MarkRead(ctx, "owner-1", n.ID)
	require.NoError(t, err)
	require.True(t, first.IsRead)
	require.NotNil(t, first.ReadAt)
	assert.Equal(t, base, *first.ReadAt)

	svc.now = func() time.Time { return base.Add(time.Hour) }
	second, err := svc.MarkRead(ctx, "owner-1", n.ID)
	require.NoError(t, err)
	assert.True(t, second.IsRead)
	assert.Equal(t, *first.ReadAt, *second.ReadAt)
}

func TestMarkRead_OtherUsersNotificationIsNotFound(t *testing.T) {
	svc, _ := newTestService(Options{})
	ctx := context.Background()

	n, err := svc.NotifyAppointmentApproved(ctx, sampleEvent())
	require.NoError(t, err)

	_, err = svc.MarkRead(ctx, "someone-else", n.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, "someone-else", n.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkAllReadAndUnreadCount(t *testing.T) {
	svc, _ := newTestService(Options{})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.NotifyReminder(ctx, sampleEvent())
		require.NoError(t, err)
	}
	_, err := svc.NotifyVetAssigned(ctx, sampleEvent())
	require.NoError(t, err)

	count, err := svc.UnreadCount(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	updated, err := svc.MarkAllRead(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 3, updated)

	count, err = svc.UnreadCount(ctx, "owner-1")
	require.NoError(t, err)
	assert.Zero(t, count)

	// la del vet no se tocó
	count, err = svc.UnreadCount(ctx, "vet-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPurgeOlderThan(t *testing.T) {
	svc, repo := newTestService(Options{})
	ctx := context.Background()

	svc.now = func() time.Time { return base.Add(-100 * 24 * time.Hour) }
	_, err := svc.NotifyReminder(ctx, sampleEvent())
	require.NoError(t, err)

	svc.now = func() time.Time { return base }
	fresh, err := svc.NotifyReminder(ctx, sampleEvent())
	require.NoError(t, err)

	deleted, err := svc.PurgeOlderThan(ctx, 90*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	assert.Len(t, repo.byID, 1)
	assert.Contains(t, repo.byID, fresh.ID)

	_, err = svc.PurgeOlderThan(ctx, 0)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestNotifySystem_RoleBroadcast(t *testing.T) {
	dir := fakeDirectory{profiles: map[string]users.Profile{
		"admin-1": {ID: "admin-1", Roles: []auth.Role{auth.RoleAdmin}},
		"admin-2": {ID: "admin-2", Roles: []auth.Role{auth.RoleAdmin}},
		"owner-1": {ID: "owner-1", Roles: []auth.Role{auth.RoleOwner}},
	}}
	svc, _ := newTestService(Options{Directory: dir})

	out, err := svc.NotifySystem(context.Background(), SystemInput{
		Role:     auth.RoleAdmin,
		Title:    "Low stock",
		Message:  "Rabies vaccine below reorder level",
		Category: "inventory_low_stock",
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "admin-1", out[0].UserID)
	assert.Equal(t, TypeSystem, out[0].Type)

	_, err = svc.NotifySystem(context.Background(), SystemInput{Title: "x"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestEmailMirror_BestEffort(t *testing.T) {
	dir := fakeDirectory{profiles: map[string]users.Profile{
		"owner-1": {ID: "owner-1", Email: "owner@example.com"},
	}}
	mailer := &fakeMailer{err: errors.New("ses down")}
	svc, repo := newTestService(Options{Directory: dir, Mailer: mailer})

	n, err := svc.NotifyAppointmentApproved(context.Background(), sampleEvent())
	require.NoError(t, err)
	assert.Contains(t, repo.byID, n.ID)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "owner@example.com", mailer.sent[0].to)
	assert.Equal(t, "Appointment Approved", mailer.sent[0].subject)
}
