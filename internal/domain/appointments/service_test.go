package appointments

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"pet-clinic/internal/domain/notifications"
	"pet-clinic/internal/domain/pets"
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
	byID map[string]Appointment

	// afterList corre una vez después del próximo List.
	afterList func()
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Appointment{}}
}

func (r *testRepo) Create(_ context.Context, a Appointment) error {
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return Appointment{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) Update(_ context.Context, a Appointment, expected Status) error {
	cur, ok := r.byID[a.ID]
	if !ok {
		return ErrNotFound
	}
	if cur.Status != expected {
		return ErrInvalidState
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) List(_ context.Context, f ListFilter) ([]Appointment, error) {
	var out []Appointment
	for _, a := range r.byID {
		if f.OwnerUserID != "" && a.OwnerUserID != f.OwnerUserID {
			continue
		}
		if f.VetUserID != "" && !a.AssignedTo(f.VetUserID) {
			continue
		}
		if len(f.Statuses) > 0 && !containsStatus(f.Statuses, a.Status) {
			continue
		}
		if f.From != nil && a.RequestedDateTime.Before(*f.From) {
			continue
		}
		if f.To != nil && !a.RequestedDateTime.Before(*f.To) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RequestedDateTime.Before(out[j].RequestedDateTime) })
	if hook := r.afterList; hook != nil {
		r.afterList = nil
		hook()
	}
	return out, nil
}

func (r *testRepo) ClaimReminder(_ context.Context, id string, at time.Time) (bool, error) {
	cur, ok := r.byID[id]
	if !ok {
		return false, ErrNotFound
	}
	if cur.Status != StatusApproved || cur.ReminderSentAt != nil {
		return false, nil
	}
	cur.ReminderSentAt = &at
	r.byID[id] = cur
	return true, nil
}

func containsStatus(list []Status, st Status) bool {
	for _, s := range list {
		if s == st {
			return true
		}
	}
	return false
}

func (r *testRepo) FindConflicts(_ context.Context, vetUserID string, from, to time.Time, excludeID string) ([]Appointment, error) {
	var out []Appointment
	for _, a := range r.byID {
		if a.ID == excludeID || a.Status == StatusCancelled || !a.AssignedTo(vetUserID) {
			continue
		}
		if a.RequestedDateTime.After(from) && a.RequestedDateTime.Before(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) CountByStatus(_ context.Context, from, to *time.Time) (map[Status]int, error) {
	out := map[Status]int{}
	items, _ := r.List(context.Background(), ListFilter{From: from, To: to})
	for _, a := range items {
		out[a.Status]++
	}
	return out, nil
}

func (r *testRepo) CountPerDay(_ context.Context, from, to time.Time) ([]DayCount, error) {
	counts := map[string]int{}
	items, _ := r.List(context.Background(), ListFilter{From: &from, To: &to})
	for _, a := range items {
		counts[a.RequestedDateTime.UTC().Format("2006-01-02")]++
	}
	out := make([]DayCount, 0, len(counts))
	for d, c := range counts {
		out = append(out, DayCount{Date: d, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// -------------------------
// Collaborators
// -------------------------

type fakePets map[string]pets.Pet

func (f fakePets) GetByID(_ context.Context, id string) (pets.Pet, error) {
	p, ok := f[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

type fakeDir map[string]users.Profile

func (f fakeDir) Profile(_ context.Context, id string) (users.Profile, error) {
	p, ok := f[id]
	if !ok {
		return users.Profile{}, users.ErrNotFound
	}
	return p, nil
}

type sent struct {
	kind string
	ev   notifications.AppointmentEvent
}

type recordingNotifier struct {
	sent []sent
	err  error
}

func (n *recordingNotifier) record(kind string, ev notifications.AppointmentEvent) (notifications.Notification, error) {
	n.sent = append(n.sent, sent{kind: kind, ev: ev})
	return notifications.Notification{}, n.err
}

func (n *recordingNotifier) NotifyAppointmentApproved(_ context.Context, ev notifications.AppointmentEvent) (notifications.Notification, error) {
	return n.record("approved", ev)
}

func (n *recordingNotifier) NotifyAppointmentCancelled(_ context.Context, ev notifications.AppointmentEvent) (notifications.Notification, error) {
	return n.record("cancelled", ev)
}

func (n *recordingNotifier) NotifyVetAssigned(_ context.Context, ev notifications.AppointmentEvent) (notifications.Notification, error) {
	return n.record("assigned", ev)
}

func (n *recordingNotifier) NotifyReminder(_ context.Context, ev notifications.AppointmentEvent) (notifications.Notification, error) {
	return n.record("reminder", ev)
}

var (
	now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	owner    = auth.Claims{UserID: "owner-1", Roles: []auth.Role{auth.RoleOwner}}
	stranger = auth.Claims{UserID: "owner-2", Roles: []auth.Role{auth.RoleOwner}}
	admin    = auth.Claims{UserID: "admin-1", Roles: []auth.Role{auth.RoleAdmin}}
	vet      = auth.Claims{UserID: "vet-1", Roles: []auth.Role{auth.RoleVet}}
	otherVet = auth.Claims{UserID: "vet-2", Roles: []auth.Role{auth.RoleVet}}
)

type fixture struct {
	svc      *Service
	repo     *testRepo
	notifier *recordingNotifier
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	repo := newTestRepo()
	notifier := &recordingNotifier{}
	petsLookup := fakePets{
		"pet-1": {ID: "pet-1", OwnerUserID: "owner-1", Name: "Milo"},
		"pet-2": {ID: "pet-2", OwnerUserID: "owner-2", Name: "Luna"},
	}
	dir := fakeDir{
		"owner-1": {ID: "owner-1", FullName: "Ana Owner", Roles: []auth.Role{auth.RoleOwner}},
		"vet-1":   {ID: "vet-1", FullName: "Dr. Vega", Roles: []auth.Role{auth.RoleVet}},
		"vet-2":   {ID: "vet-2", FullName: "Dr. Ruiz", Roles: []auth.Role{auth.RoleVet}},
		"admin-1": {ID: "admin-1", FullName: "Admin", Roles: []auth.Role{auth.RoleAdmin}},
	}
	svc := NewService(repo, petsLookup, dir, notifier, 30*time.Minute, logger.NewNop())
	svc.now = func() time.Time { return now }
	return fixture{svc: svc, repo: repo, notifier: notifier}
}

func (f fixture) request(t *testing.T, at time.Time) Appointment {
	t.Helper()
	a, err := f.svc.Request(context.Background(), owner, RequestInput{
		PetID:             "pet-1",
		RequestedDateTime: at,
		ReasonForVisit:    "Checkup",
	})
	require.NoError(t, err)
	return a
}

// seed guarda un turno en un estado arbitrario.
func (f fixture) seed(id string, st Status, vetID string, at time.Time) Appointment {
	a := Appointment{
		ID:                id,
		PetID:             "pet-1",
		OwnerUserID:       "owner-1",
		RequestedDateTime: at,
		ReasonForVisit:    "Checkup",
		Status:            st,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if vetID != "" {
		a.VetUserID = &vetID
	}
	f.repo.byID[id] = a
	return a
}

func TestStatusPredicates(t *testing.T) {
	for _, st := range allStatuses {
		a := Appointment{Status: st}
		assert.Equal(t, st == StatusPending || st == StatusApproved, a.CanBeCancelled(), st)
		assert.Equal(t, st == StatusPending, a.RequiresAction(), st)
	}
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusNoShow.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"approved": StatusApproved,
		"PENDING":  StatusPending,
		"no-show":  StatusNoShow,
		"NoShow":   StatusNoShow,
	}
	for in, want := range cases {
		got, ok := ParseStatus(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got)
	}
	_, ok := ParseStatus("archived")
	assert.False(t, ok)
}

func TestRequest_CreatesPending(t *testing.T) {
	f := newFixture(t)

	a := f.request(t, now.Add(48*time.Hour))
	assert.Equal(t, StatusPending, a.Status)
	assert.True(t, a.RequiresAction())
	assert.Nil(t, a.VetUserID)
	assert.Equal(t, "owner-1", a.OwnerUserID)
}

func TestRequest_PetMustBelongToCaller(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Request(context.Background(), owner, RequestInput{
		PetID:             "pet-2",
		RequestedDateTime: now.Add(time.Hour),
		ReasonForVisit:    "Checkup",
	})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.Request(context.Background(), owner, RequestInput{
		PetID:             "missing",
		RequestedDateTime: now.Add(time.Hour),
		ReasonForVisit:    "Checkup",
	})
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestRequest_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Request(context.Background(), owner, RequestInput{
		RequestedDateTime: now.Add(-time.Hour),
	})
	var e *apperr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, apperr.KindValidation, e.Kind)
	assert.Contains(t, e.Fields, "petId")
	assert.Contains(t, e.Fields, "requestedDateTime")
	assert.Contains(t, e.Fields, "reasonForVisit")
}

func TestApprove_WithVetNotifiesOwnerAndVet(t *testing.T) {
	f := newFixture(t)
	a := f.request(t, now.Add(48*time.Hour))

	got, err := f.svc.Approve(context.Background(), admin, a.ID, ApproveInput{VetUserID: "vet-1", AdminNotes: "bring records"})
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, got.Status)
	require.NotNil(t, got.VetUserID)
	assert.Equal(t, "vet-1", *got.VetUserID)
	assert.Equal(t, "admin-1", got.UpdatedByUserID)

	require.Len(t, f.notifier.sent, 2)
	assert.Equal(t, "approved", f.notifier.sent[0].kind)
	assert.Equal(t, "owner-1", f.notifier.sent[0].ev.OwnerUserID)
	assert.Equal(t, "Milo", f.notifier.sent[0].ev.PetName)
	assert.Equal(t, "Dr. Vega", f.notifier.sent[0].ev.VetName)
	assert.Equal(t, "assigned", f.notifier.sent[1].kind)
	assert.Equal(t, "vet-1", f.notifier.sent[1].ev.VetUserID)
}

func TestApprove_WithoutVetNotifiesOnlyOwner(t *testing.T) {
	f := newFixture(t)
	a := f.request(t, now.Add(48*time.Hour))

	_, err := f.svc.Approve(context.Background(), admin, a.ID, ApproveInput{})
	require.NoError(t, err)
	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "approved", f.notifier.sent[0].kind)
}

func TestApprove_OnlyFromPending(t *testing.T) {
	for _, st := range []Status{StatusApproved, StatusCancelled, StatusCompleted, StatusNoShow} {
		t.Run(string(st), func(t *testing.T) {
			f := newFixture(t)
			f.seed("a1", st, "", now.Add(time.Hour))

			_, err := f.svc.Approve(context.Background(), admin, "a1", ApproveInput{})
			assert.ErrorIs(t, err, ErrInvalidState)
			assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
			assert.Equal(t, st, f.repo.byID["a1"].Status)
			assert.Empty(t, f.notifier.sent)
		})
	}
}

func TestApprove_RequiresAdmin(t *testing.T) {
	f := newFixture(t)
	a := f.request(t, now.Add(48*time.Hour))

	_, err := f.svc.Approve(context.Background(), vet, a.ID, ApproveInput{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestApprove_UnknownAppointment(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Approve(context.Background(), admin, "nope", ApproveInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestApprove_VetMustBeAVet(t *testing.T) {
	f := newFixture(t)
	a := f.request(t, now.Add(48*time.Hour))

	_, err := f.svc.Approve(context.Background(), admin, a.ID, ApproveInput{VetUserID: "owner-1"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = f.svc.Approve(context.Background(), admin, a.ID, ApproveInput{VetUserID: "ghost"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, StatusPending, f.repo.byID[a.ID].Status)
}

func TestApprove_ConflictBlocksWithoutNotification(t *testing.T) {
	f := newFixture(t)
	at := now.Add(48 * time.Hour)
	f.seed("booked", StatusApproved, "vet-1", at.Add(15*time.Minute))
	a := f.request(t, at)

	_, err := f.svc.Approve(context.Background(), admin, a.ID, ApproveInput{VetUserID: "vet-1"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, StatusPending, f.repo.byID[a.ID].Status)
	assert.Empty(t, f.notifier.sent)

	// otro vet está libre
	_, err = f.svc.Approve(context.Background(), admin, a.ID, ApproveInput{VetUserID: "vet-2"})
	assert.NoError(t, err)
}

func TestApprove_CancelledAndDistantAppointmentsDoNotConflict(t *testing.T) {
	f := newFixture(t)
	at := now.Add(48 * time.Hour)
	f.seed("cancelled", StatusCancelled, "vet-1", at)
	f.seed("later", StatusApproved, "vet-1", at.Add(30*time.Minute))
	a := f.request(t, at)

	_, err := f.svc.Approve(context.Background(), admin, a.ID, ApproveInput{VetUserID: "vet-1"})
	assert.NoError(t, err)
}

func TestCancel_ByOwnerAndAdmin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.request(t, now.Add(48*time.Hour))
	got, err := f.svc.Cancel(ctx, owner, a.ID, "Can't make it")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)
	assert.Equal(t, "Can't make it", got.CancellationReason)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "cancelled", f.notifier.sent[0].kind)
	assert.Equal(t, "owner-1", f.notifier.sent[0].ev.OwnerUserID)
	assert.Equal(t, "Can't make it", f.notifier.sent[0].ev.Reason)

	b := f.seed("approved", StatusApproved, "vet-1", now.Add(72*time.Hour))
	_, err = f.svc.Cancel(ctx, admin, b.ID, "Clinic closed")
	require.NoError(t, err)
	assert.Len(t, f.notifier.sent, 2)
}

func TestCancel_Rules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.request(t, now.Add(48*time.Hour))

	_, err := f.svc.Cancel(ctx, stranger, a.ID, "nope")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.Cancel(ctx, owner, a.ID, "  ")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	for _, st := range []Status{StatusCompleted, StatusCancelled, StatusNoShow} {
		f.seed("t-"+string(st), st, "", now.Add(time.Hour))
		_, err := f.svc.Cancel(ctx, admin, "t-"+string(st), "late")
		assert.ErrorIs(t, err, ErrInvalidState, st)
		assert.Equal(t, st, f.repo.byID["t-"+string(st)].Status)
	}
	assert.Empty(t, f.notifier.sent)
}

func TestNotificationFailureDoesNotUndoTransition(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("db down")
	a := f.request(t, now.Add(48*time.Hour))

	got, err := f.svc.Approve(context.Background(), admin, a.ID, ApproveInput{})
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, got.Status)
	assert.Equal(t, StatusApproved, f.repo.byID[a.ID].Status)
}

func TestStaleTransitionIsRejected(t *testing.T) {
	f := newFixture(t)
	a := f.request(t, now.Add(48*time.Hour))

	// otro request ya lo canceló entre la lectura y la escritura
	stale := a
	stale.Status = StatusApproved
	cur := f.repo.byID[a.ID]
	cur.Status = StatusCancelled
	f.repo.byID[a.ID] = cur

	err := f.repo.Update(context.Background(), stale, StatusPending)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCompleteAndNoShow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seed("a1", StatusApproved, "vet-1", now.Add(-time.Hour))
	f.seed("a2", StatusApproved, "vet-1", now.Add(-2*time.Hour))
	f.seed("a3", StatusPending, "", now.Add(time.Hour))

	_, err := f.svc.Complete(ctx, otherVet, "a1", CompleteInput{})
	assert.ErrorIs(t, err, ErrForbidden)

	done, err := f.svc.Complete(ctx, vet, "a1", CompleteInput{Notes: "all good"})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, done.Status)
	require.NotNil(t, done.ActualDateTime)
	assert.Equal(t, now, *done.ActualDateTime)

	ns, err := f.svc.MarkNoShow(ctx, admin, "a2")
	require.NoError(t, err)
	assert.Equal(t, StatusNoShow, ns.Status)

	_, err = f.svc.Complete(ctx, admin, "a3", CompleteInput{})
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = f.svc.Complete(ctx, owner, "a3", CompleteInput{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestChangeStatus_Dispatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.request(t, now.Add(48*time.Hour))

	got, err := f.svc.ChangeStatus(ctx, admin, a.ID, StatusChange{Status: StatusApproved, VetUserID: "vet-1"})
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, got.Status)

	got, err = f.svc.ChangeStatus(ctx, admin, a.ID, StatusChange{Status: StatusCancelled, AdminNotes: "Clinic closed"})
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, got.Status)
	assert.Equal(t, "Clinic closed", got.CancellationReason)

	_, err = f.svc.ChangeStatus(ctx, admin, a.ID, StatusChange{Status: StatusPending})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestGet_AccessRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.request(t, now.Add(48*time.Hour))

	_, err := f.svc.Get(ctx, owner, a.ID)
	assert.NoError(t, err)
	_, err = f.svc.Get(ctx, vet, a.ID)
	assert.NoError(t, err)
	_, err = f.svc.Get(ctx, stranger, a.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestQueries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seed("p1", StatusPending, "", now.Add(2*time.Hour))
	f.seed("p2", StatusPending, "", now.Add(time.Hour))
	f.seed("v1", StatusApproved, "vet-1", now.Add(3*time.Hour))

	pending, err := f.svc.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "p2", pending[0].ID)

	byVet, err := f.svc.ListByVet(ctx, "vet-1")
	require.NoError(t, err)
	require.Len(t, byVet, 1)
	assert.Equal(t, "v1", byVet[0].ID)

	mine, err := f.svc.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	details := f.svc.Describe(ctx, byVet)
	assert.Equal(t, "Milo", details[0].PetName)
	assert.Equal(t, "Ana Owner", details[0].OwnerName)
	assert.Equal(t, "Dr. Vega", details[0].VetName)
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	day1 := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	f.seed("a", StatusPending, "", day1)
	f.seed("b", StatusApproved, "vet-1", day1.Add(time.Hour))
	f.seed("c", StatusCancelled, "", day2)

	st, err := f.svc.Stats(context.Background(), day1.Add(-time.Hour), day2.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, st.Total)
	assert.Equal(t, 1, st.ByStatus[StatusPending])
	assert.Equal(t, 1, st.ByStatus[StatusCancelled])
	assert.Equal(t, 0, st.ByStatus[StatusNoShow])
	assert.Equal(t, []DayCount{{Date: "2026-03-11", Count: 2}, {Date: "2026-03-12", Count: 1}}, st.PerDay)

	_, err = f.svc.Stats(context.Background(), day2, day1)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestSendReminders_OncePerAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.seed("soon", StatusApproved, "vet-1", now.Add(3*time.Hour))
	f.seed("later", StatusApproved, "vet-1", now.Add(72*time.Hour))
	f.seed("pending", StatusPending, "", now.Add(2*time.Hour))

	n, err := f.svc.SendReminders(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "reminder", f.notifier.sent[0].kind)
	assert.Equal(t, "soon", f.notifier.sent[0].ev.AppointmentID)
	assert.NotNil(t, f.repo.byID["soon"].ReminderSentAt)

	n, err = f.svc.SendReminders(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Len(t, f.notifier.sent, 1)
}

func TestSendReminders_OverlappingRunsNotifyOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed("a1", StatusApproved, "vet-1", now.Add(3*time.Hour))

	// segunda corrida con su propio servicio sobre el mismo repo
	other := NewService(f.repo, fakePets{"pet-1": {ID: "pet-1", OwnerUserID: "owner-1", Name: "Milo"}},
		fakeDir{}, f.notifier, 30*time.Minute, logger.NewNop())
	other.now = func() time.Time { return now }

	var otherSent int
	f.repo.afterList = func() {
		n, err := other.SendReminders(ctx, 24*time.Hour)
		require.NoError(t, err)
		otherSent = n
	}

	n, err := f.svc.SendReminders(ctx, 24*time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 1, otherSent)
	assert.Zero(t, n)
	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "a1", f.notifier.sent[0].ev.AppointmentID)
}
