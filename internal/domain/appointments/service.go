package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-clinic/internal/domain/notifications"
	"pet-clinic/internal/domain/pets"
	"pet-clinic/internal/domain/users"
	"pet-clinic/internal/platform/apperr"
	"pet-clinic/internal/platform/logger"
	"pet-clinic/internal/platform/metrics"
	"pet-clinic/internal/ports/auth"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNotFound     = apperr.New(apperr.KindNotFound, "appointment not found")
	ErrForbidden    = apperr.New(apperr.KindForbidden, "forbidden")
	ErrInvalidState = apperr.New(apperr.KindInvalidState, "status transition not allowed")
	ErrConflict     = apperr.New(apperr.KindConflict, "vet already has an appointment at that time")
)

const (
	DefaultSlotDuration = 30 * time.Minute
	maxReasonLen        = 500
)

// PetLookup confirma la mascota y su dueño.
type PetLookup interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

// Directory resuelve id -> nombre y roles.
type Directory interface {
	Profile(ctx context.Context, userID string) (users.Profile, error)
}

// Notifier crea las notificaciones que siguen a cada transición.
type Notifier interface {
	NotifyAppointmentApproved(ctx context.Context, ev notifications.AppointmentEvent) (notifications.Notification, error)
	NotifyAppointmentCancelled(ctx context.Context, ev notifications.AppointmentEvent) (notifications.Notification, error)
	NotifyVetAssigned(ctx context.Context, ev notifications.AppointmentEvent) (notifications.Notification, error)
	NotifyReminder(ctx context.Context, ev notifications.AppointmentEvent) (notifications.Notification, error)
}

type Service struct {
	repo     Repository
	pets     PetLookup
	dir      Directory
	notifier Notifier
	slot     time.Duration
	log      logger.Logger
	now      func() time.Time
}

func NewService(repo Repository, petLookup PetLookup, dir Directory, notifier Notifier, slot time.Duration, log logger.Logger) *Service {
	if slot <= 0 {
		slot = DefaultSlotDuration
	}
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Service{
		repo:     repo,
		pets:     petLookup,
		dir:      dir,
		notifier: notifier,
		slot:     slot,
		log:      log,
		now:      time.Now,
	}
}

func invalidTransition(from, to Status) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidState, from, to)
}

type RequestInput struct {
	PetID             string
	RequestedDateTime time.Time
	ReasonForVisit    string
	Notes             string
}

// Request crea un turno Pending. La mascota tiene que ser del caller.
func (s *Service) Request(ctx context.Context, caller auth.Claims, in RequestInput) (Appointment, error) {
	now := s.now()

	fe := apperr.FieldErrors{}
	if strings.TrimSpace(in.PetID) == "" {
		fe.Add("petId", "required")
	}
	if in.RequestedDateTime.IsZero() {
		fe.Add("requestedDateTime", "required")
	} else if !in.RequestedDateTime.After(now) {
		fe.Add("requestedDateTime", "must be in the future")
	}
	reason := strings.TrimSpace(in.ReasonForVisit)
	if reason == "" {
		fe.Add("reasonForVisit", "required")
	} else if len(reason) > maxReasonLen {
		fe.Add("reasonForVisit", fmt.Sprintf("must be at most %d characters", maxReasonLen))
	}
	if err := fe.Err(); err != nil {
		return Appointment{}, err
	}

	pet, err := s.pets.GetByID(ctx, strings.TrimSpace(in.PetID))
	if err != nil {
		return Appointment{}, err
	}
	if pet.OwnerUserID != caller.UserID {
		return Appointment{}, ErrForbidden
	}

	a := Appointment{
		ID:                uuid.NewString(),
		PetID:             pet.ID,
		OwnerUserID:       caller.UserID,
		RequestedDateTime: in.RequestedDateTime.UTC(),
		ReasonForVisit:    reason,
		Notes:             strings.TrimSpace(in.Notes),
		Status:            StatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
		UpdatedByUserID:   caller.UserID,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}

	s.log.Info("appointment requested", map[string]any{
		"appointment_id": a.ID,
		"pet_id":         a.PetID,
		"owner_user_id":  a.OwnerUserID,
	})
	return a, nil
}

type ApproveInput struct {
	VetUserID  string // opcional
	AdminNotes string // opcional
}

// Approve: solo admin, solo desde Pending. Si hay vet (nuevo o ya asignado)
// se chequea solapamiento dentro del slot de la clínica.
func (s *Service) Approve(ctx context.Context, caller auth.Claims, id string, in ApproveInput) (Appointment, error) {
	if !caller.HasRole(auth.RoleAdmin) {
		return Appointment{}, ErrForbidden
	}

	a, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Appointment{}, err
	}
	if a.Status != StatusPending {
		return Appointment{}, invalidTransition(a.Status, StatusApproved)
	}

	newVet := strings.TrimSpace(in.VetUserID)
	var vetProfile users.Profile
	if newVet != "" {
		vetProfile, err = s.dir.Profile(ctx, newVet)
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				return Appointment{}, apperr.Invalid("vetUserId", "unknown user")
			}
			return Appointment{}, err
		}
		if !vetProfile.HasRole(auth.RoleVet) {
			return Appointment{}, apperr.Invalid("vetUserId", "user is not a vet")
		}
	}

	vetID := newVet
	if vetID == "" && a.VetUserID != nil {
		vetID = *a.VetUserID
	}
	if vetID != "" {
		// Lectura y decisión sin lock: dos approvals simultáneos pueden solaparse.
		conflicts, err := s.repo.FindConflicts(ctx, vetID,
			a.RequestedDateTime.Add(-s.slot), a.RequestedDateTime.Add(s.slot), a.ID)
		if err != nil {
			return Appointment{}, err
		}
		if len(conflicts) > 0 {
			metrics.RecordConflict()
			s.log.Info("approval blocked by vet conflict", map[string]any{
				"appointment_id": a.ID,
				"vet_user_id":    vetID,
				"conflicts_with": conflicts[0].ID,
			})
			return Appointment{}, ErrConflict
		}
	}

	newlyAssigned := newVet != "" && !a.AssignedTo(newVet)

	prev := a.Status
	a.Status = StatusApproved
	if newVet != "" {
		a.VetUserID = &newVet
	}
	if notes := strings.TrimSpace(in.AdminNotes); notes != "" {
		a.AdminNotes = notes
	}
	a.UpdatedAt = s.now()
	a.UpdatedByUserID = caller.UserID

	if err := s.repo.Update(ctx, a, prev); err != nil {
		return Appointment{}, err
	}
	s.transitioned(a, prev)

	ev := s.event(ctx, a)
	if newVet != "" {
		ev.VetName = vetProfile.FullName
	}
	s.notify(ctx, a, "approved", s.notifier.NotifyAppointmentApproved, ev)
	if newlyAssigned {
		s.notify(ctx, a, "assigned", s.notifier.NotifyVetAssigned, ev)
	}
	return a, nil
}

// Cancel: admin, o el owner del turno. Solo desde Pending o Approved.
func (s *Service) Cancel(ctx context.Context, caller auth.Claims, id, reason string) (Appointment, error) {
	a, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Appointment{}, err
	}
	if !caller.HasRole(auth.RoleAdmin) && a.OwnerUserID != caller.UserID {
		return Appointment{}, ErrForbidden
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Appointment{}, apperr.Invalid("reason", "required")
	}
	if len(reason) > maxReasonLen {
		return Appointment{}, apperr.Invalid("reason", fmt.Sprintf("must be at most %d characters", maxReasonLen))
	}
	if !a.CanBeCancelled() {
		return Appointment{}, invalidTransition(a.Status, StatusCancelled)
	}

	prev := a.Status
	a.Status = StatusCancelled
	a.CancellationReason = reason
	a.UpdatedAt = s.now()
	a.UpdatedByUserID = caller.UserID

	if err := s.repo.Update(ctx, a, prev); err != nil {
		return Appointment{}, err
	}
	s.transitioned(a, prev)

	ev := s.event(ctx, a)
	ev.Reason = reason
	s.notify(ctx, a, "cancelled", s.notifier.NotifyAppointmentCancelled, ev)
	return a, nil
}

type CompleteInput struct {
	ActualDateTime *time.Time // default: ahora
	Notes          string
}

// Complete: vet asignado o admin, desde Approved.
func (s *Service) Complete(ctx context.Context, caller auth.Claims, id string, in CompleteInput) (Appointment, error) {
	return s.close(ctx, caller, id, StatusCompleted, in)
}

// MarkNoShow: vet asignado o admin, desde Approved.
func (s *Service) MarkNoShow(ctx context.Context, caller auth.Claims, id string) (Appointment, error) {
	return s.close(ctx, caller, id, StatusNoShow, CompleteInput{})
}

func (s *Service) close(ctx context.Context, caller auth.Claims, id string, to Status, in CompleteInput) (Appointment, error) {
	a, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Appointment{}, err
	}
	isAdmin := caller.HasRole(auth.RoleAdmin)
	isAssignedVet := caller.HasRole(auth.RoleVet) && (a.VetUserID == nil || a.AssignedTo(caller.UserID))
	if !isAdmin && !isAssignedVet {
		return Appointment{}, ErrForbidden
	}
	if !CanTransition(a.Status, to) {
		return Appointment{}, invalidTransition(a.Status, to)
	}

	now := s.now()
	prev := a.Status
	a.Status = to
	if to == StatusCompleted {
		actual := now
		if in.ActualDateTime != nil {
			actual = in.ActualDateTime.UTC()
		}
		a.ActualDateTime = &actual
	}
	if notes := strings.TrimSpace(in.Notes); notes != "" {
		a.AdminNotes = notes
	}
	a.UpdatedAt = now
	a.UpdatedByUserID = caller.UserID

	if err := s.repo.Update(ctx, a, prev); err != nil {
		return Appointment{}, err
	}
	s.transitioned(a, prev)
	return a, nil
}

type StatusChange struct {
	Status     Status
	AdminNotes string
	VetUserID  string
	Reason     string
}

// ChangeStatus despacha PUT /appointments/{id}/status a la operación concreta.
func (s *Service) ChangeStatus(ctx context.Context, caller auth.Claims, id string, in StatusChange) (Appointment, error) {
	switch in.Status {
	case StatusApproved:
		return s.Approve(ctx, caller, id, ApproveInput{VetUserID: in.VetUserID, AdminNotes: in.AdminNotes})
	case StatusCancelled:
		reason := in.Reason
		if strings.TrimSpace(reason) == "" {
			reason = in.AdminNotes
		}
		return s.Cancel(ctx, caller, id, reason)
	case StatusCompleted:
		return s.Complete(ctx, caller, id, CompleteInput{Notes: in.AdminNotes})
	case StatusNoShow:
		return s.MarkNoShow(ctx, caller, id)
	default:
		return Appointment{}, apperr.Invalid("status", "must be one of Approved, Cancelled, Completed, NoShow")
	}
}

// Get: el owner ve los suyos; staff ve todos.
func (s *Service) Get(ctx context.Context, caller auth.Claims, id string) (Appointment, error) {
	a, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Appointment{}, err
	}
	if a.OwnerUserID != caller.UserID && !caller.IsStaff() {
		return Appointment{}, ErrForbidden
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Appointment, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Appointment, error) {
	return s.repo.List(ctx, ListFilter{OwnerUserID: ownerUserID})
}

func (s *Service) ListByVet(ctx context.Context, vetUserID string) ([]Appointment, error) {
	return s.repo.List(ctx, ListFilter{VetUserID: vetUserID})
}

func (s *Service) ListByStatus(ctx context.Context, st Status) ([]Appointment, error) {
	return s.repo.List(ctx, ListFilter{Statuses: []Status{st}})
}

// Pending es la cola de turnos que requieren acción de admin.
func (s *Service) Pending(ctx context.Context) ([]Appointment, error) {
	return s.ListByStatus(ctx, StatusPending)
}

type Stats struct {
	From     time.Time
	To       time.Time
	Total    int
	ByStatus map[Status]int
	PerDay   []DayCount
}

// Stats junta conteos por estado y por día en paralelo.
func (s *Service) Stats(ctx context.Context, from, to time.Time) (Stats, error) {
	if !to.After(from) {
		return Stats{}, apperr.Invalid("to", "must be after from")
	}

	var (
		byStatus map[Status]int
		perDay   []DayCount
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byStatus, err = s.repo.CountByStatus(gctx, &from, &to)
		return err
	})
	g.Go(func() error {
		var err error
		perDay, err = s.repo.CountPerDay(gctx, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	out := Stats{From: from, To: to, ByStatus: make(map[Status]int, len(allStatuses)), PerDay: perDay}
	for _, st := range allStatuses {
		out.ByStatus[st] = byStatus[st]
		out.Total += byStatus[st]
	}
	return out, nil
}

// SendReminders avisa a los owners de turnos Approved dentro de la ventana.
// Cada turno se recuerda una sola vez (ReminderSentAt).
func (s *Service) SendReminders(ctx context.Context, window time.Duration) (int, error) {
	if window <= 0 {
		return 0, apperr.Invalid("window", "must be positive")
	}
	now := s.now()
	until := now.Add(window)

	due, err := s.repo.List(ctx, ListFilter{
		Statuses: []Status{StatusApproved},
		From:     &now,
		To:       &until,
	})
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, a := range due {
		if a.ReminderSentAt != nil {
			continue
		}
		// Primero se reclama; si otra corrida ya lo tomó no se vuelve a avisar.
		claimed, err := s.repo.ClaimReminder(ctx, a.ID, now)
		if err != nil {
			return sent, err
		}
		if !claimed {
			continue
		}
		a.ReminderSentAt = &now
		s.notify(ctx, a, "reminder", s.notifier.NotifyReminder, s.event(ctx, a))
		sent++
	}

	s.log.Info("appointment reminders sent", map[string]any{"count": sent, "window": window.String()})
	return sent, nil
}

// Detailed es el turno con nombres resueltos para la API.
type Detailed struct {
	Appointment
	PetName   string
	OwnerName string
	VetName   string
}

// Describe resuelve nombres de mascota, owner y vet. Un lookup fallido deja el nombre vacío.
func (s *Service) Describe(ctx context.Context, items []Appointment) []Detailed {
	petNames := map[string]string{}
	userNames := map[string]string{}

	petName := func(id string) string {
		if v, ok := petNames[id]; ok {
			return v
		}
		name := ""
		if p, err := s.pets.GetByID(ctx, id); err == nil {
			name = p.Name
		}
		petNames[id] = name
		return name
	}
	userName := func(id string) string {
		if id == "" {
			return ""
		}
		if v, ok := userNames[id]; ok {
			return v
		}
		name := ""
		if p, err := s.dir.Profile(ctx, id); err == nil {
			name = p.FullName
		}
		userNames[id] = name
		return name
	}

	out := make([]Detailed, 0, len(items))
	for _, a := range items {
		d := Detailed{Appointment: a, PetName: petName(a.PetID), OwnerName: userName(a.OwnerUserID)}
		if a.VetUserID != nil {
			d.VetName = userName(*a.VetUserID)
		}
		out = append(out, d)
	}
	return out
}

func (s *Service) event(ctx context.Context, a Appointment) notifications.AppointmentEvent {
	d := s.Describe(ctx, []Appointment{a})[0]
	ev := notifications.AppointmentEvent{
		AppointmentID:     a.ID,
		PetID:             a.PetID,
		PetName:           d.PetName,
		RequestedDateTime: a.RequestedDateTime,
		OwnerUserID:       a.OwnerUserID,
		OwnerName:         d.OwnerName,
		VetName:           d.VetName,
		ReasonForVisit:    a.ReasonForVisit,
		AdminNotes:        a.AdminNotes,
	}
	if a.VetUserID != nil {
		ev.VetUserID = *a.VetUserID
	}
	return ev
}

type nopNotifier struct{}

func (nopNotifier) NotifyAppointmentApproved(context.Context, notifications.AppointmentEvent) (notifications.Notification, error) {
	return notifications.Notification{}, nil
}

func (nopNotifier) NotifyAppointmentCancelled(context.Context, notifications.AppointmentEvent) (notifications.Notification, error) {
	return notifications.Notification{}, nil
}

func (nopNotifier) NotifyVetAssigned(context.Context, notifications.AppointmentEvent) (notifications.Notification, error) {
	return notifications.Notification{}, nil
}

func (nopNotifier) NotifyReminder(context.Context, notifications.AppointmentEvent) (notifications.Notification, error) {
	return notifications.Notification{}, nil
}

type notifyFunc func(context.Context, notifications.AppointmentEvent) (notifications.Notification, error)

// notify corre después del commit: un fallo se loguea, no revierte la transición.
func (s *Service) notify(ctx context.Context, a Appointment, kind string, fn notifyFunc, ev notifications.AppointmentEvent) {
	if _, err := fn(ctx, ev); err != nil {
		s.log.Error("appointment notification failed", map[string]any{
			"appointment_id": a.ID,
			"kind":           kind,
			"err":            err,
		})
	}
}

func (s *Service) transitioned(a Appointment, from Status) {
	metrics.RecordTransition(string(from), string(a.Status))
	s.log.Info("appointment status changed", map[string]any{
		"appointment_id": a.ID,
		"from":           string(from),
		"to":             string(a.Status),
		"by":             a.UpdatedByUserID,
	})
}
