package notifications

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-clinic/internal/domain/users"
	"pet-clinic/internal/platform/apperr"
	"pet-clinic/internal/platform/logger"
	"pet-clinic/internal/platform/metrics"
	"pet-clinic/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrNotFound = apperr.New(apperr.KindNotFound, "notification not found")
)

const (
	defaultListLimit = 50
	mailTimeout      = 5 * time.Second
)

// Mailer es el espejo opcional por email (SES en producción).
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Directory resuelve destinatarios: email para el espejo y usuarios por rol
// para broadcasts.
type Directory interface {
	Profile(ctx context.Context, userID string) (users.Profile, error)
	IDsByRole(ctx context.Context, role auth.Role) ([]string, error)
}

type Options struct {
	Location  *time.Location
	Directory Directory
	Mailer    Mailer // nil = sin email
}

type Service struct {
	repo   Repository
	dir    Directory
	mailer Mailer
	loc    *time.Location
	log    logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, log logger.Logger, opts Options) *Service {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:   repo,
		dir:    opts.Directory,
		mailer: opts.Mailer,
		loc:    loc,
		log:    log,
		now:    time.Now,
	}
}

// Create persiste un Draft. Es el único punto de alta.
func (s *Service) Create(ctx context.Context, d Draft) (Notification, error) {
	fe := apperr.FieldErrors{}
	if strings.TrimSpace(d.UserID) == "" {
		fe.Add("userId", "required")
	}
	if _, ok := ParseType(string(d.Type)); !ok {
		fe.Add("type", "unknown notification type")
	}
	if strings.TrimSpace(d.Title) == "" {
		fe.Add("title", "required")
	}
	if d.Payload != nil && d.Payload.Type() != d.Type {
		fe.Add("data", "payload does not match notification type")
	}
	if err := fe.Err(); err != nil {
		return Notification{}, err
	}

	n := Notification{
		ID:        uuid.NewString(),
		UserID:    d.UserID,
		Type:      d.Type,
		Title:     strings.TrimSpace(d.Title),
		Message:   strings.TrimSpace(d.Message),
		Payload:   d.Payload,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return Notification{}, err
	}

	metrics.RecordNotificationCreated(string(n.Type))
	s.mirror(ctx, n)
	return n, nil
}

// mirror manda el email si hay Mailer. Best-effort: nunca falla el alta.
func (s *Service) mirror(ctx context.Context, n Notification) {
	if s.mailer == nil || s.dir == nil {
		return
	}
	p, err := s.dir.Profile(ctx, n.UserID)
	if err != nil || p.Email == "" {
		s.log.Debug("email mirror skipped", map[string]any{"notification_id": n.ID, "err": err})
		return
	}

	mctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), mailTimeout)
	defer cancel()
	if err := s.mailer.Send(mctx, p.Email, n.Title, n.Message); err != nil {
		s.log.Warn("email mirror failed", map[string]any{
			"notification_id": n.ID,
			"user_id":         n.UserID,
			"err":             err,
		})
	}
}

func (s *Service) NotifyAppointmentApproved(ctx context.Context, ev AppointmentEvent) (Notification, error) {
	return s.Create(ctx, BuildApproved(ev, s.loc))
}

func (s *Service) NotifyAppointmentCancelled(ctx context.Context, ev AppointmentEvent) (Notification, error) {
	return s.Create(ctx, BuildCancelled(ev, s.loc))
}

func (s *Service) NotifyVetAssigned(ctx context.Context, ev AppointmentEvent) (Notification, error) {
	return s.Create(ctx, BuildAssigned(ev, s.loc))
}

func (s *Service) NotifyReminder(ctx context.Context, ev AppointmentEvent) (Notification, error) {
	return s.Create(ctx, BuildReminder(ev, s.loc))
}

type SystemInput struct {
	UserID     string    // destinatario puntual, o
	Role       auth.Role // broadcast a todos los usuarios del rol
	Title      string
	Message    string
	Category   string
	Attributes map[string]string
}

// NotifySystem crea una notificación system para un usuario o para un rol.
func (s *Service) NotifySystem(ctx context.Context, in SystemInput) ([]Notification, error) {
	var targets []string
	switch {
	case strings.TrimSpace(in.UserID) != "":
		targets = []string{strings.TrimSpace(in.UserID)}
	case in.Role != "":
		if s.dir == nil {
			return nil, errors.New("notifications: directory not configured for role broadcast")
		}
		ids, err := s.dir.IDsByRole(ctx, in.Role)
		if err != nil {
			return nil, err
		}
		targets = ids
	default:
		return nil, apperr.Invalid("userId", "userId or role is required")
	}

	out := make([]Notification, 0, len(targets))
	for _, uid := range targets {
		n, err := s.Create(ctx, BuildSystem(uid, in.Title, in.Message, in.Category, in.Attributes))
		if err != nil {
			return out, err
		}
		out = append(out, n)
	}
	return out, nil
}

func (s *Service) ListForUser(ctx context.Context, userID string, f ListFilter) ([]Notification, error) {
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	return s.repo.ListByUser(ctx, userID, f)
}

// owned trae la notificación solo si pertenece a userID; si no, NotFound.
func (s *Service) owned(ctx context.Context, userID, id string) (Notification, error) {
	n, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Notification{}, err
	}
	if n.UserID != userID {
		return Notification{}, ErrNotFound
	}
	return n, nil
}

// MarkRead es idempotente: si ya estaba leída devuelve el estado actual sin tocarlo.
func (s *Service) MarkRead(ctx context.Context, userID, id string) (Notification, error) {
	n, err := s.owned(ctx, userID, id)
	if err != nil {
		return Notification{}, err
	}
	if !n.MarkRead(s.now()) {
		return n, nil
	}
	if err := s.repo.MarkRead(ctx, n.ID, *n.ReadAt); err != nil {
		return Notification{}, err
	}
	// Releer: si otra request la marcó antes, vale su ReadAt.
	return s.repo.GetByID(ctx, n.ID)
}

func (s *Service) MarkAllRead(ctx context.Context, userID string) (int, error) {
	return s.repo.MarkAllRead(ctx, userID, s.now())
}

func (s *Service) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	n, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, n.ID)
}

// PurgeOlderThan borra notificaciones creadas hace más de age.
func (s *Service) PurgeOlderThan(ctx context.Context, age time.Duration) (int, error) {
	if age <= 0 {
		return 0, apperr.Invalid("olderThan", "must be positive")
	}
	cutoff := s.now().Add(-age)
	n, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	metrics.RecordNotificationsPurged(n)
	s.log.Info("notifications purged", map[string]any{"deleted": n, "cutoff": cutoff.Format(time.RFC3339)})
	return n, nil
}
