package medical

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"pet-clinic/internal/platform/apperr"
	"pet-clinic/internal/platform/logger"
	"pet-clinic/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = apperr.New(apperr.KindNotFound, "medical record not found")
	ErrForbidden = apperr.New(apperr.KindForbidden, "forbidden")
)

// PetLookup resuelve el dueño de una mascota; pets.ErrNotFound si no existe.
type PetLookup interface {
	OwnerOf(ctx context.Context, petID string) (string, error)
}

type Service struct {
	repo Repository
	pets PetLookup
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, petLookup PetLookup, log logger.Logger) *Service {
	return &Service{
		repo: repo,
		pets: petLookup,
		log:  log,
		now:  time.Now,
	}
}

func (s *Service) Records() Book[MedicalRecord, *MedicalRecord] { return Book[MedicalRecord, *MedicalRecord]{s: s} }
func (s *Service) Vaccinations() Book[Vaccination, *Vaccination] { return Book[Vaccination, *Vaccination]{s: s} }
func (s *Service) Treatments() Book[Treatment, *Treatment] { return Book[Treatment, *Treatment]{s: s} }
func (s *Service) Prescriptions() Book[Prescription, *Prescription] {
	return Book[Prescription, *Prescription]{s: s}
}

type recordPtr[T any] interface {
	*T
	Record
}

// Book opera sobre un tipo de registro. Las reglas de acceso son las mismas para los cuatro:
// leen owner y staff; escriben vet o admin; editan/borran el vet autor o admin.
type Book[T any, P recordPtr[T]] struct {
	s *Service
}

func (b Book[T, P]) kind() Kind {
	var zero T
	return P(&zero).Kind()
}

// Create valida, fija autor y mascota, y deriva el estado inicial.
func (b Book[T, P]) Create(ctx context.Context, caller auth.Claims, petID string, rec T) (T, error) {
	var zero T
	if !caller.IsStaff() {
		return zero, ErrForbidden
	}

	p := P(&rec)
	fe := apperr.FieldErrors{}
	if strings.TrimSpace(petID) == "" {
		fe.Add("petId", "required")
	}
	p.validate(fe)
	if err := fe.Err(); err != nil {
		return zero, err
	}

	petID = strings.TrimSpace(petID)
	if _, err := b.s.pets.OwnerOf(ctx, petID); err != nil {
		return zero, err
	}

	now := b.s.now()
	*p.header() = Header{
		ID:        uuid.NewString(),
		PetID:     petID,
		VetUserID: caller.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.derive(now)

	e, err := toEntry(p)
	if err != nil {
		return zero, err
	}
	if err := b.s.repo.Create(ctx, e); err != nil {
		return zero, err
	}

	b.s.log.Info("medical entry created", map[string]any{
		"kind":        string(p.Kind()),
		"id":          e.ID,
		"pet_id":      e.PetID,
		"vet_user_id": e.VetUserID,
		"status":      e.Status,
	})
	return rec, nil
}

// Update reemplaza los campos editables. El estado no se recalcula: se conserva,
// salvo que status traiga uno explícito.
func (b Book[T, P]) Update(ctx context.Context, caller auth.Claims, id string, rec T, status string) (T, error) {
	var zero T
	cur, err := b.load(ctx, id)
	if err != nil {
		return zero, err
	}
	if !canEdit(caller, P(&cur).header()) {
		return zero, ErrForbidden
	}

	p := P(&rec)
	fe := apperr.FieldErrors{}
	p.validate(fe)
	status = strings.TrimSpace(status)
	if status == "" {
		p.setStatus(P(&cur).status())
	} else if !p.setStatus(status) {
		fe.Add("status", "not valid for "+string(p.Kind()))
	}
	if err := fe.Err(); err != nil {
		return zero, err
	}

	h := *P(&cur).header()
	h.UpdatedAt = b.s.now()
	*p.header() = h

	e, err := toEntry(p)
	if err != nil {
		return zero, err
	}
	if err := b.s.repo.Update(ctx, e); err != nil {
		return zero, err
	}
	return rec, nil
}

func (b Book[T, P]) Get(ctx context.Context, caller auth.Claims, id string) (T, error) {
	var zero T
	rec, err := b.load(ctx, id)
	if err != nil {
		return zero, err
	}
	if err := b.s.canRead(ctx, caller, P(&rec).header().PetID); err != nil {
		return zero, err
	}
	return rec, nil
}

func (b Book[T, P]) ListByPet(ctx context.Context, caller auth.Claims, petID string) ([]T, error) {
	petID = strings.TrimSpace(petID)
	if err := b.s.canRead(ctx, caller, petID); err != nil {
		return nil, err
	}
	entries, err := b.s.repo.ListByPet(ctx, b.kind(), petID)
	if err != nil {
		return nil, err
	}
	return fromEntries[T, P](entries)
}

func (b Book[T, P]) Delete(ctx context.Context, caller auth.Claims, id string) error {
	cur, err := b.load(ctx, id)
	if err != nil {
		return err
	}
	h := P(&cur).header()
	if !canEdit(caller, h) {
		return ErrForbidden
	}
	if err := b.s.repo.Delete(ctx, b.kind(), h.ID); err != nil {
		return err
	}
	b.s.log.Info("medical entry deleted", map[string]any{
		"kind":   string(b.kind()),
		"id":     h.ID,
		"by":     caller.UserID,
		"pet_id": h.PetID,
	})
	return nil
}

func (b Book[T, P]) load(ctx context.Context, id string) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, ErrNotFound
	}
	e, err := b.s.repo.GetByID(ctx, b.kind(), id)
	if err != nil {
		return zero, err
	}
	return fromEntry[T, P](e)
}

// VaccinationsDue lista vacunas con próxima dosis dentro de days días (vencidas incluidas).
func (s *Service) VaccinationsDue(ctx context.Context, caller auth.Claims, days int) ([]Vaccination, error) {
	if !caller.IsStaff() {
		return nil, ErrForbidden
	}
	if days < 0 {
		return nil, apperr.Invalid("days", "cannot be negative")
	}
	until := s.now().Add(time.Duration(days) * 24 * time.Hour)
	entries, err := s.repo.ListDue(ctx, KindVaccination, until)
	if err != nil {
		return nil, err
	}
	return fromEntries[Vaccination](entries)
}

// canRead: owner de la mascota o staff.
func (s *Service) canRead(ctx context.Context, caller auth.Claims, petID string) error {
	ownerID, err := s.pets.OwnerOf(ctx, petID)
	if err != nil {
		return err
	}
	if ownerID != caller.UserID && !caller.IsStaff() {
		return ErrForbidden
	}
	return nil
}

func canEdit(caller auth.Claims, h *Header) bool {
	if caller.HasRole(auth.RoleAdmin) {
		return true
	}
	return caller.HasRole(auth.RoleVet) && h.VetUserID == caller.UserID
}

func toEntry(r Record) (Entry, error) {
	details, err := json.Marshal(r)
	if err != nil {
		return Entry{}, fmt.Errorf("encode %s: %w", r.Kind(), err)
	}
	h := r.header()
	return Entry{
		ID:        h.ID,
		Kind:      r.Kind(),
		PetID:     h.PetID,
		VetUserID: h.VetUserID,
		Status:    r.status(),
		DueAt:     r.dueAt(),
		Details:   details,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}, nil
}

func fromEntry[T any, P recordPtr[T]](e Entry) (T, error) {
	var rec T
	p := P(&rec)
	if e.Kind != p.Kind() {
		return rec, ErrNotFound
	}
	if err := json.Unmarshal(e.Details, p); err != nil {
		return rec, fmt.Errorf("decode %s %s: %w", e.Kind, e.ID, err)
	}
	*p.header() = Header{
		ID:        e.ID,
		PetID:     e.PetID,
		VetUserID: e.VetUserID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	return rec, nil
}

func fromEntries[T any, P recordPtr[T]](entries []Entry) ([]T, error) {
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		rec, err := fromEntry[T, P](e)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
