package pets

import (
	"context"
	"strings"
	"time"

	"pet-clinic/internal/platform/apperr"
	"pet-clinic/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = apperr.New(apperr.KindNotFound, "pet not found")
	ErrForbidden = apperr.New(apperr.KindForbidden, "forbidden")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name      string
	Species   string
	Breed     string
	Sex       string
	BirthDate *time.Time
	Microchip string
	WeightKg  *float64
	Notes     string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	fe := apperr.FieldErrors{}
	if strings.TrimSpace(ownerUserID) == "" {
		fe.Add("ownerUserId", "required")
	}
	if strings.TrimSpace(in.Name) == "" {
		fe.Add("name", "required")
	}
	species, ok := ParseSpecies(in.Species)
	if !ok {
		fe.Add("species", "must be one of dog, cat, bird, rabbit, other")
	}
	sex, ok := ParseSex(in.Sex)
	if !ok {
		fe.Add("sex", "must be one of male, female, unknown")
	}
	now := s.now()
	if in.BirthDate != nil && in.BirthDate.After(now) {
		fe.Add("birthDate", "cannot be in the future")
	}
	if in.WeightKg != nil && *in.WeightKg <= 0 {
		fe.Add("weightKg", "must be positive")
	}
	if err := fe.Err(); err != nil {
		return Pet{}, err
	}

	p := Pet{
		ID:          uuid.NewString(),
		OwnerUserID: strings.TrimSpace(ownerUserID),
		Name:        strings.TrimSpace(in.Name),
		Species:     species,
		Breed:       strings.TrimSpace(in.Breed),
		Sex:         sex,
		BirthDate:   in.BirthDate,
		Microchip:   strings.TrimSpace(in.Microchip),
		WeightKg:    in.WeightKg,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	if strings.TrimSpace(id) == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

// OwnerOf devuelve el ownerUserID de una mascota. medical controla acceso
// solo con esto.
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.OwnerUserID, nil
}

// CanRead: dueño o staff (vet/admin).
func CanRead(c auth.Claims, p Pet) bool {
	return p.OwnerUserID == c.UserID || c.IsStaff()
}

// CanWrite: dueño o admin. Los vets registran historia clínica, no editan el perfil.
func CanWrite(c auth.Claims, p Pet) bool {
	return p.OwnerUserID == c.UserID || c.HasRole(auth.RoleAdmin)
}

// patchBirthDate distingue "no enviado" de "null" (limpiar).
type patchBirthDate struct {
	Present bool
	Value   *time.Time
}

type UpdateProfileInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name      *string
	Species   *string
	Breed     *string
	Sex       *string
	BirthDate patchBirthDate
	Microchip *string
	WeightKg  *float64
	Notes     *string
}

func (s *Service) UpdateProfile(ctx context.Context, petID string, in UpdateProfileInput) (Pet, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}

	fe := apperr.FieldErrors{}
	if in.Name != nil {
		if v := strings.TrimSpace(*in.Name); v == "" {
			fe.Add("name", "cannot be empty")
		} else {
			p.Name = v
		}
	}
	if in.Species != nil {
		if sp, ok := ParseSpecies(*in.Species); ok {
			p.Species = sp
		} else {
			fe.Add("species", "must be one of dog, cat, bird, rabbit, other")
		}
	}
	if in.Sex != nil {
		if sx, ok := ParseSex(*in.Sex); ok {
			p.Sex = sx
		} else {
			fe.Add("sex", "must be one of male, female, unknown")
		}
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Microchip != nil {
		p.Microchip = strings.TrimSpace(*in.Microchip)
	}
	if in.Notes != nil {
		p.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.WeightKg != nil {
		if *in.WeightKg <= 0 {
			fe.Add("weightKg", "must be positive")
		} else {
			w := *in.WeightKg
			p.WeightKg = &w
		}
	}

	now := s.now()
	if in.BirthDate.Present {
		if in.BirthDate.Value != nil && in.BirthDate.Value.After(now) {
			fe.Add("birthDate", "cannot be in the future")
		} else {
			p.BirthDate = in.BirthDate.Value
		}
	}
	if err := fe.Err(); err != nil {
		return Pet{}, err
	}

	p.UpdatedAt = now
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}
