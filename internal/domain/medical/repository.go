package medical

import (
	"context"
	"time"
)

// Entry es la forma persistida: columnas comunes + detalle del tipo en JSON.
type Entry struct {
	ID        string
	Kind      Kind
	PetID     string
	VetUserID string
	Status    string
	DueAt     *time.Time
	Details   []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, e Entry) error
	Update(ctx context.Context, e Entry) error
	GetByID(ctx context.Context, kind Kind, id string) (Entry, error)
	// ListByPet ordena por CreatedAt descendente.
	ListByPet(ctx context.Context, kind Kind, petID string) ([]Entry, error)
	// ListDue devuelve entradas con DueAt <= until, ascendente por DueAt.
	ListDue(ctx context.Context, kind Kind, until time.Time) ([]Entry, error)
	Delete(ctx context.Context, kind Kind, id string) error
}
