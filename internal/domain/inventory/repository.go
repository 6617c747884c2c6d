package inventory

import (
	"context"
	"time"
)

type ListFilter struct {
	Category     string
	LowStockOnly bool
}

type Repository interface {
	Create(ctx context.Context, it Item) error
	Update(ctx context.Context, it Item) error
	GetByID(ctx context.Context, id string) (Item, error)
	// List ordena por nombre.
	List(ctx context.Context, f ListFilter) ([]Item, error)
	// Adjust suma delta de forma atómica. Si el resultado sería negativo
	// devuelve ErrInsufficientStock sin modificar nada.
	Adjust(ctx context.Context, id string, delta int, at time.Time) (Item, error)
	Delete(ctx context.Context, id string) error
}
