package users

import (
	"context"

	"pet-clinic/internal/ports/auth"
)

// Repository: Create devuelve ErrEmailTaken si el email ya existe;
// lecturas devuelven ErrNotFound.
type Repository interface {
	Create(ctx context.Context, u User) error
	Update(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ListByRole(ctx context.Context, role auth.Role) ([]User, error)
}
