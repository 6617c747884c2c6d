package notifications

import (
	"context"
	"time"
)

type ListFilter struct {
	UnreadOnly bool
	Limit      int
}

// Repository: las operaciones de lectura/escritura quedan acotadas a userID
// donde corresponde; MarkRead es condicional (solo si no estaba leída).
type Repository interface {
	Create(ctx context.Context, n Notification) error
	GetByID(ctx context.Context, id string) (Notification, error)
	ListByUser(ctx context.Context, userID string, f ListFilter) ([]Notification, error)
	MarkRead(ctx context.Context, id string, at time.Time) error
	MarkAllRead(ctx context.Context, userID string, at time.Time) (int, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	Delete(ctx context.Context, id string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
