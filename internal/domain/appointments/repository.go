package appointments

import (
	"context"
	"time"
)

type ListFilter struct {
	OwnerUserID string
	VetUserID   string
	PetID       string
	Statuses    []Status
	From        *time.Time // sobre RequestedDateTime, inclusivo
	To          *time.Time // exclusivo
	Limit       int
}

// DayCount es la cantidad de turnos por día (fecha UTC de RequestedDateTime).
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id string) (Appointment, error)

	// Update escribe a solo si el estado guardado sigue siendo expected;
	// si cambió devuelve ErrInvalidState.
	Update(ctx context.Context, a Appointment, expected Status) error

	// ClaimReminder marca ReminderSentAt solo si el turno sigue Approved y
	// sin recordatorio. Devuelve false si otro ya lo tomó.
	ClaimReminder(ctx context.Context, id string, at time.Time) (bool, error)

	// List ordena por RequestedDateTime ascendente.
	List(ctx context.Context, f ListFilter) ([]Appointment, error)

	// FindConflicts devuelve turnos no cancelados del vet con RequestedDateTime
	// en el intervalo abierto (from, to), excluyendo excludeID.
	FindConflicts(ctx context.Context, vetUserID string, from, to time.Time, excludeID string) ([]Appointment, error)

	CountByStatus(ctx context.Context, from, to *time.Time) (map[Status]int, error)
	CountPerDay(ctx context.Context, from, to time.Time) ([]DayCount, error)
}
