package appointments

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
	StatusNoShow    Status = "NoShow"
)

var allStatuses = []Status{StatusPending, StatusApproved, StatusCancelled, StatusCompleted, StatusNoShow}

// ParseStatus acepta cualquier capitalización; "no-show"/"no_show" => NoShow.
func ParseStatus(s string) (Status, bool) {
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, st := range allStatuses {
		if strings.ToLower(string(st)) == norm {
			return st, true
		}
	}
	return "", false
}

// Grafo de transiciones permitido. Completed, Cancelled y NoShow son terminales.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusCancelled},
	StatusApproved: {StatusCancelled, StatusCompleted, StatusNoShow},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Appointment es un turno pedido por un owner para una de sus mascotas.
// Nunca se borra: cancelar es un estado.
type Appointment struct {
	ID          string
	PetID       string
	OwnerUserID string
	VetUserID   *string // solo lo asigna admin

	RequestedDateTime time.Time
	ActualDateTime    *time.Time

	ReasonForVisit     string
	Notes              string
	AdminNotes         string
	CancellationReason string

	Status Status

	ReminderSentAt *time.Time

	CreatedAt       time.Time
	UpdatedAt       time.Time
	UpdatedByUserID string
}

func (a Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusApproved
}

func (a Appointment) RequiresAction() bool {
	return a.Status == StatusPending
}

func (a Appointment) AssignedTo(userID string) bool {
	return a.VetUserID != nil && *a.VetUserID == userID
}
