package notifications

import (
	"strings"
	"time"
)

type Type string

const (
	TypeGeneral              Type = "general"
	TypeAppointmentApproved  Type = "appointment_approved"
	TypeAppointmentCancelled Type = "appointment_cancelled"
	TypeAppointmentAssigned  Type = "appointment_assigned"
	TypeReminder             Type = "reminder"
	TypeSystem               Type = "system"
)

func ParseType(s string) (Type, bool) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TypeGeneral, TypeAppointmentApproved, TypeAppointmentCancelled,
		TypeAppointmentAssigned, TypeReminder, TypeSystem:
		return t, true
	default:
		return "", false
	}
}

// Notification es un mensaje persistido para un usuario. Una vez leída,
// ReadAt queda fijo.
type Notification struct {
	ID     string
	UserID string
	Type   Type

	Title   string
	Message string
	Payload Payload // nil para general

	IsRead bool
	ReadAt *time.Time

	CreatedAt time.Time
}

// MarkRead devuelve false si ya estaba leída (no toca ReadAt).
func (n *Notification) MarkRead(at time.Time) bool {
	if n.IsRead {
		return false
	}
	n.IsRead = true
	t := at
	n.ReadAt = &t
	return true
}

// AppointmentEvent es lo que appointments entrega después de commitear una transición.
type AppointmentEvent struct {
	AppointmentID     string
	PetID             string
	PetName           string
	RequestedDateTime time.Time

	OwnerUserID string
	OwnerName   string
	VetUserID   string
	VetName     string

	ReasonForVisit string
	Reason         string // motivo de cancelación
	AdminNotes     string
}
