package notifications

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Payload es la unión etiquetada de datos estructurados por tipo.
// En el cable viaja como string JSON en "data".
type Payload interface {
	Type() Type
}

type AppointmentApprovedData struct {
	AppointmentID     string    `json:"appointmentId"`
	PetID             string    `json:"petId"`
	PetName           string    `json:"petName"`
	RequestedDateTime time.Time `json:"requestedDateTime"`
	VetUserID         string    `json:"vetUserId,omitempty"`
	VetName           string    `json:"vetName,omitempty"`
	AdminNotes        string    `json:"adminNotes,omitempty"`
}

func (AppointmentApprovedData) Type() Type { return TypeAppointmentApproved }

type AppointmentCancelledData struct {
	AppointmentID     string    `json:"appointmentId"`
	PetID             string    `json:"petId"`
	PetName           string    `json:"petName"`
	RequestedDateTime time.Time `json:"requestedDateTime"`
	Reason            string    `json:"reason,omitempty"`
}

func (AppointmentCancelledData) Type() Type { return TypeAppointmentCancelled }

type AppointmentAssignedData struct {
	AppointmentID     string    `json:"appointmentId"`
	PetID             string    `json:"petId"`
	PetName           string    `json:"petName"`
	RequestedDateTime time.Time `json:"requestedDateTime"`
	OwnerName         string    `json:"ownerName,omitempty"`
	ReasonForVisit    string    `json:"reasonForVisit,omitempty"`
}

func (AppointmentAssignedData) Type() Type { return TypeAppointmentAssigned }

type ReminderData struct {
	AppointmentID     string    `json:"appointmentId"`
	PetID             string    `json:"petId"`
	PetName           string    `json:"petName"`
	RequestedDateTime time.Time `json:"requestedDateTime"`
}

func (ReminderData) Type() Type { return TypeReminder }

type SystemData struct {
	Category   string            `json:"category"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

func (SystemData) Type() Type { return TypeSystem }

// EncodePayload: nil => "" (sin data).
func EncodePayload(p Payload) (string, error) {
	if p == nil {
		return "", nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode %s payload: %w", p.Type(), err)
	}
	return string(b), nil
}

// DecodePayload reconstruye la variante según el tipo. Data vacía => nil.
func DecodePayload(t Type, data string) (Payload, error) {
	if strings.TrimSpace(data) == "" {
		return nil, nil
	}

	var (
		p   Payload
		err error
	)
	switch t {
	case TypeAppointmentApproved:
		var v AppointmentApprovedData
		err = json.Unmarshal([]byte(data), &v)
		p = v
	case TypeAppointmentCancelled:
		var v AppointmentCancelledData
		err = json.Unmarshal([]byte(data), &v)
		p = v
	case TypeAppointmentAssigned:
		var v AppointmentAssignedData
		err = json.Unmarshal([]byte(data), &v)
		p = v
	case TypeReminder:
		var v ReminderData
		err = json.Unmarshal([]byte(data), &v)
		p = v
	case TypeSystem:
		var v SystemData
		err = json.Unmarshal([]byte(data), &v)
		p = v
	default:
		return nil, fmt.Errorf("type %q carries no payload", t)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", t, err)
	}
	return p, nil
}
