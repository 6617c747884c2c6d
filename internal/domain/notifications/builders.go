package notifications

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "Jan 02, 2006 at 03:04 PM"

// Draft es una notificación todavía no persistida.
type Draft struct {
	UserID  string
	Type    Type
	Title   string
	Message string
	Payload Payload
}

func formatWhen(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(dateLayout)
}

func petLabel(name string) string {
	if strings.TrimSpace(name) == "" {
		return "your pet"
	}
	return name
}

func BuildApproved(ev AppointmentEvent, loc *time.Location) Draft {
	msg := fmt.Sprintf("Your appointment for %s on %s has been approved.",
		petLabel(ev.PetName), formatWhen(ev.RequestedDateTime, loc))
	if ev.VetName != "" {
		msg += fmt.Sprintf(" You will be seen by %s.", ev.VetName)
	}
	if ev.AdminNotes != "" {
		msg += " Notes: " + ev.AdminNotes
	}

	return Draft{
		UserID:  ev.OwnerUserID,
		Type:    TypeAppointmentApproved,
		Title:   "Appointment Approved",
		Message: msg,
		Payload: AppointmentApprovedData{
			AppointmentID:     ev.AppointmentID,
			PetID:             ev.PetID,
			PetName:           ev.PetName,
			RequestedDateTime: ev.RequestedDateTime,
			VetUserID:         ev.VetUserID,
			VetName:           ev.VetName,
			AdminNotes:        ev.AdminNotes,
		},
	}
}

func BuildCancelled(ev AppointmentEvent, loc *time.Location) Draft {
	msg := fmt.Sprintf("Your appointment for %s on %s has been cancelled.",
		petLabel(ev.PetName), formatWhen(ev.RequestedDateTime, loc))
	if ev.Reason != "" {
		msg += " Reason: " + ev.Reason
	}

	return Draft{
		UserID:  ev.OwnerUserID,
		Type:    TypeAppointmentCancelled,
		Title:   "Appointment Cancelled",
		Message: msg,
		Payload: AppointmentCancelledData{
			AppointmentID:     ev.AppointmentID,
			PetID:             ev.PetID,
			PetName:           ev.PetName,
			RequestedDateTime: ev.RequestedDateTime,
			Reason:            ev.Reason,
		},
	}
}

func BuildAssigned(ev AppointmentEvent, loc *time.Location) Draft {
	msg := fmt.Sprintf("You have been assigned an appointment for %s on %s.",
		petLabel(ev.PetName), formatWhen(ev.RequestedDateTime, loc))
	if ev.ReasonForVisit != "" {
		msg += " Reason for visit: " + ev.ReasonForVisit
	}

	return Draft{
		UserID:  ev.VetUserID,
		Type:    TypeAppointmentAssigned,
		Title:   "New Appointment Assigned",
		Message: msg,
		Payload: AppointmentAssignedData{
			AppointmentID:     ev.AppointmentID,
			PetID:             ev.PetID,
			PetName:           ev.PetName,
			RequestedDateTime: ev.RequestedDateTime,
			OwnerName:         ev.OwnerName,
			ReasonForVisit:    ev.ReasonForVisit,
		},
	}
}

func BuildReminder(ev AppointmentEvent, loc *time.Location) Draft {
	return Draft{
		UserID: ev.OwnerUserID,
		Type:   TypeReminder,
		Title:  "Appointment Reminder",
		Message: fmt.Sprintf("Reminder: %s has an appointment on %s.",
			petLabel(ev.PetName), formatWhen(ev.RequestedDateTime, loc)),
		Payload: ReminderData{
			AppointmentID:     ev.AppointmentID,
			PetID:             ev.PetID,
			PetName:           ev.PetName,
			RequestedDateTime: ev.RequestedDateTime,
		},
	}
}

func BuildSystem(userID, title, message, category string, attrs map[string]string) Draft {
	var p Payload
	if category != "" || len(attrs) > 0 {
		p = SystemData{Category: category, Attributes: attrs}
	}
	return Draft{
		UserID:  userID,
		Type:    TypeSystem,
		Title:   title,
		Message: message,
		Payload: p,
	}
}
