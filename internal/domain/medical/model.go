// Package medical guarda la historia clínica de cada mascota: registros de
// consulta, vacunas, tratamientos y recetas. Los cuatro comparten cabecera
// (mascota + vet autor) y se persisten como Entry con el detalle serializado.
package medical

import (
	"strings"
	"time"

	"pet-clinic/internal/platform/apperr"
)

type Kind string

const (
	KindRecord       Kind = "medical_record"
	KindVaccination  Kind = "vaccination"
	KindTreatment    Kind = "treatment"
	KindPrescription Kind = "prescription"
)

// Ventana en la que una vacuna pasa a Upcoming.
const upcomingWindow = 30 * 24 * time.Hour

// Header es común a todos los registros. Lo completa el servicio, nunca el cliente.
type Header struct {
	ID        string    `json:"-"`
	PetID     string    `json:"-"`
	VetUserID string    `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (h *Header) header() *Header { return h }

// Record lo implementan los punteros a cada tipo de registro.
type Record interface {
	Kind() Kind
	header() *Header
	validate(fe apperr.FieldErrors)
	// derive fija el estado al crear; nunca se vuelve a evaluar.
	derive(now time.Time)
	// setStatus aplica un estado explícito; false si no es válido para el tipo.
	setStatus(s string) bool
	status() string
	dueAt() *time.Time
}

// -------------------------
// MedicalRecord
// -------------------------

type MedicalRecord struct {
	Header

	RecordType   string
	Diagnosis    string
	Treatment    string
	Notes        string
	VisitDate    time.Time
	FollowUpDate *time.Time
}

func (*MedicalRecord) Kind() Kind { return KindRecord }

func (m *MedicalRecord) validate(fe apperr.FieldErrors) {
	if strings.TrimSpace(m.RecordType) == "" {
		fe.Add("recordType", "required")
	}
	if strings.TrimSpace(m.Diagnosis) == "" {
		fe.Add("diagnosis", "required")
	}
	if m.VisitDate.IsZero() {
		fe.Add("visitDate", "required")
	}
	if m.FollowUpDate != nil && m.FollowUpDate.Before(m.VisitDate) {
		fe.Add("followUpDate", "must be after visitDate")
	}
}

func (*MedicalRecord) derive(time.Time) {}
func (*MedicalRecord) setStatus(s string) bool { return s == "" }
func (*MedicalRecord) status() string { return "" }
func (m *MedicalRecord) dueAt() *time.Time { return m.FollowUpDate }

// -------------------------
// Vaccination
// -------------------------

type VaccinationStatus string

const (
	VaccinationCurrent  VaccinationStatus = "Current"
	VaccinationUpcoming VaccinationStatus = "Upcoming"
	VaccinationOverdue  VaccinationStatus = "Overdue"
)

// VaccinationStatusAt: vencida si nextDue ya pasó, Upcoming dentro de 30 días,
// Current en otro caso (o sin próxima dosis).
func VaccinationStatusAt(nextDue *time.Time, now time.Time) VaccinationStatus {
	switch {
	case nextDue == nil:
		return VaccinationCurrent
	case nextDue.Before(now):
		return VaccinationOverdue
	case nextDue.Sub(now) <= upcomingWindow:
		return VaccinationUpcoming
	default:
		return VaccinationCurrent
	}
}

type Vaccination struct {
	Header

	VaccineName    string
	BatchNumber    string
	AdministeredAt time.Time
	NextDueDate    *time.Time
	Status         VaccinationStatus
	Notes          string
}

func (*Vaccination) Kind() Kind { return KindVaccination }

func (v *Vaccination) validate(fe apperr.FieldErrors) {
	if strings.TrimSpace(v.VaccineName) == "" {
		fe.Add("vaccineName", "required")
	}
	if v.AdministeredAt.IsZero() {
		fe.Add("administeredAt", "required")
	}
	if v.NextDueDate != nil && !v.AdministeredAt.IsZero() && !v.NextDueDate.After(v.AdministeredAt) {
		fe.Add("nextDueDate", "must be after administeredAt")
	}
}

func (v *Vaccination) derive(now time.Time) { v.Status = VaccinationStatusAt(v.NextDueDate, now) }

func (v *Vaccination) setStatus(s string) bool {
	for _, st := range []VaccinationStatus{VaccinationCurrent, VaccinationUpcoming, VaccinationOverdue} {
		if strings.EqualFold(s, string(st)) {
			v.Status = st
			return true
		}
	}
	return false
}

func (v *Vaccination) status() string { return string(v.Status) }
func (v *Vaccination) dueAt() *time.Time { return v.NextDueDate }

// -------------------------
// Treatment
// -------------------------

type TreatmentStatus string

const (
	TreatmentScheduled  TreatmentStatus = "Scheduled"
	TreatmentInProgress TreatmentStatus = "InProgress"
	TreatmentCompleted  TreatmentStatus = "Completed"
)

func TreatmentStatusAt(start time.Time, end *time.Time, now time.Time) TreatmentStatus {
	switch {
	case end != nil && end.Before(now):
		return TreatmentCompleted
	case start.After(now):
		return TreatmentScheduled
	default:
		return TreatmentInProgress
	}
}

type Treatment struct {
	Header

	TreatmentType string
	Name          string
	Description   string
	StartDate     time.Time
	EndDate       *time.Time
	Status        TreatmentStatus
	Notes         string
}

func (*Treatment) Kind() Kind { return KindTreatment }

func (t *Treatment) validate(fe apperr.FieldErrors) {
	if strings.TrimSpace(t.TreatmentType) == "" {
		fe.Add("treatmentType", "required")
	}
	if strings.TrimSpace(t.Name) == "" {
		fe.Add("name", "required")
	}
	if t.StartDate.IsZero() {
		fe.Add("startDate", "required")
	}
	if t.EndDate != nil && t.EndDate.Before(t.StartDate) {
		fe.Add("endDate", "must be after startDate")
	}
}

func (t *Treatment) derive(now time.Time) { t.Status = TreatmentStatusAt(t.StartDate, t.EndDate, now) }

func (t *Treatment) setStatus(s string) bool {
	norm := strings.ReplaceAll(s, " ", "")
	for _, st := range []TreatmentStatus{TreatmentScheduled, TreatmentInProgress, TreatmentCompleted} {
		if strings.EqualFold(norm, string(st)) {
			t.Status = st
			return true
		}
	}
	return false
}

func (t *Treatment) status() string { return string(t.Status) }
func (t *Treatment) dueAt() *time.Time { return t.EndDate }

// -------------------------
// Prescription
// -------------------------

type PrescriptionStatus string

const (
	PrescriptionActive       PrescriptionStatus = "Active"
	PrescriptionCompleted    PrescriptionStatus = "Completed"
	PrescriptionDiscontinued PrescriptionStatus = "Discontinued"
)

// PrescriptionStatusAt: Completed si la fecha de fin ya pasó, si no Active.
// Discontinued solo se asigna de forma explícita.
func PrescriptionStatusAt(end *time.Time, now time.Time) PrescriptionStatus {
	if end != nil && end.Before(now) {
		return PrescriptionCompleted
	}
	return PrescriptionActive
}

type Prescription struct {
	Header

	Medication   string
	Dosage       string
	Frequency    string
	StartDate    time.Time
	EndDate      *time.Time
	Refills      int
	Instructions string
	Status       PrescriptionStatus
}

func (*Prescription) Kind() Kind { return KindPrescription }

func (p *Prescription) validate(fe apperr.FieldErrors) {
	if strings.TrimSpace(p.Medication) == "" {
		fe.Add("medication", "required")
	}
	if strings.TrimSpace(p.Dosage) == "" {
		fe.Add("dosage", "required")
	}
	if strings.TrimSpace(p.Frequency) == "" {
		fe.Add("frequency", "required")
	}
	if p.StartDate.IsZero() {
		fe.Add("startDate", "required")
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		fe.Add("endDate", "must be after startDate")
	}
	if p.Refills < 0 {
		fe.Add("refills", "cannot be negative")
	}
}

func (p *Prescription) derive(now time.Time) { p.Status = PrescriptionStatusAt(p.EndDate, now) }

func (p *Prescription) setStatus(s string) bool {
	for _, st := range []PrescriptionStatus{PrescriptionActive, PrescriptionCompleted, PrescriptionDiscontinued} {
		if strings.EqualFold(s, string(st)) {
			p.Status = st
			return true
		}
	}
	return false
}

func (p *Prescription) status() string { return string(p.Status) }
func (p *Prescription) dueAt() *time.Time { return p.EndDate }
