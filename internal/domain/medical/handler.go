package medical

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-clinic/internal/middleware"
	"pet-clinic/internal/platform/apperr"
	"pet-clinic/internal/platform/httpx"
	"pet-clinic/internal/platform/logger"
	"pet-clinic/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

const (
	defaultDueDays = 30
	maxDueDays     = 365
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	staff := middleware.RequireRole(auth.RoleVet, auth.RoleAdmin)

	mountBook(r, "/medicalrecords", svc.Records(), log, decodeRecord, encodeRecord, nil)
	mountBook(r, "/vaccinations", svc.Vaccinations(), log, decodeVaccination, encodeVaccination, func(vr chi.Router) {
		// Vacunas por vencer (vet/admin)
		vr.With(staff).Get("/due", vaccinationsDueHandler(svc, log))
	})
	mountBook(r, "/treatments", svc.Treatments(), log, decodeTreatment, encodeTreatment, nil)
	mountBook(r, "/prescriptions", svc.Prescriptions(), log, decodePrescription, encodePrescription, nil)
}

// mountBook monta el CRUD de un tipo. decode traduce el body a (petId, status explícito, registro).
func mountBook[T any, P recordPtr[T], Req any](r chi.Router, path string, b Book[T, P], log logger.Logger,
	decode func(Req) (string, string, T), encode func(T) any, extra func(chi.Router)) {
	staff := middleware.RequireRole(auth.RoleVet, auth.RoleAdmin)

	r.Route(path, func(br chi.Router) {
		if extra != nil {
			extra(br)
		}
		br.With(staff).Post("/", createEntryHandler(b, log, decode, encode))
		br.Get("/pet/{petID}", listEntriesHandler(b, log, encode))
		br.Get("/{id}", getEntryHandler(b, log, encode))
		br.With(staff).Put("/{id}", updateEntryHandler(b, log, decode, encode))
		br.With(staff).Delete("/{id}", deleteEntryHandler(b, log))
	})
}

// -------------------------
// DTOs
// -------------------------

type headerResponse struct {
	ID        string    `json:"id"`
	PetID     string    `json:"petId"`
	VetUserID string    `json:"vetUserId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toHeaderResponse(h Header) headerResponse {
	return headerResponse{
		ID:        h.ID,
		PetID:     h.PetID,
		VetUserID: h.VetUserID,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

type medicalRecordRequest struct {
	PetID        string     `json:"petId"`
	RecordType   string     `json:"recordType"`
	Diagnosis    string     `json:"diagnosis"`
	Treatment    string     `json:"treatment"`
	Notes        string     `json:"notes"`
	VisitDate    time.Time  `json:"visitDate"`
	FollowUpDate *time.Time `json:"followUpDate"`
}

type medicalRecordResponse struct {
	headerResponse
	RecordType   string     `json:"recordType"`
	Diagnosis    string     `json:"diagnosis"`
	Treatment    string     `json:"treatment"`
	Notes        string     `json:"notes"`
	VisitDate    time.Time  `json:"visitDate"`
	FollowUpDate *time.Time `json:"followUpDate,omitempty"`
}

func decodeRecord(req medicalRecordRequest) (string, string, MedicalRecord) {
	return req.PetID, "", MedicalRecord{
		RecordType:   strings.TrimSpace(req.RecordType),
		Diagnosis:    strings.TrimSpace(req.Diagnosis),
		Treatment:    strings.TrimSpace(req.Treatment),
		Notes:        strings.TrimSpace(req.Notes),
		VisitDate:    req.VisitDate,
		FollowUpDate: req.FollowUpDate,
	}
}

func encodeRecord(m MedicalRecord) any {
	return medicalRecordResponse{
		headerResponse: toHeaderResponse(m.Header),
		RecordType:     m.RecordType,
		Diagnosis:      m.Diagnosis,
		Treatment:      m.Treatment,
		Notes:          m.Notes,
		VisitDate:      m.VisitDate,
		FollowUpDate:   m.FollowUpDate,
	}
}

type vaccinationRequest struct {
	PetID          string     `json:"petId"`
	VaccineName    string     `json:"vaccineName"`
	BatchNumber    string     `json:"batchNumber"`
	AdministeredAt time.Time  `json:"administeredAt"`
	NextDueDate    *time.Time `json:"nextDueDate"`
	Status         string     `json:"status" enums:"Current,Upcoming,Overdue"` // solo en PUT
	Notes          string     `json:"notes"`
}

type vaccinationResponse struct {
	headerResponse
	VaccineName    string            `json:"vaccineName"`
	BatchNumber    string            `json:"batchNumber,omitempty"`
	AdministeredAt time.Time         `json:"administeredAt"`
	NextDueDate    *time.Time        `json:"nextDueDate,omitempty"`
	Status         VaccinationStatus `json:"status"`
	Notes          string            `json:"notes"`
}

func decodeVaccination(req vaccinationRequest) (string, string, Vaccination) {
	return req.PetID, req.Status, Vaccination{
		VaccineName:    strings.TrimSpace(req.VaccineName),
		BatchNumber:    strings.TrimSpace(req.BatchNumber),
		AdministeredAt: req.AdministeredAt,
		NextDueDate:    req.NextDueDate,
		Notes:          strings.TrimSpace(req.Notes),
	}
}

func encodeVaccination(v Vaccination) any {
	return vaccinationResponse{
		headerResponse: toHeaderResponse(v.Header),
		VaccineName:    v.VaccineName,
		BatchNumber:    v.BatchNumber,
		AdministeredAt: v.AdministeredAt,
		NextDueDate:    v.NextDueDate,
		Status:         v.Status,
		Notes:          v.Notes,
	}
}

type treatmentRequest struct {
	PetID         string     `json:"petId"`
	TreatmentType string     `json:"treatmentType"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	Status        string     `json:"status" enums:"Scheduled,InProgress,Completed"` // solo en PUT
	Notes         string     `json:"notes"`
}

type treatmentResponse struct {
	headerResponse
	TreatmentType string          `json:"treatmentType"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       *time.Time      `json:"endDate,omitempty"`
	Status        TreatmentStatus `json:"status"`
	Notes         string          `json:"notes"`
}

func decodeTreatment(req treatmentRequest) (string, string, Treatment) {
	return req.PetID, req.Status, Treatment{
		TreatmentType: strings.TrimSpace(req.TreatmentType),
		Name:          strings.TrimSpace(req.Name),
		Description:   strings.TrimSpace(req.Description),
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Notes:         strings.TrimSpace(req.Notes),
	}
}

func encodeTreatment(t Treatment) any {
	return treatmentResponse{
		headerResponse: toHeaderResponse(t.Header),
		TreatmentType:  t.TreatmentType,
		Name:           t.Name,
		Description:    t.Description,
		StartDate:      t.StartDate,
		EndDate:        t.EndDate,
		Status:         t.Status,
		Notes:          t.Notes,
	}
}

type prescriptionRequest struct {
	PetID        string     `json:"petId"`
	Medication   string     `json:"medication"`
	Dosage       string     `json:"dosage"`
	Frequency    string     `json:"frequency"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Refills      int        `json:"refills"`
	Instructions string     `json:"instructions"`
	Status       string     `json:"status" enums:"Active,Completed,Discontinued"` // solo en PUT
}

type prescriptionResponse struct {
	headerResponse
	Medication   string             `json:"medication"`
	Dosage       string             `json:"dosage"`
	Frequency    string             `json:"frequency"`
	StartDate    time.Time          `json:"startDate"`
	EndDate      *time.Time         `json:"endDate,omitempty"`
	Refills      int                `json:"refills"`
	Instructions string             `json:"instructions"`
	Status       PrescriptionStatus `json:"status"`
}

func decodePrescription(req prescriptionRequest) (string, string, Prescription) {
	return req.PetID, req.Status, Prescription{
		Medication:   strings.TrimSpace(req.Medication),
		Dosage:       strings.TrimSpace(req.Dosage),
		Frequency:    strings.TrimSpace(req.Frequency),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Refills:      req.Refills,
		Instructions: strings.TrimSpace(req.Instructions),
	}
}

func encodePrescription(p Prescription) any {
	return prescriptionResponse{
		headerResponse: toHeaderResponse(p.Header),
		Medication:     p.Medication,
		Dosage:         p.Dosage,
		Frequency:      p.Frequency,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		Refills:        p.Refills,
		Instructions:   p.Instructions,
		Status:         p.Status,
	}
}

// -------------------------
// Handlers
// -------------------------

// createEntryHandler godoc
// @Summary Crear registro clínico
// @Description Vet o admin registra una consulta, vacuna, tratamiento o receta. El estado inicial se deriva de las fechas.
// @Tags medical
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 201 {object} vaccinationResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 403 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody "pet not found"
// @Router /medicalrecords [post]
// @Router /vaccinations [post]
// @Router /treatments [post]
// @Router /prescriptions [post]
func createEntryHandler[T any, P recordPtr[T], Req any](b Book[T, P], log logger.Logger, decode func(Req) (string, string, T), encode func(T) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}

		var req Req
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		petID, _, rec := decode(req)

		out, err := b.Create(r.Context(), claims, petID, rec)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, encode(out))
	}
}

// listEntriesHandler godoc
// @Summary Historia clínica de una mascota
// @Description Owner de la mascota, vet o admin. Más recientes primero.
// @Tags medical
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} vaccinationResponse
// @Failure 403 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /medicalrecords/pet/{petID} [get]
// @Router /vaccinations/pet/{petID} [get]
// @Router /treatments/pet/{petID} [get]
// @Router /prescriptions/pet/{petID} [get]
func listEntriesHandler[T any, P recordPtr[T]](b Book[T, P], log logger.Logger, encode func(T) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}

		items, err := b.ListByPet(r.Context(), claims, chi.URLParam(r, "petID"))
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		out := make([]any, 0, len(items))
		for _, it := range items {
			out = append(out, encode(it))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getEntryHandler godoc
// @Summary Obtener registro clínico
// @Tags medical
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param id path string true "ID del registro"
// @Success 200 {object} vaccinationResponse
// @Failure 403 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /medicalrecords/{id} [get]
// @Router /vaccinations/{id} [get]
// @Router /treatments/{id} [get]
// @Router /prescriptions/{id} [get]
func getEntryHandler[T any, P recordPtr[T]](b Book[T, P], log logger.Logger, encode func(T) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}

		rec, err := b.Get(r.Context(), claims, chi.URLParam(r, "id"))
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, encode(rec))
	}
}

// updateEntryHandler godoc
// @Summary Actualizar registro clínico
// @Description Solo el vet autor o un admin. El estado no se recalcula; `status` lo fija de forma explícita.
// @Tags medical
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param id path string true "ID del registro"
// @Success 200 {object} vaccinationResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 403 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /medicalrecords/{id} [put]
// @Router /vaccinations/{id} [put]
// @Router /treatments/{id} [put]
// @Router /prescriptions/{id} [put]
func updateEntryHandler[T any, P recordPtr[T], Req any](b Book[T, P], log logger.Logger, decode func(Req) (string, string, T), encode func(T) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}

		var req Req
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		_, status, rec := decode(req)

		out, err := b.Update(r.Context(), claims, chi.URLParam(r, "id"), rec, status)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, encode(out))
	}
}

// deleteEntryHandler godoc
// @Summary Borrar registro clínico
// @Description Solo el vet autor o un admin.
// @Tags medical
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param id path string true "ID del registro"
// @Success 204
// @Failure 403 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /medicalrecords/{id} [delete]
// @Router /vaccinations/{id} [delete]
// @Router /treatments/{id} [delete]
// @Router /prescriptions/{id} [delete]
func deleteEntryHandler[T any, P recordPtr[T]](b Book[T, P], log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}

		if err := b.Delete(r.Context(), claims, chi.URLParam(r, "id")); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// vaccinationsDueHandler godoc
// @Summary Vacunas por vencer
// @Description Vacunas con próxima dosis dentro de `days` días, vencidas incluidas. Vet o admin.
// @Tags medical
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param days query int false "Ventana en días (0-365). Por defecto 30"
// @Success 200 {array} vaccinationResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 403 {object} httpx.ErrorBody
// @Router /vaccinations/due [get]
func vaccinationsDueHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}

		days := defaultDueDays
		if v := strings.TrimSpace(r.URL.Query().Get("days")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 || n > maxDueDays {
				httpx.WriteError(w, r, log, apperr.Invalid("days", "must be an integer between 0 and 365"))
				return
			}
			days = n
		}

		items, err := svc.VaccinationsDue(r.Context(), claims, days)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		out := make([]any, 0, len(items))
		for _, v := range items {
			out = append(out, encodeVaccination(v))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}
