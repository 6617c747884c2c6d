package appointments

import (
	"net/http"
	"strings"
	"time"

	"pet-clinic/internal/middleware"
	"pet-clinic/internal/platform/apperr"
	"pet-clinic/internal/platform/httpx"
	"pet-clinic/internal/platform/logger"
	"pet-clinic/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /appointments. requestGuard limita POST /appointments
// por usuario (puede ser nil).
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger, requestGuard func(http.Handler) http.Handler) {
	adminOnly := middleware.RequireRole(auth.RoleAdmin)
	staff := middleware.RequireRole(auth.RoleVet, auth.RoleAdmin)

	r.Route("/appointments", func(ar chi.Router) {
		create := ar
		if requestGuard != nil {
			create = ar.With(requestGuard)
		}
		create.Post("/", requestHandler(svc, log))

		ar.Get("/my", myAppointmentsHandler(svc, log))

		ar.With(adminOnly).Get("/", listHandler(svc, log))
		ar.With(adminOnly).Get("/pending", pendingHandler(svc, log))
		ar.With(adminOnly).Get("/stats", statsHandler(svc, log))

		ar.With(staff).Get("/assigned", assignedHandler(svc, log))
		ar.With(staff).Get("/approved", approvedHandler(svc, log))

		ar.Get("/{appointmentID}", getHandler(svc, log))
		ar.With(adminOnly).Put("/{appointmentID}/status", statusHandler(svc, log))
		ar.Post("/{appointmentID}/cancel", cancelHandler(svc, log))
		ar.With(staff).Put("/{appointmentID}/complete", completeHandler(svc, log))
		ar.With(staff).Put("/{appointmentID}/no-show", noShowHandler(svc, log))
	})
}

type createAppointmentRequest struct {
	PetID             string `json:"petId"`
	RequestedDateTime string `json:"requestedDateTime"` // RFC3339
	ReasonForVisit    string `json:"reasonForVisit"`
	Notes             string `json:"notes"`
}

type statusRequest struct {
	Status     string `json:"status" enums:"Approved,Cancelled,Completed,NoShow"`
	AdminNotes string `json:"adminNotes"`
	VetUserID  string `json:"vetUserId"`
	Reason     string `json:"reason"`
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

type completeRequest struct {
	ActualDateTime string `json:"actualDateTime"` // RFC3339 opcional
	Notes          string `json:"notes"`
}

type appointmentResponse struct {
	ID                 string     `json:"id"`
	PetID              string     `json:"petId"`
	PetName            string     `json:"petName"`
	OwnerUserID        string     `json:"ownerUserId"`
	OwnerName          string     `json:"ownerName"`
	VetUserID          *string    `json:"vetUserId"`
	VetName            string     `json:"vetName,omitempty"`
	RequestedDateTime  time.Time  `json:"requestedDateTime"`
	ActualDateTime     *time.Time `json:"actualDateTime"`
	ReasonForVisit     string     `json:"reasonForVisit"`
	Notes              string     `json:"notes"`
	AdminNotes         string     `json:"adminNotes"`
	CancellationReason string     `json:"cancellationReason,omitempty"`
	Status             Status     `json:"status"`
	CanBeCancelled     bool       `json:"canBeCancelled"`
	RequiresAction     bool       `json:"requiresAction"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	UpdatedByUserID    string     `json:"updatedByUserId"`
}

type statsResponse struct {
	From     time.Time      `json:"from"`
	To       time.Time      `json:"to"`
	Total    int            `json:"total"`
	ByStatus map[Status]int `json:"byStatus"`
	PerDay   []DayCount     `json:"perDay"`
}

func parseRFC3339(field, v string, required bool) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		if required {
			return nil, apperr.Invalid(field, "required")
		}
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, apperr.Invalid(field, "must be RFC3339")
	}
	return &t, nil
}

// requestHandler godoc
// @Summary Pedir turno
// @Description El owner pide un turno para una mascota propia. Queda Pending hasta que un admin lo apruebe.
// @Tags appointments
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createAppointmentRequest true "Mascota, fecha (RFC3339) y motivo"
// @Success 201 {object} appointmentResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 401 {object} httpx.ErrorBody
// @Failure 403 {object} httpx.ErrorBody "la mascota no es del caller"
// @Failure 404 {object} httpx.ErrorBody "pet not found"
// @Failure 429 {object} httpx.ErrorBody
// @Router /appointments [post]
func requestHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}

		var req createAppointmentRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		when, err := parseRFC3339("requestedDateTime", req.RequestedDateTime, true)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		a, err := svc.Request(r.Context(), claims, RequestInput{
			PetID:             req.PetID,
			RequestedDateTime: *when,
			ReasonForVisit:    req.ReasonForVisit,
			Notes:             req.Notes,
		})
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		writeOne(w, r, svc, http.StatusCreated, a)
	}
}

// myAppointmentsHandler godoc
// @Summary Mis turnos
// @Tags appointments
// @Produce json
// @Success 200 {array} appointmentResponse
// @Failure 401 {object} httpx.ErrorBody
// @Router /appointments/my [get]
func myAppointmentsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}
		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		writeMany(w, r, svc, items)
	}
}

// listHandler godoc
// @Summary Listar turnos (admin)
// @Tags appointments
// @Produce json
// @Param status query string false "Pending, Approved, Cancelled, Completed o NoShow"
// @Param ownerId query string false "Filtrar por owner"
// @Param vetId query string false "Filtrar por vet"
// @Param petId query string false "Filtrar por mascota"
// @Param from query string false "Desde (RFC3339 o YYYY-MM-DD)"
// @Param to query string false "Hasta, exclusivo (RFC3339 o YYYY-MM-DD)"
// @Param limit query int false "Máximo (1-500)"
// @Success 200 {array} appointmentResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 403 {object} httpx.ErrorBody
// @Router /appointments [get]
func listHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := ListFilter{
			OwnerUserID: strings.TrimSpace(q.Get("ownerId")),
			VetUserID:   strings.TrimSpace(q.Get("vetId")),
			PetID:       strings.TrimSpace(q.Get("petId")),
			Limit:       httpx.QueryLimit(r, 0, 500),
		}
		if raw := strings.TrimSpace(q.Get("status")); raw != "" {
			st, ok := ParseStatus(raw)
			if !ok {
				httpx.WriteError(w, r, log, apperr.Invalid("status", "unknown status"))
				return
			}
			f.Statuses = []Status{st}
		}

		var err error
		if f.From, err = httpx.QueryTime(r, "from"); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		if f.To, err = httpx.QueryTime(r, "to"); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		writeMany(w, r, svc, items)
	}
}

// pendingHandler godoc
// @Summary Cola de pendientes
// @Description Turnos en Pending, por fecha ascendente. Solo admin.
// @Tags appointments
// @Produce json
// @Success 200 {array} appointmentResponse
// @Failure 403 {object} httpx.ErrorBody
// @Router /appointments/pending [get]
func pendingHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Pending(r.Context())
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		writeMany(w, r, svc, items)
	}
}

// statsHandler godoc
// @Summary Estadísticas de turnos
// @Description Conteo por estado y por día. Por defecto los últimos 30 días.
// @Tags appointments
// @Produce json
// @Param from query string false "Desde (RFC3339 o YYYY-MM-DD)"
// @Param to query string false "Hasta, exclusivo"
// @Success 200 {object} statsResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 403 {object} httpx.ErrorBody
// @Router /appointments/stats [get]
func statsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, err := httpx.QueryTime(r, "from")
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		to, err := httpx.QueryTime(r, "to")
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		end := time.Now().UTC()
		if to != nil {
			end = *to
		}
		start := end.AddDate(0, 0, -30)
		if from != nil {
			start = *from
		}

		st, err := svc.Stats(r.Context(), start, end)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		perDay := st.PerDay
		if perDay == nil {
			perDay = []DayCount{}
		}
		httpx.WriteJSON(w, http.StatusOK, statsResponse{
			From:     st.From,
			To:       st.To,
			Total:    st.Total,
			ByStatus: st.ByStatus,
			PerDay:   perDay,
		})
	}
}

// assignedHandler godoc
// @Summary Turnos asignados a mí (vet)
// @Tags appointments
// @Produce json
// @Success 200 {array} appointmentResponse
// @Failure 403 {object} httpx.ErrorBody
// @Router /appointments/assigned [get]
func assignedHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())
		items, err := svc.ListByVet(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		writeMany(w, r, svc, items)
	}
}

// approvedHandler godoc
// @Summary Turnos aprobados
// @Description Agenda de la clínica: todos los Approved. Vet o admin.
// @Tags appointments
// @Produce json
// @Success 200 {array} appointmentResponse
// @Failure 403 {object} httpx.ErrorBody
// @Router /appointments/approved [get]
func approvedHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByStatus(r.Context(), StatusApproved)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		writeMany(w, r, svc, items)
	}
}

// getHandler godoc
// @Summary Detalle de turno
// @Tags appointments
// @Produce json
// @Param appointmentID path string true "ID del turno"
// @Success 200 {object} appointmentResponse
// @Failure 403 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /appointments/{appointmentID} [get]
func getHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}
		a, err := svc.Get(r.Context(), claims, chi.URLParam(r, "appointmentID"))
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		writeOne(w, r, svc, http.StatusOK, a)
	}
}

// statusHandler godoc
// @Summary Cambiar estado (admin)
// @Description Approved (con `vetUserId` opcional), Cancelled (con `reason`), Completed o NoShow. Solo admin.
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentID path string true "ID del turno"
// @Param payload body statusRequest true "Nuevo estado"
// @Success 200 {object} appointmentResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 403 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Failure 409 {object} httpx.ErrorBody "invalid_state o conflict"
// @Router /appointments/{appointmentID}/status [put]
func statusHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}

		var req statusRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		st, ok := ParseStatus(req.Status)
		if !ok {
			httpx.WriteError(w, r, log, apperr.Invalid("status", "unknown status"))
			return
		}

		a, err := svc.ChangeStatus(r.Context(), claims, chi.URLParam(r, "appointmentID"), StatusChange{
			Status:     st,
			AdminNotes: req.AdminNotes,
			VetUserID:  req.VetUserID,
			Reason:     req.Reason,
		})
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		writeOne(w, r, svc, http.StatusOK, a)
	}
}

// cancelHandler godoc
// @Summary Cancelar turno
// @Description El owner cancela un turno propio, o un admin cualquiera. Solo desde Pending o Approved.
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentID path string true "ID del turno"
// @Param payload body cancelRequest true "Motivo"
// @Success 200 {object} appointmentResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 403 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Failure 409 {object} httpx.ErrorBody
// @Router /appointments/{appointmentID}/cancel [post]
func cancelHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}

		var req cancelRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		a, err := svc.Cancel(r.Context(), claims, chi.URLParam(r, "appointmentID"), req.Reason)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		writeOne(w, r, svc, http.StatusOK, a)
	}
}

// completeHandler godoc
// @Summary Marcar turno como atendido
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointmentID path string true "ID del turno"
// @Param payload body completeRequest false "Hora real y notas"
// @Success 200 {object} appointmentResponse
// @Failure 403 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Failure 409 {object} httpx.ErrorBody
// @Router /appointments/{appointmentID}/complete [put]
func completeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}

		var req completeRequest
		if err := httpx.DecodeOptionalJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		actual, err := parseRFC3339("actualDateTime", req.ActualDateTime, false)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		a, err := svc.Complete(r.Context(), claims, chi.URLParam(r, "appointmentID"), CompleteInput{
			ActualDateTime: actual,
			Notes:          req.Notes,
		})
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		writeOne(w, r, svc, http.StatusOK, a)
	}
}

// noShowHandler godoc
// @Summary Marcar ausencia
// @Tags appointments
// @Produce json
// @Param appointmentID path string true "ID del turno"
// @Success 200 {object} appointmentResponse
// @Failure 403 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Failure 409 {object} httpx.ErrorBody
// @Router /appointments/{appointmentID}/no-show [put]
func noShowHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}
		a, err := svc.MarkNoShow(r.Context(), claims, chi.URLParam(r, "appointmentID"))
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		writeOne(w, r, svc, http.StatusOK, a)
	}
}

func writeOne(w http.ResponseWriter, r *http.Request, svc *Service, status int, a Appointment) {
	d := svc.Describe(r.Context(), []Appointment{a})[0]
	httpx.WriteJSON(w, status, toAppointmentResponse(d))
}

func writeMany(w http.ResponseWriter, r *http.Request, svc *Service, items []Appointment) {
	details := svc.Describe(r.Context(), items)
	out := make([]appointmentResponse, 0, len(details))
	for _, d := range details {
		out = append(out, toAppointmentResponse(d))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func toAppointmentResponse(d Detailed) appointmentResponse {
	return appointmentResponse{
		ID:                 d.ID,
		PetID:              d.PetID,
		PetName:            d.PetName,
		OwnerUserID:        d.OwnerUserID,
		OwnerName:          d.OwnerName,
		VetUserID:          d.VetUserID,
		VetName:            d.VetName,
		RequestedDateTime:  d.RequestedDateTime,
		ActualDateTime:     d.ActualDateTime,
		ReasonForVisit:     d.ReasonForVisit,
		Notes:              d.Notes,
		AdminNotes:         d.AdminNotes,
		CancellationReason: d.CancellationReason,
		Status:             d.Status,
		CanBeCancelled:     d.CanBeCancelled(),
		RequiresAction:     d.RequiresAction(),
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
		UpdatedByUserID:    d.UpdatedByUserID,
	}
}
