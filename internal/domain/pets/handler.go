package pets

import (
	"encoding/json"
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

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, log))
		pr.Get("/", listPetsHandler(svc, log))

		// Perfil de mascota (owner o staff)
		pr.Get("/{petID}", getPetHandler(svc, log))

		// Actualizar mascota (owner o admin)
		pr.Patch("/{petID}", updatePetHandler(svc, log))
	})
}

type createPetRequest struct {
	OwnerUserID string   `json:"ownerUserId"` // solo admin; owner siempre crea para sí mismo
	Name        string   `json:"name"`
	Species     string   `json:"species" enums:"dog,cat,bird,rabbit,other"`
	Breed       string   `json:"breed"`
	Sex         string   `json:"sex" enums:"male,female,unknown"`
	BirthDate   string   `json:"birthDate"` // YYYY-MM-DD opcional
	Microchip   string   `json:"microchip"`
	WeightKg    *float64 `json:"weightKg"`
	Notes       string   `json:"notes"`
}

type petResponse struct {
	ID          string     `json:"id"`
	OwnerUserID string     `json:"ownerUserId"`
	Name        string     `json:"name"`
	Species     Species    `json:"species"`
	Breed       string     `json:"breed"`
	Sex         Sex        `json:"sex"`
	BirthDate   *time.Time `json:"birthDate,omitempty"`
	Microchip   string     `json:"microchip,omitempty"`
	WeightKg    *float64   `json:"weightKg,omitempty"`
	Notes       string     `json:"notes"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type updatePetRequest struct {
	Name      *string  `json:"name"`
	Species   *string  `json:"species"`
	Breed     *string  `json:"breed"`
	Sex       *string  `json:"sex"`
	Microchip *string  `json:"microchip"`
	WeightKg  *float64 `json:"weightKg"`
	Notes     *string  `json:"notes"`
	// birthDate se lee aparte para distinguir null de ausente
}

func parseDate(field, v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, apperr.Invalid(field, "must be YYYY-MM-DD")
	}
	return &t, nil
}

// createPetHandler godoc
// @Summary Registrar mascota
// @Description El owner registra una mascota propia. Un admin puede registrarla a nombre de otro usuario con `ownerUserId`.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 401 {object} httpx.ErrorBody
// @Router /pets [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}

		var req createPetRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		bd, err := parseDate("birthDate", req.BirthDate)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		ownerID := claims.UserID
		if id := strings.TrimSpace(req.OwnerUserID); id != "" && id != claims.UserID {
			if !claims.HasRole(auth.RoleAdmin) {
				httpx.WriteError(w, r, log, ErrForbidden)
				return
			}
			ownerID = id
		}

		p, err := svc.Create(r.Context(), ownerID, CreateInput{
			Name:      req.Name,
			Species:   req.Species,
			Breed:     req.Breed,
			Sex:       req.Sex,
			BirthDate: bd,
			Microchip: req.Microchip,
			WeightKg:  req.WeightKg,
			Notes:     req.Notes,
		})
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Owner: sus mascotas. Staff: `ownerId` filtra por dueño; sin filtro, admin ve todas y vet sus propias.
// @Tags pets
// @Produce json
// @Param ownerId query string false "Filtrar por dueño (solo staff)"
// @Success 200 {array} petResponse
// @Failure 401 {object} httpx.ErrorBody
// @Failure 403 {object} httpx.ErrorBody
// @Router /pets [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}

		ownerID := strings.TrimSpace(r.URL.Query().Get("ownerId"))
		if ownerID != "" && ownerID != claims.UserID && !claims.IsStaff() {
			httpx.WriteError(w, r, log, ErrForbidden)
			return
		}

		var (
			items []Pet
			err   error
		)
		switch {
		case ownerID != "":
			items, err = svc.ListByOwner(r.Context(), ownerID)
		case claims.HasRole(auth.RoleAdmin):
			items, err = svc.List(r.Context())
		default:
			items, err = svc.ListByOwner(r.Context(), claims.UserID)
		}
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Perfil de mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 401 {object} httpx.ErrorBody
// @Failure 403 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}

		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		if !CanRead(claims, p) {
			httpx.WriteError(w, r, log, ErrForbidden)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualizar perfil de mascota
// @Description PATCH parcial. `birthDate: null` limpia la fecha. Owner o admin.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a modificar"
// @Success 200 {object} petResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 403 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /pets/{petID} [patch]
func updatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}

		petID := chi.URLParam(r, "petID")
		current, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		if !CanWrite(claims, current) {
			httpx.WriteError(w, r, log, ErrForbidden)
			return
		}

		// Decodificamos a map primero para detectar presencia de birthDate.
		var raw map[string]json.RawMessage
		if err := httpx.DecodeJSON(r, &raw); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		var req updatePetRequest
		b, _ := json.Marshal(raw)
		if err := json.Unmarshal(b, &req); err != nil {
			httpx.WriteError(w, r, log, apperr.Invalid("body", "invalid json"))
			return
		}

		bd := patchBirthDate{}
		if v, exists := raw["birthDate"]; exists {
			bd.Present = true
			if string(v) != "null" {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					httpx.WriteError(w, r, log, apperr.Invalid("birthDate", "must be YYYY-MM-DD or null"))
					return
				}
				t, err := parseDate("birthDate", s)
				if err != nil {
					httpx.WriteError(w, r, log, err)
					return
				}
				bd.Value = t
			}
		}

		updated, err := svc.UpdateProfile(r.Context(), petID, UpdateProfileInput{
			Name:      req.Name,
			Species:   req.Species,
			Breed:     req.Breed,
			Sex:       req.Sex,
			BirthDate: bd,
			Microchip: req.Microchip,
			WeightKg:  req.WeightKg,
			Notes:     req.Notes,
		})
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		OwnerUserID: p.OwnerUserID,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		Sex:         p.Sex,
		BirthDate:   p.BirthDate,
		Microchip:   p.Microchip,
		WeightKg:    p.WeightKg,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
