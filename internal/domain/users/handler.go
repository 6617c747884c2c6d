package users

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"pet-clinic/internal/middleware"
	"pet-clinic/internal/platform/apperr"
	"pet-clinic/internal/platform/httpx"
	"pet-clinic/internal/platform/logger"
	"pet-clinic/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta auth + directorio. loginGuard es el rate limit de
// /auth/login y /auth/register (puede ser nil).
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger, loginGuard func(http.Handler) http.Handler) {
	r.Route("/auth", func(ar chi.Router) {
		if loginGuard != nil {
			ar.Use(loginGuard)
		}
		ar.Post("/register", registerHandler(svc, log))
		ar.Post("/login", loginHandler(svc, log))
	})

	r.Get("/users/me", meHandler(svc, log))

	r.With(middleware.RequireRole(auth.RoleVet, auth.RoleAdmin)).
		Get("/vets", listVetsHandler(svc, log))

	r.Route("/admin", func(ad chi.Router) {
		ad.Use(middleware.RequireRole(auth.RoleAdmin))
		ad.Post("/vets", provisionVetHandler(svc, log))
		ad.Put("/users/{userID}/roles", changeRoleHandler(svc, log))
	})
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	FullName  string      `json:"fullName"`
	Phone     string      `json:"phone,omitempty"`
	Roles     []auth.Role `json:"roles"`
	CreatedAt time.Time   `json:"createdAt"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      userResponse `json:"user"`
}

type changeRoleRequest struct {
	Role   string `json:"role" enums:"owner,vet,admin"`
	Action string `json:"action" enums:"assign,remove"`
}

// registerHandler godoc
// @Summary Registrar cuenta de dueño
// @Description Crea una cuenta con rol `owner`. El email es único; la contraseña necesita al menos 8 caracteres.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos de la cuenta"
// @Success 201 {object} userResponse
// @Failure 400 {object} httpx.ErrorBody "validation_failed"
// @Failure 409 {object} httpx.ErrorBody "email already registered"
// @Failure 429 {object} httpx.ErrorBody "rate_limited"
// @Router /auth/register [post]
func registerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput{
			Email:    req.Email,
			Password: req.Password,
			FullName: req.FullName,
			Phone:    req.Phone,
		})
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toUserResponse(u))
	}
}

// loginHandler godoc
// @Summary Iniciar sesión
// @Description Valida email + contraseña y devuelve un bearer token firmado.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 401 {object} httpx.ErrorBody "invalid email or password"
// @Failure 429 {object} httpx.ErrorBody "rate_limited"
// @Router /auth/login [post]
func loginHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		res, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, loginResponse{
			Token:     res.Token,
			ExpiresAt: res.ExpiresAt,
			User:      toUserResponse(res.User),
		})
	}
}

// meHandler godoc
// @Summary Usuario actual
// @Tags users
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} userResponse
// @Failure 401 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /users/me [get]
func meHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}

		u, err := svc.GetByID(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// listVetsHandler godoc
// @Summary Listar veterinarios
// @Description Para que admin elija a quién asignar un turno. Requiere rol vet o admin.
// @Tags users
// @Produce json
// @Success 200 {array} userResponse
// @Failure 401 {object} httpx.ErrorBody
// @Failure 403 {object} httpx.ErrorBody
// @Router /vets [get]
func listVetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListByRole(r.Context(), auth.RoleVet)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		sort.Slice(items, func(i, j int) bool { return items[i].FullName < items[j].FullName })

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// provisionVetHandler godoc
// @Summary Alta de veterinario
// @Description Crea una cuenta con rol `vet`. Solo admin.
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos de la cuenta"
// @Success 201 {object} userResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 403 {object} httpx.ErrorBody
// @Failure 409 {object} httpx.ErrorBody
// @Router /admin/vets [post]
func provisionVetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		u, err := svc.ProvisionVet(r.Context(), RegisterInput{
			Email:    req.Email,
			Password: req.Password,
			FullName: req.FullName,
			Phone:    req.Phone,
		})
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toUserResponse(u))
	}
}

// changeRoleHandler godoc
// @Summary Asignar o quitar rol
// @Tags admin
// @Accept json
// @Produce json
// @Param userID path string true "ID del usuario"
// @Param payload body changeRoleRequest true "Rol y acción"
// @Success 200 {object} userResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 403 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /admin/users/{userID}/roles [put]
func changeRoleHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req changeRoleRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		role, ok := auth.ParseRole(req.Role)
		if !ok {
			httpx.WriteError(w, r, log, apperr.Invalid("role", "must be one of owner, vet, admin"))
			return
		}

		userID := chi.URLParam(r, "userID")
		var (
			u   User
			err error
		)
		switch strings.ToLower(strings.TrimSpace(req.Action)) {
		case "assign", "":
			u, err = svc.AssignRole(r.Context(), userID, role)
		case "remove":
			u, err = svc.RemoveRole(r.Context(), userID, role)
		default:
			err = apperr.Invalid("action", "must be assign or remove")
		}
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func toUserResponse(u User) userResponse {
	roles := u.Roles
	if roles == nil {
		roles = []auth.Role{}
	}
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
	}
}
