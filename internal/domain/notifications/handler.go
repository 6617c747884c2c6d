package notifications

import (
	"net/http"
	"time"

	"pet-clinic/internal/middleware"
	"pet-clinic/internal/platform/apperr"
	"pet-clinic/internal/platform/httpx"
	"pet-clinic/internal/platform/logger"
	"pet-clinic/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/notifications", func(nr chi.Router) {
		nr.Get("/my", listMyHandler(svc, log))
		nr.Get("/unread-count", unreadCountHandler(svc, log))
		nr.Put("/mark-all-read", markAllReadHandler(svc, log))
		nr.Put("/{notificationID}/read", markReadHandler(svc, log))
		nr.Delete("/{notificationID}", deleteHandler(svc, log))
	})

	r.With(middleware.RequireRole(auth.RoleAdmin)).
		Post("/admin/notifications", systemNotificationHandler(svc, log))
}

// notificationResponse mantiene "data" como string JSON.
type notificationResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Type      Type       `json:"type"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Data      *string    `json:"data"`
	IsRead    bool       `json:"isRead"`
	ReadAt    *time.Time `json:"readAt"`
	CreatedAt time.Time  `json:"createdAt"`
}

type unreadCountResponse struct {
	Count int `json:"count"`
}

type markAllReadResponse struct {
	Updated int `json:"updated"`
}

type systemNotificationRequest struct {
	UserID     string            `json:"userId"`
	Role       string            `json:"role" enums:"owner,vet,admin"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	Category   string            `json:"category"`
	Attributes map[string]string `json:"attributes"`
}

// listMyHandler godoc
// @Summary Mis notificaciones
// @Description Más nuevas primero. `unreadOnly=true` filtra no leídas.
// @Tags notifications
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param unreadOnly query bool false "Solo no leídas"
// @Param limit query int false "Máximo (1-200). Por defecto 50"
// @Success 200 {array} notificationResponse
// @Failure 401 {object} httpx.ErrorBody
// @Router /notifications/my [get]
func listMyHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}

		items, err := svc.ListForUser(r.Context(), claims.UserID, ListFilter{
			UnreadOnly: httpx.QueryBool(r, "unreadOnly"),
			Limit:      httpx.QueryLimit(r, defaultListLimit, 200),
		})
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		out := make([]notificationResponse, 0, len(items))
		for _, n := range items {
			resp, err := toNotificationResponse(n)
			if err != nil {
				httpx.WriteError(w, r, log, err)
				return
			}
			out = append(out, resp)
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// unreadCountHandler godoc
// @Summary Cantidad de no leídas
// @Tags notifications
// @Produce json
// @Success 200 {object} unreadCountResponse
// @Failure 401 {object} httpx.ErrorBody
// @Router /notifications/unread-count [get]
func unreadCountHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}
		n, err := svc.UnreadCount(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, unreadCountResponse{Count: n})
	}
}

// markReadHandler godoc
// @Summary Marcar como leída
// @Description Idempotente: una notificación ya leída conserva su readAt.
// @Tags notifications
// @Produce json
// @Param notificationID path string true "ID de la notificación"
// @Success 200 {object} notificationResponse
// @Failure 401 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /notifications/{notificationID}/read [put]
func markReadHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}
		n, err := svc.MarkRead(r.Context(), claims.UserID, chi.URLParam(r, "notificationID"))
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		resp, err := toNotificationResponse(n)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}

// markAllReadHandler godoc
// @Summary Marcar todas como leídas
// @Tags notifications
// @Produce json
// @Success 200 {object} markAllReadResponse
// @Failure 401 {object} httpx.ErrorBody
// @Router /notifications/mark-all-read [put]
func markAllReadHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}
		n, err := svc.MarkAllRead(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, markAllReadResponse{Updated: n})
	}
}

// deleteHandler godoc
// @Summary Borrar notificación propia
// @Tags notifications
// @Param notificationID path string true "ID de la notificación"
// @Success 204
// @Failure 401 {object} httpx.ErrorBody
// @Failure 404 {object} httpx.ErrorBody
// @Router /notifications/{notificationID} [delete]
func deleteHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.Caller(w, r)
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "notificationID")); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// systemNotificationHandler godoc
// @Summary Enviar notificación de sistema
// @Description Admin envía un aviso a un usuario (`userId`) o a todos los de un rol (`role`).
// @Tags admin
// @Accept json
// @Produce json
// @Param payload body systemNotificationRequest true "Destinatario y contenido"
// @Success 201 {array} notificationResponse
// @Failure 400 {object} httpx.ErrorBody
// @Failure 403 {object} httpx.ErrorBody
// @Router /admin/notifications [post]
func systemNotificationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req systemNotificationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		in := SystemInput{
			UserID:     req.UserID,
			Title:      req.Title,
			Message:    req.Message,
			Category:   req.Category,
			Attributes: req.Attributes,
		}
		if req.Role != "" {
			role, ok := auth.ParseRole(req.Role)
			if !ok {
				httpx.WriteError(w, r, log, apperr.Invalid("role", "must be one of owner, vet, admin"))
				return
			}
			in.Role = role
		}

		items, err := svc.NotifySystem(r.Context(), in)
		if err != nil {
			httpx.WriteError(w, r, log, err)
			return
		}

		out := make([]notificationResponse, 0, len(items))
		for _, n := range items {
			resp, err := toNotificationResponse(n)
			if err != nil {
				httpx.WriteError(w, r, log, err)
				return
			}
			out = append(out, resp)
		}
		httpx.WriteJSON(w, http.StatusCreated, out)
	}
}

func toNotificationResponse(n Notification) (notificationResponse, error) {
	resp := notificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
	data, err := EncodePayload(n.Payload)
	if err != nil {
		return notificationResponse{}, err
	}
	if data != "" {
		resp.Data = &data
	}
	return resp, nil
}
