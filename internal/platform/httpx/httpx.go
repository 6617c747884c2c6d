// Package httpx reúne los helpers de respuesta que antes se duplicaban en cada
// handler (writeJSON). Con seis módulos ya convenía extraerlos.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-clinic/internal/platform/apperr"
	"pet-clinic/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ErrorBody es el cuerpo estándar de error: code legible por máquina + mensaje.
type ErrorBody struct {
	Code    apperr.Kind       `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError traduce err a status + ErrorBody. Los errores internos se loguean
// y se responden sin detalle.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		if log != nil {
			log.Error("internal error", map[string]any{
				"err":        err,
				"method":     r.Method,
				"path":       r.URL.Path,
				"request_id": chimw.GetReqID(r.Context()),
			})
		}
		WriteJSON(w, http.StatusInternalServerError, ErrorBody{
			Code:    apperr.KindInternal,
			Message: "internal error",
		})
		return
	}

	WriteJSON(w, apperr.HTTPStatus(e.Kind), ErrorBody{
		Code:    e.Kind,
		Message: e.Message,
		Fields:  e.Fields,
	})
}

// Fail responde un error de la taxonomía sin pasar por el dominio.
func Fail(w http.ResponseWriter, kind apperr.Kind, msg string) {
	WriteJSON(w, apperr.HTTPStatus(kind), ErrorBody{Code: kind, Message: msg})
}

// DecodeJSON decodifica el body; body vacío o JSON inválido => validation_failed.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Invalid("body", "request body is required")
		}
		return apperr.Invalid("body", "invalid json")
	}
	return nil
}

// DecodeOptionalJSON acepta body vacío.
func DecodeOptionalJSON(r *http.Request, dst any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return apperr.Invalid("body", "invalid json")
	}
	return nil
}

// QueryTime parsea un query param RFC3339 opcional.
func QueryTime(r *http.Request, name string) (*time.Time, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		// Aceptamos también YYYY-MM-DD para filtros de dashboard.
		d, derr := time.Parse("2006-01-02", v)
		if derr != nil {
			return nil, apperr.Invalid(name, "must be RFC3339 or YYYY-MM-DD")
		}
		t = d
	}
	return &t, nil
}

// QueryLimit devuelve limit en [1,max], o def si no viene o es inválido.
func QueryLimit(r *http.Request, def, max int) int {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 || n > max {
		return def
	}
	return n
}

// QueryBool interpreta "true"/"1".
func QueryBool(r *http.Request, name string) bool {
	v := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(name)))
	return v == "true" || v == "1"
}
