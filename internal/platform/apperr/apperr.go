// Package apperr define la taxonomía de errores que cruza dominio y HTTP.
package apperr

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindInvalidState Kind = "invalid_state"
	KindConflict     Kind = "conflict"
	KindValidation   Kind = "validation_failed"
	KindRateLimited  Kind = "rate_limited"
	KindInternal     Kind = "internal"
)

// Error lleva un código estable y un mensaje apto para el usuario.
// Fields solo se usa con KindValidation.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// KindOf devuelve el Kind del primer *Error de la cadena; cualquier otra cosa es interno.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func HTTPStatus(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindInvalidState, KindConflict:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// FieldErrors acumula errores de validación campo por campo.
type FieldErrors map[string]string

func (f FieldErrors) Add(field, msg string) {
	if _, exists := f[field]; exists {
		return
	}
	f[field] = msg
}

// Err devuelve nil si no hay errores.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	fields := make(map[string]string, len(f))
	for k, v := range f {
		fields[k] = v
	}
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

// Invalid es un atajo para un único campo inválido.
func Invalid(field, msg string) error {
	return FieldErrors{field: msg}.Err()
}
