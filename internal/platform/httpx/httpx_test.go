package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-clinic/internal/platform/apperr"
	"pet-clinic/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_DomainError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)

	WriteError(rec, req, logger.NewNop(), apperr.FieldErrors{"petId": "required"}.Err())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body ErrorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, apperr.KindValidation, body.Code)
	assert.Equal(t, "required", body.Fields["petId"])
}

func TestWriteError_InternalHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)

	WriteError(rec, req, logger.NewNop(), errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Milo"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "Milo", dst.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.True(t, apperr.Is(DecodeJSON(req, &dst), apperr.KindValidation))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.True(t, apperr.Is(DecodeJSON(req, &dst), apperr.KindValidation))
}

func TestQueryHelpers(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?from=2026-01-02&to=bad&limit=500&unreadOnly=true", nil)

	from, err := QueryTime(req, "from")
	require.NoError(t, err)
	require.NotNil(t, from)
	assert.Equal(t, 2026, from.Year())

	_, err = QueryTime(req, "to")
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	assert.Equal(t, 50, QueryLimit(req, 50, 200))
	assert.True(t, QueryBool(req, "unreadOnly"))
}
