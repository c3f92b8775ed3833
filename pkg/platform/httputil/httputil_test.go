package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "gmarm/pkg/domain-errors"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestWriteError(t *testing.T) {
	t.Run("internal error omits description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeInternal, "db failed"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decode(t, w)
		assert.Equal(t, "internal_error", body["error"])
		_, ok := body["error_description"]
		assert.False(t, ok)
	})

	t.Run("validation includes description", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.New(dErrors.CodeValidation, "email inválido"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "email inválido", decode(t, w)["error_description"])
	})

	t.Run("regulatory codes map to 4xx", func(t *testing.T) {
		cases := map[dErrors.Code]int{
			dErrors.CodeDuplicateIdentification: http.StatusConflict,
			dErrors.CodePriceBelowFloor:         http.StatusUnprocessableEntity,
			dErrors.CodeQuantityCapExceeded:     http.StatusUnprocessableEntity,
			dErrors.CodeDocumentsIncomplete:     http.StatusUnprocessableEntity,
			dErrors.CodeConfigUnavailable:       http.StatusServiceUnavailable,
		}
		for code, status := range cases {
			assert.Equal(t, status, StatusFor(dErrors.New(code, "x")), string(code))
		}
	})

	t.Run("persistence error surfaces backend message", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, dErrors.NewPersistence(500, "Error interno del servidor", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		body := decode(t, w)
		assert.Equal(t, "persistence_error", body["error"])
		assert.Equal(t, "Error interno del servidor", body["error_description"])
	})

	t.Run("persistence 4xx keeps backend status", func(t *testing.T) {
		assert.Equal(t, http.StatusUnprocessableEntity, StatusFor(dErrors.NewPersistence(422, "precio inválido", nil)))
	})
}

type pingRequest struct {
	Name string `json:"name"`
}

func (r *pingRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	return nil
}

func TestDecodeAndPrepare(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"  ana "}`))
		w := httptest.NewRecorder()
		req, ok := DecodeAndPrepare[pingRequest](w, r, nil, r.Context(), "req-1")
		require.True(t, ok)
		assert.Equal(t, "ana", req.Name)
	})

	t.Run("malformed json", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		w := httptest.NewRecorder()
		_, ok := DecodeAndPrepare[pingRequest](w, r, nil, r.Context(), "req-1")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "bad_request", decode(t, w)["error"])
	})

	t.Run("validation failure", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":""}`))
		w := httptest.NewRecorder()
		_, ok := DecodeAndPrepare[pingRequest](w, r, nil, r.Context(), "req-1")
		assert.False(t, ok)
		assert.Equal(t, "validation_error", decode(t, w)["error"])
	})
}
