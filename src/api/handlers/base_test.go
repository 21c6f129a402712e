package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"timevalue/src/schemas"
	"timevalue/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorsMapsToEnvelope(t *testing.T) {
	handler := &Handler{}

	tests := []struct {
		name       string
		err        error
		defaults   []int
		wantStatus int
	}{
		{"bad request", utils.BadRequest("invalid start date"), nil, http.StatusBadRequest},
		{"not found", utils.NotFound("asset not found"), nil, http.StatusNotFound},
		{"unprocessable", utils.UnprocessableEntity("end date before start date"), nil, http.StatusUnprocessableEntity},
		{"timeout", context.DeadlineExceeded, nil, http.StatusGatewayTimeout},
		{"plain error falls back to 500", errors.New("boom"), nil, http.StatusInternalServerError},
		{"plain error honors default status", errors.New("boom"), []int{http.StatusBadGateway}, http.StatusBadGateway},
		{"wrapped http error wins over default", utils.NotFound("gone"), []int{http.StatusBadRequest}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.HandleErrors(rec, tt.err, tt.defaults...)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var envelope schemas.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
			assert.Equal(t, tt.wantStatus, envelope.Code)
			assert.Equal(t, tt.err.Error(), envelope.Message)
		})
	}
}

func TestRespondWrapsPayload(t *testing.T) {
	handler := &Handler{}
	rec := httptest.NewRecorder()

	handler.respond(rec, nil, map[string]int{"total": 3}, http.StatusOK)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope schemas.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, http.StatusOK, envelope.Code)
	assert.Equal(t, "success", envelope.Message)
	assert.Equal(t, map[string]interface{}{"total": float64(3)}, envelope.Data)
}
