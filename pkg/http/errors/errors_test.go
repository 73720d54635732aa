package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, ErrCodeSessionNotFound, "Session not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrCodeSessionNotFound, body.Error)
	assert.Equal(t, "Session not found", body.Message)
	assert.Empty(t, body.Field)
}

func TestRespondValidationErrorIncludesField(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondValidationError(rec, ErrCodeMissingField, "subject is required", "subject")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "subject", body.Field)
}
