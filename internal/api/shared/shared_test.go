package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/eventplan-api/internal/domain"
	"github.com/phrazzld/eventplan-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background())
	assert.NotEmpty(t, GetTraceID(ctx))
}

type sample struct {
	Title string `json:"title" validate:"required"`
	Start string `json:"start" validate:"required"`
}

func TestDecodeJSON(t *testing.T) {
	var s sample
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x","start":"y"}`))
	require.NoError(t, DecodeJSON(httptest.NewRecorder(), req, &s))
	assert.Equal(t, "x", s.Title)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":`))
	assert.ErrorIs(t, DecodeJSON(httptest.NewRecorder(), req, &s), ErrInvalidBody)
}

func TestValidateRequest(t *testing.T) {
	require.NoError(t, ValidateRequest(sample{Title: "x", Start: "y"}))

	err := ValidateRequest(sample{Start: "y"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
	assert.Equal(t, "title is required", verr.Error())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")

	t.Run("hides cause by default", func(t *testing.T) {
		logBuf, _ := logger.SetupTestLogger(t)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/events", nil)

		RespondWithErrorAndLog(rec, req, http.StatusInternalServerError, "Failed to fetch events", cause)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, map[string]any{"error": "Failed to fetch events"}, body)

		assert.NotContains(t, logBuf.String(), "10.0.0.5:5432")
		assert.Contains(t, logBuf.String(), `"level":"ERROR"`)
	})

	t.Run("redacted details when enabled", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/events", nil)

		RespondWithErrorAndLog(rec, req, http.StatusInternalServerError, "Failed to fetch events", cause, WithDetails(true))

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Details)
		assert.NotContains(t, body.Details, "10.0.0.5:5432")
	})

	t.Run("4xx logs at debug", func(t *testing.T) {
		logBuf, _ := logger.SetupTestLogger(t)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)

		RespondWithErrorAndLog(rec, req, http.StatusBadRequest, "Invalid credentials", cause)
		assert.Contains(t, logBuf.String(), `"level":"DEBUG"`)
	})
}

func TestRespondWithJSONSetsTraceHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(SetTraceID(req.Context()))

	RespondWithJSON(rec, req, http.StatusOK, map[string]string{"ok": "yes"})

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, GetTraceID(req.Context()), rec.Header().Get(TraceIDHeader))
}
