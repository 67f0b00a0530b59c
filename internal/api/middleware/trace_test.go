package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	logBuf, base := logger.SetupTestLogger(t, nil)

	var seenTraceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	})

	handler := chimiddleware.RequestID(NewTraceMiddleware(base)(next))

	t.Run("generates trace id", func(t *testing.T) {
		logBuf.Reset()
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/tasks", nil))

		require.NotEmpty(t, seenTraceID)
		_, err := uuid.Parse(seenTraceID)
		assert.NoError(t, err)
		assert.Equal(t, seenTraceID, rr.Header().Get(shared.TraceIDHeader))
		assert.Equal(t, http.StatusTeapot, rr.Code)

		entries, err := logBuf.GetLogEntries()
		require.NoError(t, err)

		var handlerEntry, completedEntry map[string]interface{}
		for _, e := range entries {
			switch e["msg"] {
			case "inside handler":
				handlerEntry = e
			case "request completed":
				completedEntry = e
			}
		}
		require.NotNil(t, handlerEntry, "handler should log through the scoped logger")
		assert.Equal(t, seenTraceID, handlerEntry["trace_id"])
		assert.NotEmpty(t, handlerEntry["request_id"])

		require.NotNil(t, completedEntry)
		assert.Equal(t, float64(http.StatusTeapot), completedEntry["status"])
	})

	t.Run("reuses valid incoming trace id", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set(shared.TraceIDHeader, incoming)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, incoming, seenTraceID)
		assert.Equal(t, incoming, rr.Header().Get(shared.TraceIDHeader))
	})

	t.Run("replaces malformed incoming trace id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req.Header.Set(shared.TraceIDHeader, "not-a-uuid\ninjected")

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.NotEqual(t, "not-a-uuid\ninjected", seenTraceID)
		_, err := uuid.Parse(seenTraceID)
		assert.NoError(t, err)
	})
}
