package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/persona-api/internal/api/shared"
	"github.com/phrazzld/persona-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	l, logBuf := logger.GetTestLogger(t)
	logger.SetDefaultForTest(t, l)

	var seenTraceID string
	var ctxLogger *slog.Logger
	h := Trace(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenTraceID = shared.GetTraceID(r.Context())
		ctxLogger = logger.FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Len(t, seenTraceID, shared.TraceIDLength)
	assert.Equal(t, seenTraceID, w.Header().Get(shared.TraceIDHeader))
	assert.NotSame(t, slog.Default(), ctxLogger, "handler should see a request-scoped logger")

	entries, err := logBuf.GetLogEntries()
	require.NoError(t, err)
	var completed map[string]interface{}
	for _, e := range entries {
		if e["msg"] == "request completed" {
			completed = e
		}
	}
	require.NotNil(t, completed, "completion should be logged")
	assert.Equal(t, seenTraceID, completed["trace_id"])
	assert.Equal(t, float64(http.StatusTeapot), completed["status"])
	assert.Equal(t, float64(5), completed["bytes"])
}

func TestTrace_DistinctIDsPerRequest(t *testing.T) {
	h := Trace(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t,
		first.Header().Get(shared.TraceIDHeader),
		second.Header().Get(shared.TraceIDHeader))
}

func TestRecover(t *testing.T) {
	l, logBuf := logger.GetTestLogger(t)
	logger.SetDefaultForTest(t, l)

	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom at /srv/app/secret.go")
	}))

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Unexpected error"}`, w.Body.String())
	assert.Contains(t, logBuf.String(), "recovered from panic")
	assert.NotContains(t, logBuf.String(), "/srv/app/secret.go")
}

func TestRecover_AbortHandlerPropagates(t *testing.T) {
	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
