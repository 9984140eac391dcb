package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-journal/internal/logger"
)

// withBufferLogger puts a logger writing to buf into the request context
// the same way withTraceID does.
func withBufferLogger(r *http.Request, buf *bytes.Buffer) *http.Request {
	l := zerolog.New(buf)
	return r.WithContext(l.WithContext(r.Context()))
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		wantLevel string
		wantCode  float64
		wantSize  float64
		wantLoc   string
	}{
		{
			name: "page",
			handler: func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, "hello")
			},
			wantLevel: "info",
			wantCode:  http.StatusOK,
			wantSize:  5,
		},
		{
			name: "redirect",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Location", "/journal")
				w.WriteHeader(http.StatusSeeOther)
			},
			wantLevel: "info",
			wantCode:  http.StatusSeeOther,
			wantLoc:   "/journal",
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantLevel: "error",
			wantCode:  http.StatusInternalServerError,
		},
		{
			name:      "nothing written",
			handler:   func(w http.ResponseWriter, r *http.Request) {},
			wantLevel: "info",
			wantCode:  http.StatusOK,
		},
	}

	h := &Handler{logger: logger.Nop()}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			req := withBufferLogger(httptest.NewRequest(http.MethodPost, "/new-entry", nil), &buf)
			rec := httptest.NewRecorder()

			h.withLogging(tt.handler).ServeHTTP(rec, req)

			entry := decodeLogLine(t, &buf)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "/new-entry", entry["uri"])
			assert.Equal(t, "POST", entry["method"])
			assert.Equal(t, tt.wantCode, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Equal(t, tt.wantLoc, entry["location"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestWithTraceID(t *testing.T) {
	valid := uuid.NewString()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when absent"},
		{name: "client uuid kept", incoming: valid, keep: true},
		{name: "non uuid replaced", incoming: "<script>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()

			h.withTraceID(next).ServeHTTP(rec, req)

			traceID := rec.Header().Get(traceIDHeader)
			_, err := uuid.Parse(traceID)
			require.NoError(t, err)
			if tt.keep {
				assert.Equal(t, tt.incoming, traceID)
			} else {
				assert.NotEqual(t, tt.incoming, traceID)
			}

			assert.Equal(t, traceID, decodeLogLine(t, &buf)["trace_id"])
		})
	}
}

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/new-entry", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method string
		want   int
	}{
		{http.MethodPost, http.StatusSeeOther},
		{http.MethodGet, http.StatusNotFound},
		{http.MethodPut, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, "/new-entry", nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestResponseWriter(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	n, err := rw.Write([]byte("abc"))
	require.NoError(t, err)
	rw.WriteHeader(http.StatusTeapot)
	_, err = rw.Write([]byte("de"))
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusOK, rw.status)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, rw.size)
	assert.Same(t, rec, rw.Unwrap())
}
