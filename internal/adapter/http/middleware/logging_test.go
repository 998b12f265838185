package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	handler := chimiddleware.RequestID(NewLoggingMiddleware(logger).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("missing"))
	})))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/snapshots/x", nil))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode log line %q: %v", buf.String(), err)
	}
	if entry["level"] != "warn" || entry["status"] != float64(404) || entry["bytes"] != float64(7) {
		t.Fatalf("unexpected log entry: %v", entry)
	}
	if entry["request_id"] == "" || entry["request_id"] == nil {
		t.Fatalf("expected request id, got %v", entry)
	}
}

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer
	handler := Recovery(zerolog.New(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if !bytes.Contains(buf.Bytes(), []byte("panic recovered")) {
		t.Fatalf("expected panic to be logged, got %q", buf.String())
	}
}
