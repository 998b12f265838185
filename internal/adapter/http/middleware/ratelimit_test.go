package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiter_PerClient(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rejected := 0
	rl.OnReject = func() { rejected++ }

	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/identities", nil)
		req.RemoteAddr = addr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	if code := do("10.0.0.1:1000"); code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", code)
	}
	if code := do("10.0.0.1:2000"); code != http.StatusTooManyRequests {
		t.Fatalf("expected same host on another port to be throttled, got %d", code)
	}
	if code := do("10.0.0.2:1000"); code != http.StatusOK {
		t.Fatalf("expected other client to pass, got %d", code)
	}
	if rejected != 1 {
		t.Fatalf("expected 1 rejection, got %d", rejected)
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(10, 10)
	rl.now = func() time.Time { return now }

	rl.allow("a")
	now = now.Add(time.Hour)
	rl.allow("b")

	if removed := rl.Cleanup(30 * time.Minute); removed != 1 {
		t.Fatalf("expected 1 idle limiter removed, got %d", removed)
	}
	if _, ok := rl.limiters["b"]; !ok {
		t.Fatal("expected active limiter to be kept")
	}
}
