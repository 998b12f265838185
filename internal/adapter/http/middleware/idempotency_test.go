package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/iho/chainsnap/internal/usecase/mocks"
)

// memoryIdempotencyStore mirrors the Redis store's claim semantics.
type memoryIdempotencyStore struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryIdempotencyStore() *memoryIdempotencyStore {
	return &memoryIdempotencyStore{entries: make(map[string][]byte)}
}

func (s *memoryIdempotencyStore) Claim(ctx context.Context, key string, ttl time.Duration) (bool, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.entries[key]
	if !ok {
		s.entries[key] = nil
		return true, nil, nil
	}
	return false, v, nil
}

func (s *memoryIdempotencyStore) Complete(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = response
	return nil
}

func (s *memoryIdempotencyStore) Release(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func postWithKey(key string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/snapshots", bytes.NewBufferString(`{}`))
	req.Header.Set(IdempotencyKeyHeader, key)
	return req
}

func TestIdempotencyMiddleware_ReplaysCompletedResponse(t *testing.T) {
	calls := 0
	mw := NewIdempotencyMiddleware(newMemoryIdempotencyStore(), time.Hour, zerolog.Nop())
	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"snap-1"}`))
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, postWithKey("k1"))

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, postWithKey("k1"))

	if calls != 1 {
		t.Fatalf("expected handler to run once, ran %d times", calls)
	}
	if second.Code != http.StatusCreated {
		t.Fatalf("expected replayed status 201, got %d", second.Code)
	}
	if second.Body.String() != `{"id":"snap-1"}` {
		t.Fatalf("unexpected replayed body %q", second.Body.String())
	}
	if second.Header().Get(IdempotencyReplayHeader) != "true" {
		t.Fatal("expected replay header")
	}
	if second.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("expected content type to be replayed, got %q", second.Header().Get("Content-Type"))
	}
}

func TestIdempotencyMiddleware_ReleasesFailedRequests(t *testing.T) {
	store := newMemoryIdempotencyStore()
	status := http.StatusServiceUnavailable
	mw := NewIdempotencyMiddleware(store, time.Hour, zerolog.Nop())
	handler := mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, postWithKey("k2"))
	if len(store.entries) != 0 {
		t.Fatalf("expected failed request to release its key, got %v", store.entries)
	}

	status = http.StatusCreated
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, postWithKey("k2"))
	if rr.Code != http.StatusCreated || rr.Header().Get(IdempotencyReplayHeader) != "" {
		t.Fatalf("expected retry to run the handler, got %d", rr.Code)
	}
}

func TestIdempotencyMiddleware_ReleasesAfterPanic(t *testing.T) {
	store := newMemoryIdempotencyStore()
	mw := NewIdempotencyMiddleware(store, time.Hour, zerolog.Nop())

	calls := 0
	handler := Recovery(zerolog.Nop())(mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			panic("node client exploded")
		}
		w.WriteHeader(http.StatusCreated)
	})))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, postWithKey("k6"))
	if first.Code != http.StatusInternalServerError {
		t.Fatalf("expected recovered 500, got %d", first.Code)
	}
	if _, pending := store.entries["/api/v1/snapshots:k6"]; pending {
		t.Fatal("expected panicking request to release its key")
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, postWithKey("k6"))
	if second.Code != http.StatusCreated {
		t.Fatalf("expected retry to reach the handler, got %d", second.Code)
	}
	if calls != 2 {
		t.Fatalf("expected handler to run twice, ran %d times", calls)
	}
}

func TestIdempotencyMiddleware_PendingKeyConflicts(t *testing.T) {
	store := newMemoryIdempotencyStore()
	store.entries["/api/v1/snapshots:k3"] = nil

	called := false
	mw := NewIdempotencyMiddleware(store, time.Hour, zerolog.Nop())
	rr := httptest.NewRecorder()
	mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rr, postWithKey("k3"))

	if called {
		t.Fatal("handler should not run while the key is pending")
	}
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rr.Code)
	}
}

func TestIdempotencyMiddleware_SkipsWithoutKeyOrForGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIdempotencyStore(ctrl)

	calls := 0
	handler := NewIdempotencyMiddleware(store, 0, zerolog.Nop()).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/snapshots", nil))

	get := httptest.NewRequest(http.MethodGet, "/api/v1/comparisons", nil)
	get.Header.Set(IdempotencyKeyHeader, "k4")
	handler.ServeHTTP(httptest.NewRecorder(), get)

	if calls != 2 {
		t.Fatalf("expected both requests to pass through, got %d", calls)
	}
}

func TestIdempotencyMiddleware_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIdempotencyStore(ctrl)
	store.EXPECT().
		Claim(gomock.Any(), "/api/v1/snapshots:k5", defaultIdempotencyTTL).
		Return(false, nil, context.DeadlineExceeded)

	called := false
	rr := httptest.NewRecorder()
	NewIdempotencyMiddleware(store, 0, zerolog.Nop()).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rr, postWithKey("k5"))

	if called {
		t.Fatal("handler should not be called when the store errors")
	}
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
}
