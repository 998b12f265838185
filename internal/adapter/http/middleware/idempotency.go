package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/chainsnap/internal/usecase"
)

const (
	// IdempotencyKeyHeader is the header name for idempotency keys.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayHeader marks a response served from the store.
	IdempotencyReplayHeader = "X-Idempotency-Replay"

	defaultIdempotencyTTL = 24 * time.Hour
)

type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type,omitempty"`
	Body        []byte `json:"body"`
}

// IdempotencyMiddleware replays the response of a completed POST carrying
// the same Idempotency-Key instead of running it twice.
type IdempotencyMiddleware struct {
	store  usecase.IdempotencyStore
	ttl    time.Duration
	logger zerolog.Logger
}

// NewIdempotencyMiddleware creates a new IdempotencyMiddleware. A zero ttl
// means 24h.
func NewIdempotencyMiddleware(store usecase.IdempotencyStore, ttl time.Duration, logger zerolog.Logger) *IdempotencyMiddleware {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyMiddleware{store: store, ttl: ttl, logger: logger}
}

// Wrap wraps an http.Handler with idempotency checking.
func (m *IdempotencyMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get(IdempotencyKeyHeader)
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}
		// Keys are scoped per endpoint.
		key := r.URL.Path + ":" + header

		claimed, cached, err := m.store.Claim(r.Context(), key, m.ttl)
		if err != nil {
			m.logger.Error().Err(err).Str("key", header).Msg("idempotency claim failed")
			http.Error(w, "idempotency check failed", http.StatusInternalServerError)
			return
		}

		if !claimed {
			if cached == nil {
				http.Error(w, "request with this idempotency key is in progress", http.StatusConflict)
				return
			}
			m.replay(w, header, cached)
			return
		}

		recorder := &responseRecorder{
			ResponseWriter: w,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
		}

		// Detached so a cancelled client still completes or releases its claim.
		ctx := context.WithoutCancel(r.Context())

		// A panicking handler never reaches the release below; free the key
		// before the panic continues to the recovery middleware.
		defer func() {
			if p := recover(); p != nil {
				m.release(ctx, key, header)
				panic(p)
			}
		}()

		next.ServeHTTP(recorder, r)

		if recorder.statusCode < 200 || recorder.statusCode >= 300 {
			m.release(ctx, key, header)
			return
		}

		payload, err := json.Marshal(storedResponse{
			Status:      recorder.statusCode,
			ContentType: recorder.Header().Get("Content-Type"),
			Body:        recorder.body.Bytes(),
		})
		if err == nil {
			err = m.store.Complete(ctx, key, payload, m.ttl)
		}
		if err != nil {
			m.logger.Warn().Err(err).Str("key", header).Msg("idempotency complete failed")
		}
	})
}

func (m *IdempotencyMiddleware) release(ctx context.Context, key, header string) {
	if err := m.store.Release(ctx, key); err != nil {
		m.logger.Warn().Err(err).Str("key", header).Msg("idempotency release failed")
	}
}

func (m *IdempotencyMiddleware) replay(w http.ResponseWriter, key string, cached []byte) {
	var stored storedResponse
	if err := json.Unmarshal(cached, &stored); err != nil {
		m.logger.Error().Err(err).Str("key", key).Msg("corrupt idempotency record")
		http.Error(w, "idempotency check failed", http.StatusInternalServerError)
		return
	}

	if stored.ContentType != "" {
		w.Header().Set("Content-Type", stored.ContentType)
	}
	w.Header().Set(IdempotencyReplayHeader, "true")
	w.WriteHeader(stored.Status)
	w.Write(stored.Body)
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}
