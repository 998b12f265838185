package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const readinessTimeout = 5 * time.Second

// DependencyCheck is a named readiness probe.
type DependencyCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

// PostgresCheck probes the report database.
func PostgresCheck(pool *pgxpool.Pool) DependencyCheck {
	return DependencyCheck{Name: "postgres", Ping: pool.Ping}
}

// RedisCheck probes the snapshot stash.
func RedisCheck(client *redis.Client) DependencyCheck {
	return DependencyCheck{
		Name: "redis",
		Ping: func(ctx context.Context) error { return client.Ping(ctx).Err() },
	}
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	checks []DependencyCheck
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(checks ...DependencyCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 if every dependency answers.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	status := map[string]string{"status": "ready"}
	for _, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			writeError(w, http.StatusServiceUnavailable, check.Name+" unhealthy", err.Error())
			return
		}
		status[check.Name] = "ok"
	}

	writeJSON(w, http.StatusOK, status)
}
