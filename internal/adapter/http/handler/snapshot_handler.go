package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/chainsnap/internal/adapter/http/dto"
	"github.com/iho/chainsnap/internal/domain"
	"github.com/iho/chainsnap/internal/usecase"
)

// SnapshotService defines the behavior needed by SnapshotHandler.
type SnapshotService interface {
	CaptureAndStash(ctx context.Context) (*domain.StashedSnapshot, error)
	Get(ctx context.Context, id string) (*domain.StashedSnapshot, error)
	Delete(ctx context.Context, id string) error
}

// Humanizer resolves account names for rendering.
type Humanizer interface {
	Humanize(snap *domain.Snapshot) usecase.HumanSnapshot
}

// SnapshotHandler handles snapshot-related HTTP requests.
type SnapshotHandler struct {
	snapshots SnapshotService
	humanizer Humanizer
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshots SnapshotService, humanizer Humanizer) *SnapshotHandler {
	return &SnapshotHandler{snapshots: snapshots, humanizer: humanizer}
}

// Capture reads a snapshot from the node and stashes it.
func (h *SnapshotHandler) Capture(w http.ResponseWriter, r *http.Request) {
	stashed, err := h.snapshots.CaptureAndStash(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to capture snapshot", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.SnapshotFromDomain(stashed))
}

// Get returns a stashed snapshot with account names resolved.
func (h *SnapshotHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing snapshot ID", "")
		return
	}

	stashed, err := h.snapshots.Get(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get snapshot", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SnapshotDetailResponse{
		SnapshotResponse: *dto.SnapshotFromDomain(stashed),
		Snapshot:         h.humanizer.Humanize(stashed.Snapshot),
	})
}

// Delete drops a stashed snapshot.
func (h *SnapshotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing snapshot ID", "")
		return
	}

	if err := h.snapshots.Delete(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete snapshot", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
