package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/chainsnap/internal/adapter/http/dto"
	"github.com/iho/chainsnap/internal/domain"
	"github.com/iho/chainsnap/internal/usecase"
)

// ReconciliationService defines the behavior needed by ComparisonHandler.
type ReconciliationService interface {
	Compare(ctx context.Context, leftID, rightID string) (*domain.ComparisonReport, error)
	GetReport(ctx context.Context, id string) (*domain.ComparisonReport, error)
	ListReports(ctx context.Context, limit, offset int) ([]*domain.ComparisonReport, error)
}

// ComparisonHandler handles comparison-related HTTP requests.
type ComparisonHandler struct {
	reconciliation ReconciliationService
	decimals       int32
}

// NewComparisonHandler creates a new ComparisonHandler. decimals is the
// chain's token precision used to render discrepancy amounts.
func NewComparisonHandler(reconciliation ReconciliationService, decimals int32) *ComparisonHandler {
	return &ComparisonHandler{reconciliation: reconciliation, decimals: decimals}
}

// Create compares two stashed snapshots. A mismatch is still a 200; the
// outcome is in the body.
func (h *ComparisonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	report, err := h.reconciliation.Compare(r.Context(), req.LeftID, req.RightID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compare snapshots", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ComparisonFromDomain(report, h.decimals))
}

// Get retrieves a comparison report by ID.
func (h *ComparisonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing comparison ID", "")
		return
	}

	report, err := h.reconciliation.GetReport(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get comparison", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ComparisonFromDomain(report, h.decimals))
}

// List lists comparison reports, newest first.
func (h *ComparisonHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", usecase.DefaultListLimit)
	offset := parseIntQuery(r, "offset", 0)

	reports, err := h.reconciliation.ListReports(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list comparisons", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListComparisonsResponse{
		Comparisons: dto.ComparisonsFromDomain(reports, h.decimals),
		Total:       int64(len(reports)),
	})
}
