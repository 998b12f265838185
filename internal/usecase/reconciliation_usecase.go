package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/chainsnap/internal/domain"
)

// ReconciliationUseCase compares stashed snapshots and records the outcome.
type ReconciliationUseCase struct {
	stash      SnapshotStash
	reportRepo ReportRepository
	identities *IdentityUseCase
	idGen      IDGenerator
	metrics    MetricsRecorder
	logger     zerolog.Logger
}

// NewReconciliationUseCase creates a new ReconciliationUseCase. A nil
// metrics recorder disables instrumentation.
func NewReconciliationUseCase(
	stash SnapshotStash,
	reportRepo ReportRepository,
	identities *IdentityUseCase,
	idGen IDGenerator,
	metrics MetricsRecorder,
	logger zerolog.Logger,
) *ReconciliationUseCase {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &ReconciliationUseCase{
		stash:      stash,
		reportRepo: reportRepo,
		identities: identities,
		idGen:      idGen,
		metrics:    metrics,
		logger:     logger,
	}
}

// Compare compares two stashed snapshots and persists the report. A
// mismatch is a normal outcome carried in the report, not an error.
func (uc *ReconciliationUseCase) Compare(ctx context.Context, leftID, rightID string) (*domain.ComparisonReport, error) {
	left, err := uc.stash.Load(ctx, leftID)
	if err != nil {
		return nil, fmt.Errorf("failed to load left snapshot %s: %w", leftID, err)
	}
	right, err := uc.stash.Load(ctx, rightID)
	if err != nil {
		return nil, fmt.Errorf("failed to load right snapshot %s: %w", rightID, err)
	}

	store := uc.identities.KeyStore(left.Snapshot, right.Snapshot)
	result := CompareSnapshotsWithKeyStore(left.Snapshot, right.Snapshot, store)

	report := &domain.ComparisonReport{
		ID:            uc.idGen.Generate(),
		LeftID:        leftID,
		RightID:       rightID,
		Equal:         result.Equal,
		Report:        result.Report,
		Discrepancies: result.Discrepancies,
		CreatedAt:     time.Now().UTC(),
	}
	if report.Discrepancies == nil {
		report.Discrepancies = []domain.Discrepancy{}
	}

	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to save comparison report: %w", err)
	}

	uc.metrics.ObserveComparison(result.Equal, len(result.Discrepancies))
	uc.logger.Info().
		Str("report_id", report.ID).
		Str("left_id", leftID).
		Str("right_id", rightID).
		Bool("equal", result.Equal).
		Int("discrepancies", len(result.Discrepancies)).
		Msg("snapshots compared")

	return report, nil
}

// GetReport returns a stored comparison report.
func (uc *ReconciliationUseCase) GetReport(ctx context.Context, id string) (*domain.ComparisonReport, error) {
	return uc.reportRepo.GetByID(ctx, id)
}

// ListReports returns stored reports, newest first.
func (uc *ReconciliationUseCase) ListReports(ctx context.Context, limit, offset int) ([]*domain.ComparisonReport, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return uc.reportRepo.List(ctx, limit, offset)
}
