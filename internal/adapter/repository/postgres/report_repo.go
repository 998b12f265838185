package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/chainsnap/internal/domain"
)

// ReportRepository implements usecase.ReportRepository.
type ReportRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewReportRepository creates a new report repository.
func NewReportRepository(pool *pgxpool.Pool, retrier *Retrier) *ReportRepository {
	return &ReportRepository{pool: pool, retrier: retrier}
}

// Create inserts a comparison report.
func (r *ReportRepository) Create(ctx context.Context, report *domain.ComparisonReport) error {
	discrepancies, err := encodeDiscrepancies(report.Discrepancies)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO comparison_reports (
			id, left_snapshot_id, right_snapshot_id, equal,
			discrepancy_count, report, discrepancies, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, query,
			report.ID,
			report.LeftID,
			report.RightID,
			report.Equal,
			len(report.Discrepancies),
			report.Report,
			discrepancies,
			report.CreatedAt,
		)
		return err
	})
}

const reportColumns = `id, left_snapshot_id, right_snapshot_id, equal, report, discrepancies, created_at`

// GetByID retrieves a report by ID.
func (r *ReportRepository) GetByID(ctx context.Context, id string) (*domain.ComparisonReport, error) {
	query := `SELECT ` + reportColumns + ` FROM comparison_reports WHERE id = $1`

	report, err := scanReport(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

// List returns reports newest first.
func (r *ReportRepository) List(ctx context.Context, limit, offset int) ([]*domain.ComparisonReport, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM comparison_reports
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := make([]*domain.ComparisonReport, 0, limit)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

func scanReport(row pgx.Row) (*domain.ComparisonReport, error) {
	var (
		report        domain.ComparisonReport
		discrepancies []byte
	)
	err := row.Scan(
		&report.ID,
		&report.LeftID,
		&report.RightID,
		&report.Equal,
		&report.Report,
		&discrepancies,
		&report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	report.Discrepancies, err = decodeDiscrepancies(discrepancies)
	if err != nil {
		return nil, fmt.Errorf("report %s: %w", report.ID, err)
	}
	return &report, nil
}

func encodeDiscrepancies(d []domain.Discrepancy) ([]byte, error) {
	if d == nil {
		d = []domain.Discrepancy{}
	}
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode discrepancies: %w", err)
	}
	return data, nil
}

func decodeDiscrepancies(data []byte) ([]domain.Discrepancy, error) {
	out := []domain.Discrepancy{}
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode discrepancies: %w", err)
	}
	return out, nil
}
