package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/chainsnap/internal/domain"
	infrapg "github.com/iho/chainsnap/internal/infrastructure/postgres"
)

func TestDiscrepanciesEncoding(t *testing.T) {
	left := decimal.NewFromInt(100)
	in := []domain.Discrepancy{{
		Section:    domain.SectionBalances,
		Account:    "Alice",
		Currency:   "Usd",
		Left:       &left,
		Difference: decimal.NewFromInt(11),
	}}

	data, err := encodeDiscrepancies(in)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	out, err := decodeDiscrepancies(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(out) != 1 || out[0].Account != "Alice" || out[0].Right != nil || !out[0].Left.Equal(left) {
		t.Fatalf("unexpected decoded discrepancies: %+v", out)
	}

	empty, err := encodeDiscrepancies(nil)
	if err != nil || string(empty) != "[]" {
		t.Fatalf("expected [] for nil discrepancies, got %s (%v)", empty, err)
	}
	if out, _ := decodeDiscrepancies(nil); out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}

func TestReportRepository_Integration(t *testing.T) {
	dbURL := os.Getenv("DATABASE_URL")
	if testing.Short() || dbURL == "" {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	if err := infrapg.RunMigrations(dbURL, zerolog.Nop()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	pool, err := infrapg.NewPool(ctx, dbURL, 2, 0)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer pool.Close()

	repo := NewReportRepository(pool, NewRetrier(zerolog.Nop()))
	idGen := NewULIDGenerator()

	base := time.Now().UTC().Truncate(time.Microsecond)
	var ids []string
	for i := 0; i < 3; i++ {
		report := &domain.ComparisonReport{
			ID:        idGen.Generate(),
			LeftID:    fmt.Sprintf("left-%d", i),
			RightID:   fmt.Sprintf("right-%d", i),
			Equal:     i%2 == 0,
			Report:    "report text",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if !report.Equal {
			report.Discrepancies = []domain.Discrepancy{{Section: domain.SectionTotal, Difference: decimal.NewFromInt(-10)}}
		}
		if err := repo.Create(ctx, report); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		ids = append(ids, report.ID)
	}

	got, err := repo.GetByID(ctx, ids[1])
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Equal || len(got.Discrepancies) != 1 || got.Discrepancies[0].Difference.String() != "-10" {
		t.Fatalf("unexpected report: %+v", got)
	}
	if !got.CreatedAt.Equal(base.Add(time.Second)) {
		t.Fatalf("created_at mismatch: %v", got.CreatedAt)
	}

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, domain.ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}

	list, err := repo.List(ctx, 2, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 || list[0].CreatedAt.Before(list[1].CreatedAt) {
		t.Fatalf("expected two reports newest first, got %d", len(list))
	}
}
