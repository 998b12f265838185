package usecase

import (
	"context"
	"time"

	"github.com/iho/chainsnap/internal/domain"
)

// BalanceEntry is one raw item of the on-chain account-balance map.
type BalanceEntry struct {
	Key     []byte
	Balance domain.SignedBalance
}

// BalanceIterator walks the account-balance map in storage order.
type BalanceIterator interface {
	// Next returns the next entry; ok is false once the map is exhausted.
	Next(ctx context.Context) (entry BalanceEntry, ok bool, err error)
}

// StorageReader is the chain-facing collaborator snapshots are built from.
// Optional values are returned as nil when absent on chain.
type StorageReader interface {
	AccountBalances(ctx context.Context) (BalanceIterator, error)
	TotalIssuance(ctx context.Context) (uint64, error)
	Vesting(ctx context.Context, id domain.AccountID) (*domain.VestingInfo, error)
	Vested(ctx context.Context, id domain.AccountID) (*uint64, error)
	BalancesAggregate(ctx context.Context, currency domain.Currency) (domain.BalancesAggregate, error)
}

// ChainNode hands out storage readers pinned to the current best block.
type ChainNode interface {
	PinnedReader(ctx context.Context) (reader StorageReader, blockHash string, err error)
	Endpoint() string
}

// SnapshotStash keeps captured snapshots between the acquisition and
// comparison phases.
type SnapshotStash interface {
	Save(ctx context.Context, snapshot *domain.StashedSnapshot) error
	Load(ctx context.Context, id string) (*domain.StashedSnapshot, error)
	Delete(ctx context.Context, id string) error
}

// ReportRepository persists comparison outcomes.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.ComparisonReport) error
	GetByID(ctx context.Context, id string) (*domain.ComparisonReport, error)
	List(ctx context.Context, limit, offset int) ([]*domain.ComparisonReport, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// MetricsRecorder receives capture and comparison observations.
type MetricsRecorder interface {
	ObserveCapture(duration time.Duration, err error)
	ObserveComparison(equal bool, discrepancies int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCapture(time.Duration, error) {}
func (nopRecorder) ObserveComparison(bool, int)         {}

// IdempotencyStore deduplicates retried mutating requests by client key.
type IdempotencyStore interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (claimed bool, response []byte, err error)
	Complete(ctx context.Context, key string, response []byte, ttl time.Duration) error
	Release(ctx context.Context, key string) error
}
