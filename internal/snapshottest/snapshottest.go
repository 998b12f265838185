// Package snapshottest provides test assertions over chain snapshots.
package snapshottest

import (
	"testing"

	"github.com/iho/chainsnap/internal/domain"
	"github.com/iho/chainsnap/internal/keystore"
	"github.com/iho/chainsnap/internal/usecase"
)

// RequireEqual fails the test immediately with the full diff report when
// left and right are not equal within tolerance.
func RequireEqual(t testing.TB, left, right *domain.Snapshot) {
	t.Helper()
	requireResult(t, usecase.CompareSnapshots(left, right))
}

// RequireEqualWithKeyStore is RequireEqual with account names resolved
// through store.
func RequireEqualWithKeyStore(t testing.TB, left, right *domain.Snapshot, store *keystore.KeyStore) {
	t.Helper()
	requireResult(t, usecase.CompareSnapshotsWithKeyStore(left, right, store))
}

// RequireBaseline compares current against the stored baseline. It fails if
// no baseline was stored.
func RequireBaseline(t testing.TB, baseline *usecase.Baseline, current *domain.Snapshot) {
	t.Helper()
	before, ok := baseline.Snapshot()
	if !ok {
		t.Fatal("snapshot baseline was not stored")
		return
	}
	RequireEqual(t, before, current)
}

func requireResult(t testing.TB, result usecase.Result) {
	t.Helper()
	if !result.Equal {
		t.Fatalf("snapshots differ (%d discrepancies):\n%s", len(result.Discrepancies), result.Report)
	}
}
