package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iho/chainsnap/internal/domain"
)

func testStashedSnapshot(id string) *domain.StashedSnapshot {
	snap := domain.NewSnapshot()
	snap.SetBalance(domain.AccountID{0x01}, domain.CurrencyEq, domain.Negative(12))
	snap.Normalize()
	snap.Vested[domain.AccountID{0x01}] = 3
	snap.Total = 99

	return &domain.StashedSnapshot{
		ID:         id,
		Source:     "http://node:9933",
		Block:      "0xfeed",
		CapturedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Snapshot:   snap,
	}
}

func TestSnapshotStash_SaveLoad(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	stash := NewSnapshotStash(client, time.Hour)
	ctx := context.Background()

	want := testStashedSnapshot("snap-1")
	if err := stash.Save(ctx, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if !mr.Exists("snapshot:snap-1") {
		t.Fatalf("expected snapshot:snap-1 key in redis")
	}
	if ttl := mr.TTL("snapshot:snap-1"); ttl != time.Hour {
		t.Fatalf("expected 1h TTL, got %v", ttl)
	}

	got, err := stash.Load(ctx, "snap-1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Block != want.Block || !got.CapturedAt.Equal(want.CapturedAt) {
		t.Fatalf("metadata mismatch: got %+v", got)
	}
	if !got.Snapshot.Equal(want.Snapshot) {
		t.Fatalf("snapshot mismatch after round trip")
	}
	if b := got.Snapshot.Balances[domain.AccountID{0x01}][domain.CurrencyEq]; b != domain.Negative(12) {
		t.Fatalf("expected Negative(12), got %v", b)
	}
}

func TestSnapshotStash_NotFound(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	stash := NewSnapshotStash(client, time.Hour)
	ctx := context.Background()

	if _, err := stash.Load(ctx, "missing"); !errors.Is(err, domain.ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}
	if err := stash.Delete(ctx, "missing"); !errors.Is(err, domain.ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound on delete, got %v", err)
	}
}

func TestSnapshotStash_DeleteAndExpiry(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	stash := NewSnapshotStash(client, time.Minute)
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		if err := stash.Save(ctx, testStashedSnapshot(id)); err != nil {
			t.Fatalf("save %s failed: %v", id, err)
		}
	}

	if err := stash.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := stash.Load(ctx, "a"); !errors.Is(err, domain.ErrSnapshotNotFound) {
		t.Fatalf("expected deleted snapshot to be gone, got %v", err)
	}

	mr.FastForward(2 * time.Minute)
	if _, err := stash.Load(ctx, "b"); !errors.Is(err, domain.ErrSnapshotNotFound) {
		t.Fatalf("expected expired snapshot to be gone, got %v", err)
	}
}
