package redis

import (
	"context"
	"testing"
	"time"
)

func TestIdempotencyStore_ClaimLifecycle(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	claimed, resp, err := store.Claim(ctx, "key", time.Minute)
	if err != nil || !claimed || resp != nil {
		t.Fatalf("expected first claim to succeed, got claimed=%v resp=%q err=%v", claimed, resp, err)
	}

	claimed, resp, err = store.Claim(ctx, "key", time.Minute)
	if err != nil || claimed || resp != nil {
		t.Fatalf("expected in-flight key, got claimed=%v resp=%q err=%v", claimed, resp, err)
	}

	if err := store.Complete(ctx, "key", []byte(`{"id":"snap-1"}`), time.Minute); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	claimed, resp, err = store.Claim(ctx, "key", time.Minute)
	if err != nil || claimed || string(resp) != `{"id":"snap-1"}` {
		t.Fatalf("expected cached response, got claimed=%v resp=%q err=%v", claimed, resp, err)
	}
}

func TestIdempotencyStore_Release(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if _, _, err := store.Claim(ctx, "key", time.Minute); err != nil {
		t.Fatalf("Claim failed: %v", err)
	}
	if err := store.Release(ctx, "key"); err != nil {
		t.Fatalf("Release failed: %v", err)
	}

	claimed, _, err := store.Claim(ctx, "key", time.Minute)
	if err != nil || !claimed {
		t.Fatalf("expected key to be claimable after release, got claimed=%v err=%v", claimed, err)
	}
}

func TestIdempotencyStore_TTL(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	store := NewIdempotencyStore(client)
	ctx := context.Background()

	if _, _, err := store.Claim(ctx, "key", time.Minute); err != nil {
		t.Fatalf("Claim failed: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	claimed, _, err := store.Claim(ctx, "key", time.Minute)
	if err != nil || !claimed {
		t.Fatalf("expected expired claim to be reclaimable, got claimed=%v err=%v", claimed, err)
	}
}
