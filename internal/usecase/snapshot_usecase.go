package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/chainsnap/internal/domain"
	"github.com/iho/chainsnap/internal/keystore"
)

// SnapshotUseCase captures snapshots from a node and keeps them in a stash.
type SnapshotUseCase struct {
	node         ChainNode
	stash        SnapshotStash
	idGen        IDGenerator
	metrics      MetricsRecorder
	testAccounts []domain.AccountID
	logger       zerolog.Logger
}

// NewSnapshotUseCase creates a new SnapshotUseCase. A nil metrics recorder
// disables instrumentation.
func NewSnapshotUseCase(
	node ChainNode,
	stash SnapshotStash,
	idGen IDGenerator,
	metrics MetricsRecorder,
	testAccounts []domain.AccountID,
	logger zerolog.Logger,
) *SnapshotUseCase {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &SnapshotUseCase{
		node:         node,
		stash:        stash,
		idGen:        idGen,
		metrics:      metrics,
		testAccounts: testAccounts,
		logger:       logger,
	}
}

// Capture reads a snapshot at the node's current best block. The result is
// not stashed; see CaptureAndStash.
func (uc *SnapshotUseCase) Capture(ctx context.Context) (*domain.StashedSnapshot, error) {
	start := time.Now()
	stashed, err := uc.capture(ctx)
	uc.metrics.ObserveCapture(time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return stashed, nil
}

func (uc *SnapshotUseCase) capture(ctx context.Context) (*domain.StashedSnapshot, error) {
	reader, block, err := uc.node.PinnedReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to pin block: %w", domain.ErrNodeUnavailable, err)
	}

	logger := uc.logger.With().Str("block", block).Logger()
	snap, err := BuildSnapshot(ctx, reader, uc.testAccounts, logger)
	if err != nil {
		return nil, err
	}

	stashed := &domain.StashedSnapshot{
		ID:         uc.idGen.Generate(),
		Source:     uc.node.Endpoint(),
		Block:      block,
		CapturedAt: time.Now().UTC(),
		Snapshot:   snap,
	}

	logger.Info().
		Str("snapshot_id", stashed.ID).
		Int("accounts", len(snap.Balances)).
		Msg("snapshot captured")

	return stashed, nil
}

// CaptureAndStash captures a snapshot and saves it to the stash.
func (uc *SnapshotUseCase) CaptureAndStash(ctx context.Context) (*domain.StashedSnapshot, error) {
	stashed, err := uc.Capture(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.stash.Save(ctx, stashed); err != nil {
		return nil, fmt.Errorf("failed to stash snapshot: %w", err)
	}
	return stashed, nil
}

// Get loads a stashed snapshot.
func (uc *SnapshotUseCase) Get(ctx context.Context, id string) (*domain.StashedSnapshot, error) {
	return uc.stash.Load(ctx, id)
}

// Delete removes a stashed snapshot.
func (uc *SnapshotUseCase) Delete(ctx context.Context, id string) error {
	return uc.stash.Delete(ctx, id)
}

// IdentityUseCase builds key stores from the built-in and custom identities.
type IdentityUseCase struct {
	custom []keystore.Identity
}

// NewIdentityUseCase creates a new IdentityUseCase.
func NewIdentityUseCase(custom []keystore.Identity) *IdentityUseCase {
	return &IdentityUseCase{custom: custom}
}

// KeyStore returns a fresh store with every account of snapshots registered.
func (uc *IdentityUseCase) KeyStore(snapshots ...*domain.Snapshot) *keystore.KeyStore {
	s := keystore.New()
	keystore.RegisterCommon(s)
	keystore.RegisterCustom(s, uc.custom)
	keystore.RegisterExternals(s, snapshots...)
	return s
}

// Identities returns the built-in and custom registrations.
func (uc *IdentityUseCase) Identities() []keystore.Identity {
	return uc.KeyStore().Dump()
}

// Humanize renders a snapshot with names resolved against the configured identities.
func (uc *IdentityUseCase) Humanize(snap *domain.Snapshot) HumanSnapshot {
	return Humanize(snap, uc.KeyStore(snap))
}
