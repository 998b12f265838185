package usecase

import (
	"sync"

	"github.com/iho/chainsnap/internal/domain"
)

// Baseline holds the "before" snapshot of a test between its acquisition and
// comparison phases. The zero value is empty and ready to use.
type Baseline struct {
	mu       sync.Mutex
	snapshot *domain.Snapshot
}

// Store replaces the baseline with a copy of snap.
func (b *Baseline) Store(snap *domain.Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snapshot = snap.Clone()
}

// Snapshot returns a copy of the stored baseline. ok is false if nothing has
// been stored yet.
func (b *Baseline) Snapshot() (snap *domain.Snapshot, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.snapshot == nil {
		return nil, false
	}
	return b.snapshot.Clone(), true
}

// Reset clears the baseline.
func (b *Baseline) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snapshot = nil
}
