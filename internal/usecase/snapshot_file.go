package usecase

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/iho/chainsnap/internal/domain"
)

// WriteSnapshot writes a stashed snapshot to path as indented JSON.
func WriteSnapshot(path string, snapshot *domain.StashedSnapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	return nil
}

// ReadSnapshot reads a stashed snapshot written by WriteSnapshot. The
// snapshot is normalized on load so hand-edited fixtures compare cleanly.
func ReadSnapshot(path string) (*domain.StashedSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snapshot domain.StashedSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot file %s: %w", path, err)
	}
	if snapshot.Snapshot == nil {
		return nil, fmt.Errorf("snapshot file %s: %w", path, domain.ErrSnapshotNotFound)
	}
	snapshot.Snapshot.Normalize()

	return &snapshot, nil
}
