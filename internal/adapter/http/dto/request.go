package dto

import "errors"

// ErrMissingSnapshotID is returned when a comparison request omits a side.
var ErrMissingSnapshotID = errors.New("left_id and right_id are required")

// CompareRequest represents a request to compare two stashed snapshots.
type CompareRequest struct {
	LeftID  string `json:"left_id"`
	RightID string `json:"right_id"`
}

// Validate checks that both sides are named.
func (r *CompareRequest) Validate() error {
	if r.LeftID == "" || r.RightID == "" {
		return ErrMissingSnapshotID
	}
	return nil
}
