package domain

import "errors"

var (
	// Identifier errors
	ErrInvalidAccountID = errors.New("invalid account id")
	ErrUnknownCurrency  = errors.New("unknown currency")

	// Storage errors
	ErrMalformedStorageKey = errors.New("malformed storage key")
	ErrInvalidBalance      = errors.New("invalid signed balance")

	// Snapshot errors
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrReportNotFound   = errors.New("comparison report not found")

	// Node errors
	ErrNodeUnavailable = errors.New("node unavailable")
)
