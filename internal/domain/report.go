package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StashedSnapshot is a captured snapshot together with where and when it was taken.
type StashedSnapshot struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Block      string    `json:"block,omitempty"`
	CapturedAt time.Time `json:"captured_at"`
	Snapshot   *Snapshot `json:"snapshot"`
}

// Section names the part of a snapshot a discrepancy was found in.
type Section string

const (
	SectionBalances   Section = "balances"
	SectionAggregates Section = "aggregates"
	SectionVesting    Section = "vesting"
	SectionVested     Section = "vested"
	SectionTotal      Section = "total"
)

// Rank orders sections the way they appear in a rendered snapshot.
func (s Section) Rank() int {
	switch s {
	case SectionBalances:
		return 0
	case SectionAggregates:
		return 1
	case SectionVesting:
		return 2
	case SectionVested:
		return 3
	default:
		return 4
	}
}

// Discrepancy is a single field that differs between two snapshots. Left or
// Right is nil when the entry exists on one side only.
type Discrepancy struct {
	Section    Section          `json:"section"`
	Account    string           `json:"account,omitempty"`
	AccountID  string           `json:"account_id,omitempty"`
	Currency   string           `json:"currency,omitempty"`
	Field      string           `json:"field,omitempty"`
	Left       *decimal.Decimal `json:"left,omitempty"`
	Right      *decimal.Decimal `json:"right,omitempty"`
	Difference decimal.Decimal  `json:"difference"`
}

// ComparisonReport is the persisted outcome of comparing two stashed snapshots.
type ComparisonReport struct {
	ID            string        `json:"id"`
	LeftID        string        `json:"left_id"`
	RightID       string        `json:"right_id"`
	Equal         bool          `json:"equal"`
	Report        string        `json:"report,omitempty"`
	Discrepancies []Discrepancy `json:"discrepancies"`
	CreatedAt     time.Time     `json:"created_at"`
}
