package domain

import (
	"maps"
	"slices"
)

// Snapshot is a point-in-time capture of balances, aggregates and vesting
// state across all tracked accounts. It is the unit of comparison.
type Snapshot struct {
	Balances   map[AccountID]map[Currency]SignedBalance `json:"balances"`
	Aggregates map[Currency]BalancesAggregate           `json:"aggregates"`
	Vesting    map[AccountID]VestingInfo                `json:"vesting"`
	Vested     map[AccountID]uint64                     `json:"vested"`
	Total      uint64                                   `json:"total"`
}

// NewSnapshot returns an empty snapshot with all maps allocated.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Balances:   make(map[AccountID]map[Currency]SignedBalance),
		Aggregates: make(map[Currency]BalancesAggregate),
		Vesting:    make(map[AccountID]VestingInfo),
		Vested:     make(map[AccountID]uint64),
	}
}

// SetBalance records a balance for an account, creating the account entry on demand.
func (s *Snapshot) SetBalance(id AccountID, c Currency, b SignedBalance) {
	acc, ok := s.Balances[id]
	if !ok {
		acc = make(map[Currency]SignedBalance)
		s.Balances[id] = acc
	}
	acc[c] = b
}

// EnsureAccount adds an empty balance set for id if it has none.
func (s *Snapshot) EnsureAccount(id AccountID) {
	if _, ok := s.Balances[id]; !ok {
		s.Balances[id] = make(map[Currency]SignedBalance)
	}
}

// Normalize inserts an explicit Positive(0) for every currency in
// CurrenciesWithUSD that an account has no entry for. After Normalize every
// account in Balances carries the full currency set.
func (s *Snapshot) Normalize() {
	for _, c := range CurrenciesWithUSD() {
		for _, acc := range s.Balances {
			if _, ok := acc[c]; !ok {
				acc[c] = Positive(0)
			}
		}
	}
}

// IsNormalized reports whether every account carries every currency of CurrenciesWithUSD.
func (s *Snapshot) IsNormalized() bool {
	for _, acc := range s.Balances {
		for _, c := range CurrenciesWithUSD() {
			if _, ok := acc[c]; !ok {
				return false
			}
		}
	}
	return true
}

// AccountIDs returns every identifier referenced by the snapshot, sorted by byte value.
func (s *Snapshot) AccountIDs() []AccountID {
	seen := make(map[AccountID]struct{}, len(s.Balances))
	for id := range s.Balances {
		seen[id] = struct{}{}
	}
	for id := range s.Vesting {
		seen[id] = struct{}{}
	}
	for id := range s.Vested {
		seen[id] = struct{}{}
	}
	return slices.SortedFunc(maps.Keys(seen), AccountID.Compare)
}

// Clone returns a deep copy.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Balances:   make(map[AccountID]map[Currency]SignedBalance, len(s.Balances)),
		Aggregates: maps.Clone(s.Aggregates),
		Vesting:    maps.Clone(s.Vesting),
		Vested:     maps.Clone(s.Vested),
		Total:      s.Total,
	}
	for id, acc := range s.Balances {
		out.Balances[id] = maps.Clone(acc)
	}
	if out.Aggregates == nil {
		out.Aggregates = make(map[Currency]BalancesAggregate)
	}
	if out.Vesting == nil {
		out.Vesting = make(map[AccountID]VestingInfo)
	}
	if out.Vested == nil {
		out.Vested = make(map[AccountID]uint64)
	}
	return out
}
