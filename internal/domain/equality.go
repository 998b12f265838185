package domain

import "maps"

// Epsilon bounds the numeric drift tolerated between two snapshots, in raw
// chain units. It absorbs block-time dependent accrual between reads.
const Epsilon uint64 = 10

// AmountsEqualEps reports whether |a-b| < Epsilon.
func AmountsEqualEps(a, b uint64) bool {
	if a > b {
		return a-b < Epsilon
	}
	return b-a < Epsilon
}

// EqualEps reports whether both balances carry the same variant and their
// magnitudes are within Epsilon.
func (b SignedBalance) EqualEps(other SignedBalance) bool {
	return b.Sign == other.Sign && AmountsEqualEps(b.Amount, other.Amount)
}

// EqualEps reports whether debt and issuance are both within Epsilon.
func (a BalancesAggregate) EqualEps(other BalancesAggregate) bool {
	return AmountsEqualEps(a.TotalDebt, other.TotalDebt) &&
		AmountsEqualEps(a.TotalIssuance, other.TotalIssuance)
}

// MapsEqualEps reports whether a and b have identical key sets and every
// paired value satisfies eq. Keys are checked by lookup, not by size alone.
func MapsEqualEps[K comparable, V any](a, b map[K]V, eq func(V, V) bool) bool {
	return maps.EqualFunc(a, b, eq)
}

func accountBalancesEqualEps(a, b map[Currency]SignedBalance) bool {
	return MapsEqualEps(a, b, SignedBalance.EqualEps)
}

// Equal reports whether two snapshots describe the same chain state:
// balances and aggregates within Epsilon, vesting, vested and total exactly.
func (s *Snapshot) Equal(other *Snapshot) bool {
	return MapsEqualEps(s.Balances, other.Balances, accountBalancesEqualEps) &&
		MapsEqualEps(s.Aggregates, other.Aggregates, BalancesAggregate.EqualEps) &&
		maps.Equal(s.Vesting, other.Vesting) &&
		maps.Equal(s.Vested, other.Vested) &&
		s.Total == other.Total
}
