package usecase_test

import (
	"context"
	"errors"

	"github.com/iho/chainsnap/internal/domain"
	"github.com/iho/chainsnap/internal/usecase"
)

var errNode = errors.New("node unavailable")

// balanceKey builds a storage key with the account id at offset 48 and the
// currency tag as the final byte.
func balanceKey(id domain.AccountID, c domain.Currency) []byte {
	key := make([]byte, domain.AccountIDOffset, domain.AccountIDOffset+32+17)
	key = append(key, id[:]...)
	key = append(key, make([]byte, 16)...)
	return append(key, byte(c))
}

func accountID(b byte) domain.AccountID {
	var id domain.AccountID
	for i := range id {
		id[i] = b
	}
	return id
}

type sliceIterator struct {
	entries []usecase.BalanceEntry
	pos     int
	err     error
}

func (it *sliceIterator) Next(context.Context) (usecase.BalanceEntry, bool, error) {
	if it.err != nil && it.pos == len(it.entries) {
		return usecase.BalanceEntry{}, false, it.err
	}
	if it.pos >= len(it.entries) {
		return usecase.BalanceEntry{}, false, nil
	}
	entry := it.entries[it.pos]
	it.pos++
	return entry, true, nil
}

type stubReader struct {
	entries    []usecase.BalanceEntry
	iterErr    error
	total      uint64
	totalErr   error
	vesting    map[domain.AccountID]domain.VestingInfo
	vestingErr error
	vested     map[domain.AccountID]uint64
	vestedErr  error
	aggregates map[domain.Currency]domain.BalancesAggregate
	aggErr     error

	vestingCalls []domain.AccountID
}

func (s *stubReader) AccountBalances(context.Context) (usecase.BalanceIterator, error) {
	return &sliceIterator{entries: s.entries, err: s.iterErr}, nil
}

func (s *stubReader) TotalIssuance(context.Context) (uint64, error) {
	return s.total, s.totalErr
}

func (s *stubReader) Vesting(_ context.Context, id domain.AccountID) (*domain.VestingInfo, error) {
	s.vestingCalls = append(s.vestingCalls, id)
	if s.vestingErr != nil {
		return nil, s.vestingErr
	}
	if v, ok := s.vesting[id]; ok {
		return &v, nil
	}
	return nil, nil
}

func (s *stubReader) Vested(_ context.Context, id domain.AccountID) (*uint64, error) {
	if s.vestedErr != nil {
		return nil, s.vestedErr
	}
	if v, ok := s.vested[id]; ok {
		return &v, nil
	}
	return nil, nil
}

func (s *stubReader) BalancesAggregate(_ context.Context, c domain.Currency) (domain.BalancesAggregate, error) {
	if s.aggErr != nil {
		return domain.BalancesAggregate{}, s.aggErr
	}
	return s.aggregates[c], nil
}

// usdSnapshot is a normalized snapshot holding a single account with a USD balance.
func usdSnapshot(id domain.AccountID, usd uint64) *domain.Snapshot {
	snap := domain.NewSnapshot()
	snap.SetBalance(id, domain.CurrencyUsd, domain.Positive(usd))
	snap.Normalize()
	snap.Aggregates[domain.CurrencyUsd] = domain.BalancesAggregate{TotalIssuance: 100, TotalDebt: 0}
	snap.Total = 100
	return snap
}
