package substrate

import (
	"context"
	"fmt"

	"github.com/iho/chainsnap/internal/domain"
	"github.com/iho/chainsnap/internal/usecase"
)

// Reader serves storage queries against a single pinned block.
type Reader struct {
	client *Client
	at     string
}

// Block returns the hash the reader is pinned to.
func (r *Reader) Block() string {
	return r.at
}

func (r *Reader) layout() Layout {
	return r.client.cfg.Layout
}

// AccountBalances iterates the account-balance double map.
func (r *Reader) AccountBalances(_ context.Context) (usecase.BalanceIterator, error) {
	l := r.layout()
	return &balanceIterator{
		reader: r,
		prefix: StoragePrefix(l.BalancesModule, l.AccountItem),
	}, nil
}

// TotalIssuance reads the scalar total. An absent value reads as zero.
func (r *Reader) TotalIssuance(ctx context.Context) (uint64, error) {
	l := r.layout()
	value, ok, err := r.client.storage(ctx, StoragePrefix(l.BalancesModule, l.TotalItem), r.at)
	if err != nil || !ok {
		return 0, err
	}
	total, err := DecodeU64(value)
	if err != nil {
		return 0, fmt.Errorf("total issuance: %w", err)
	}
	return total, nil
}

// Vesting reads the vesting schedule of id, nil if none.
func (r *Reader) Vesting(ctx context.Context, id domain.AccountID) (*domain.VestingInfo, error) {
	l := r.layout()
	key := MapKey(l.VestingModule, l.VestingItem, Blake2_128Concat(id[:]))
	value, ok, err := r.client.storage(ctx, key, r.at)
	if err != nil || !ok {
		return nil, err
	}
	info, err := DecodeVestingInfo(value)
	if err != nil {
		return nil, fmt.Errorf("vesting of %s: %w", id, err)
	}
	return &info, nil
}

// Vested reads the vested-to-date amount of id, nil if none.
func (r *Reader) Vested(ctx context.Context, id domain.AccountID) (*uint64, error) {
	l := r.layout()
	key := MapKey(l.VestingModule, l.VestedItem, Blake2_128Concat(id[:]))
	value, ok, err := r.client.storage(ctx, key, r.at)
	if err != nil || !ok {
		return nil, err
	}
	vested, err := DecodeU64(value)
	if err != nil {
		return nil, fmt.Errorf("vested of %s: %w", id, err)
	}
	return &vested, nil
}

// BalancesAggregate reads the aggregate of currency. An absent value reads as zero.
func (r *Reader) BalancesAggregate(ctx context.Context, currency domain.Currency) (domain.BalancesAggregate, error) {
	l := r.layout()
	key := MapKey(l.BalancesModule, l.AggregatesItem, Blake2_128Concat([]byte{currency.Value()}))
	value, ok, err := r.client.storage(ctx, key, r.at)
	if err != nil || !ok {
		return domain.BalancesAggregate{}, err
	}
	agg, err := DecodeBalancesAggregate(value)
	if err != nil {
		return domain.BalancesAggregate{}, fmt.Errorf("%s aggregate: %w", currency, err)
	}
	return agg, nil
}

type balanceIterator struct {
	reader    *Reader
	prefix    []byte
	page      [][]byte
	lastKey   []byte
	exhausted bool
}

func (it *balanceIterator) Next(ctx context.Context) (usecase.BalanceEntry, bool, error) {
	for {
		if len(it.page) == 0 {
			if it.exhausted {
				return usecase.BalanceEntry{}, false, nil
			}
			if err := it.fetchPage(ctx); err != nil {
				return usecase.BalanceEntry{}, false, err
			}
			continue
		}

		key := it.page[0]
		it.page = it.page[1:]

		value, ok, err := it.reader.client.storage(ctx, key, it.reader.at)
		if err != nil {
			return usecase.BalanceEntry{}, false, err
		}
		if !ok {
			continue
		}

		balance, err := DecodeSignedBalance(value)
		if err != nil {
			return usecase.BalanceEntry{}, false, fmt.Errorf("balance at key %x: %w", key, err)
		}
		return usecase.BalanceEntry{Key: key, Balance: balance}, true, nil
	}
}

func (it *balanceIterator) fetchPage(ctx context.Context) error {
	keys, err := it.reader.client.keysPaged(ctx, it.prefix, it.lastKey, it.reader.at)
	if err != nil {
		return err
	}
	if uint32(len(keys)) < it.reader.client.cfg.PageSize {
		it.exhausted = true
	}
	if len(keys) > 0 {
		it.lastKey = keys[len(keys)-1]
	}
	it.page = keys
	return nil
}
