package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iho/chainsnap/internal/domain"
)

// BuildSnapshot reads a complete, normalized snapshot from reader. Queries
// run sequentially and the first failure aborts the build; no partial
// snapshot is ever returned.
//
// testAccounts are always present in the result, even with no on-chain
// balance, and are the only accounts whose vesting state is read.
func BuildSnapshot(ctx context.Context, reader StorageReader, testAccounts []domain.AccountID, logger zerolog.Logger) (*domain.Snapshot, error) {
	snap := domain.NewSnapshot()

	iter, err := reader.AccountBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open account balances: %w", err)
	}

	entries := 0
	for {
		entry, ok, err := iter.Next(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read account balance %d: %w", entries, err)
		}
		if !ok {
			break
		}

		id, currency, err := domain.DecodeAccountBalanceKey(entry.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to decode account balance %d: %w", entries, err)
		}

		_, seen := snap.Balances[id][currency]
		if currency == domain.CurrencyUnknown {
			logger.Warn().
				Str("account", id.String()).
				Uint8("tag", entry.Key[len(entry.Key)-1]).
				Bool("dropped", seen).
				Msg("balance with unknown currency tag")
		}

		// The first value seen for an (account, currency) pair is kept.
		if !seen {
			snap.SetBalance(id, currency, entry.Balance)
		}
		entries++
	}
	logger.Debug().Int("entries", entries).Int("accounts", len(snap.Balances)).Msg("account balances read")

	for _, id := range testAccounts {
		snap.EnsureAccount(id)

		vesting, err := reader.Vesting(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to read vesting for %s: %w", id, err)
		}
		if vesting != nil {
			snap.Vesting[id] = *vesting
		}

		vested, err := reader.Vested(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to read vested for %s: %w", id, err)
		}
		if vested != nil {
			snap.Vested[id] = *vested
		}
	}
	logger.Debug().Int("vesting", len(snap.Vesting)).Int("vested", len(snap.Vested)).Msg("test accounts read")

	snap.Normalize()

	for _, currency := range domain.CurrenciesWithUSD() {
		aggregate, err := reader.BalancesAggregate(ctx, currency)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s aggregate: %w", currency, err)
		}
		snap.Aggregates[currency] = aggregate
	}

	total, err := reader.TotalIssuance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read total issuance: %w", err)
	}
	snap.Total = total

	logger.Debug().Uint64("total", total).Msg("snapshot built")

	return snap, nil
}
