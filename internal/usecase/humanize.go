package usecase

import (
	"cmp"
	"encoding/json"
	"slices"

	"github.com/iho/chainsnap/internal/domain"
	"github.com/iho/chainsnap/internal/keystore"
)

// CurrencyBalance renders as a ["Usd", {"Positive": 100}] pair.
type CurrencyBalance struct {
	Currency domain.Currency
	Balance  domain.SignedBalance
}

func (p CurrencyBalance) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Currency, p.Balance})
}

// CurrencyAggregate renders as a ["Usd", {"total_issuance": .., "total_debt": ..}] pair.
type CurrencyAggregate struct {
	Currency  domain.Currency
	Aggregate domain.BalancesAggregate
}

func (p CurrencyAggregate) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Currency, p.Aggregate})
}

// BalanceData is the per-account balance list of a humanized snapshot.
type BalanceData struct {
	Account  keystore.AccountName `json:"account"`
	Balances []CurrencyBalance    `json:"balances"`
}

// AccountVesting pairs an account with its vesting schedule.
type AccountVesting struct {
	Account keystore.AccountName
	Vesting domain.VestingInfo
}

func (p AccountVesting) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Account, p.Vesting})
}

// AccountVested pairs an account with its vested-to-date amount.
type AccountVested struct {
	Account keystore.AccountName
	Vested  uint64
}

func (p AccountVested) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Account, p.Vested})
}

// HumanSnapshot is a deterministically ordered, name-resolved rendering of a
// snapshot used for diffs and diagnostic output.
type HumanSnapshot struct {
	Balances          []BalanceData       `json:"balances"`
	BalanceAggregates []CurrencyAggregate `json:"balance_aggregates"`
	Vesting           []AccountVesting    `json:"vesting"`
	Vested            []AccountVested     `json:"vested"`
	Total             uint64              `json:"total"`
}

func compareCurrencies(a, b domain.Currency) int {
	return cmp.Compare(a.Value(), b.Value())
}

// Humanize resolves account names through store and orders everything:
// accounts by resolved name, currencies by numeric tag.
func Humanize(snap *domain.Snapshot, store *keystore.KeyStore) HumanSnapshot {
	return HumanSnapshot{
		Balances:          humanizeBalances(snap.Balances, store),
		BalanceAggregates: humanizeAggregates(snap.Aggregates),
		Vesting:           humanizeVesting(snap.Vesting, store),
		Vested:            humanizeVested(snap.Vested, store),
		Total:             snap.Total,
	}
}

func humanizeBalances(balances map[domain.AccountID]map[domain.Currency]domain.SignedBalance, store *keystore.KeyStore) []BalanceData {
	items := make([]BalanceData, 0, len(balances))
	for id, acc := range balances {
		pairs := make([]CurrencyBalance, 0, len(acc))
		for c, b := range acc {
			pairs = append(pairs, CurrencyBalance{Currency: c, Balance: b})
		}
		slices.SortFunc(pairs, func(a, b CurrencyBalance) int {
			return compareCurrencies(a.Currency, b.Currency)
		})

		items = append(items, BalanceData{
			Account:  store.Lookup(id),
			Balances: pairs,
		})
	}

	slices.SortFunc(items, func(a, b BalanceData) int {
		return a.Account.Compare(b.Account)
	})
	return items
}

func humanizeAggregates(aggregates map[domain.Currency]domain.BalancesAggregate) []CurrencyAggregate {
	items := make([]CurrencyAggregate, 0, len(aggregates))
	for c, a := range aggregates {
		items = append(items, CurrencyAggregate{Currency: c, Aggregate: a})
	}
	slices.SortFunc(items, func(a, b CurrencyAggregate) int {
		return compareCurrencies(a.Currency, b.Currency)
	})
	return items
}

func humanizeVesting(vesting map[domain.AccountID]domain.VestingInfo, store *keystore.KeyStore) []AccountVesting {
	items := make([]AccountVesting, 0, len(vesting))
	for id, v := range vesting {
		items = append(items, AccountVesting{Account: store.Lookup(id), Vesting: v})
	}
	slices.SortFunc(items, func(a, b AccountVesting) int {
		return a.Account.Compare(b.Account)
	})
	return items
}

func humanizeVested(vested map[domain.AccountID]uint64, store *keystore.KeyStore) []AccountVested {
	items := make([]AccountVested, 0, len(vested))
	for id, v := range vested {
		items = append(items, AccountVested{Account: store.Lookup(id), Vested: v})
	}
	slices.SortFunc(items, func(a, b AccountVested) int {
		return a.Account.Compare(b.Account)
	})
	return items
}

// PrettyJSON renders v as two-space indented JSON.
func PrettyJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
