package usecase_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/chainsnap/internal/domain"
	"github.com/iho/chainsnap/internal/usecase"
)

func TestBuildSnapshot(t *testing.T) {
	t.Parallel()

	a := accountID(0x0a)
	b := accountID(0x0b)
	test := accountID(0x0c)

	reader := &stubReader{
		entries: []usecase.BalanceEntry{
			{Key: balanceKey(a, domain.CurrencyEq), Balance: domain.Positive(50)},
			{Key: balanceKey(a, domain.CurrencyEq), Balance: domain.Positive(999)},
			{Key: balanceKey(b, domain.CurrencyBtc), Balance: domain.Negative(3)},
		},
		total:   1234,
		vesting: map[domain.AccountID]domain.VestingInfo{test: {Locked: 10, PerBlock: 1, StartingBlock: 5}},
		vested:  map[domain.AccountID]uint64{test: 4},
		aggregates: map[domain.Currency]domain.BalancesAggregate{
			domain.CurrencyUsd: {TotalIssuance: 100, TotalDebt: 20},
		},
	}

	snap, err := usecase.BuildSnapshot(context.Background(), reader, []domain.AccountID{test}, zerolog.Nop())
	require.NoError(t, err)

	assert.Len(t, snap.Balances, 3)
	assert.True(t, snap.IsNormalized())
	assert.Equal(t, domain.Positive(50), snap.Balances[a][domain.CurrencyEq], "first value wins")
	assert.Equal(t, domain.Negative(3), snap.Balances[b][domain.CurrencyBtc])
	assert.Equal(t, domain.Positive(0), snap.Balances[test][domain.CurrencyUsd])

	assert.Equal(t, domain.VestingInfo{Locked: 10, PerBlock: 1, StartingBlock: 5}, snap.Vesting[test])
	assert.Equal(t, uint64(4), snap.Vested[test])
	assert.Equal(t, []domain.AccountID{test}, reader.vestingCalls)

	assert.Len(t, snap.Aggregates, len(domain.CurrenciesWithUSD()))
	assert.Equal(t, domain.BalancesAggregate{TotalIssuance: 100, TotalDebt: 20}, snap.Aggregates[domain.CurrencyUsd])
	assert.Equal(t, domain.BalancesAggregate{}, snap.Aggregates[domain.CurrencyDot])
	assert.Equal(t, uint64(1234), snap.Total)
}

func TestBuildSnapshot_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		reader       *stubReader
		testAccounts []domain.AccountID
		wantErr      error
	}{
		{
			name: "short key",
			reader: &stubReader{entries: []usecase.BalanceEntry{
				{Key: make([]byte, 40), Balance: domain.Positive(1)},
			}},
			wantErr: domain.ErrMalformedStorageKey,
		},
		{
			name:    "iterator failure",
			reader:  &stubReader{iterErr: errNode},
			wantErr: errNode,
		},
		{
			name:         "vesting failure",
			reader:       &stubReader{vestingErr: errNode},
			testAccounts: []domain.AccountID{accountID(0x0c)},
			wantErr:      errNode,
		},
		{
			name:         "vested failure",
			reader:       &stubReader{vestedErr: errNode},
			testAccounts: []domain.AccountID{accountID(0x0c)},
			wantErr:      errNode,
		},
		{
			name:    "aggregate failure",
			reader:  &stubReader{aggErr: errNode},
			wantErr: errNode,
		},
		{
			name:    "total failure",
			reader:  &stubReader{totalErr: errNode},
			wantErr: errNode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap, err := usecase.BuildSnapshot(context.Background(), tt.reader, tt.testAccounts, zerolog.Nop())
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, snap)
		})
	}
}

func TestBuildSnapshot_UnknownCurrencyTags(t *testing.T) {
	t.Parallel()

	x := accountID(0x0d)
	reader := &stubReader{entries: []usecase.BalanceEntry{
		{Key: balanceKey(x, domain.Currency(0x40)), Balance: domain.Positive(5)},
		{Key: balanceKey(x, domain.Currency(0x41)), Balance: domain.Positive(6)},
	}}

	var buf bytes.Buffer
	snap, err := usecase.BuildSnapshot(context.Background(), reader, nil, zerolog.New(&buf))
	require.NoError(t, err)
	assert.Equal(t, domain.Positive(5), snap.Balances[x][domain.CurrencyUnknown])

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var warnings []string
	for _, line := range lines {
		if strings.Contains(line, "unknown currency tag") {
			warnings = append(warnings, line)
		}
	}
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], `"tag":64`)
	assert.Contains(t, warnings[0], `"dropped":false`)
	assert.Contains(t, warnings[1], `"tag":65`)
	assert.Contains(t, warnings[1], `"dropped":true`)
}
