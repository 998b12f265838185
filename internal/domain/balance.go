package domain

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Sign is the variant tag of a SignedBalance.
type Sign uint8

const (
	SignPositive Sign = iota
	SignNegative
)

func (s Sign) String() string {
	if s == SignNegative {
		return "Negative"
	}
	return "Positive"
}

// SignedBalance is a tagged {Positive(amount), Negative(amount)} quantity.
// Positive(5) and Negative(5) are distinct values and never compare equal.
type SignedBalance struct {
	Sign   Sign
	Amount uint64
}

// Positive returns a Positive(amount) balance.
func Positive(amount uint64) SignedBalance {
	return SignedBalance{Sign: SignPositive, Amount: amount}
}

// Negative returns a Negative(amount) balance.
func Negative(amount uint64) SignedBalance {
	return SignedBalance{Sign: SignNegative, Amount: amount}
}

// IsNegative reports whether the balance carries the Negative tag.
func (b SignedBalance) IsNegative() bool {
	return b.Sign == SignNegative
}

// Decimal returns the balance as a signed decimal in raw chain units.
func (b SignedBalance) Decimal() decimal.Decimal {
	d := AmountDecimal(b.Amount)
	if b.IsNegative() {
		return d.Neg()
	}
	return d
}

func (b SignedBalance) String() string {
	return fmt.Sprintf("%s(%d)", b.Sign, b.Amount)
}

// MarshalJSON encodes the balance as {"Positive": n} or {"Negative": n}.
func (b SignedBalance) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]uint64{b.Sign.String(): b.Amount})
}

// UnmarshalJSON decodes the {"Positive": n} / {"Negative": n} form.
func (b *SignedBalance) UnmarshalJSON(data []byte) error {
	var raw map[string]uint64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("%w: expected exactly one variant, got %d", ErrInvalidBalance, len(raw))
	}
	for variant, amount := range raw {
		switch variant {
		case "Positive":
			*b = Positive(amount)
		case "Negative":
			*b = Negative(amount)
		default:
			return fmt.Errorf("%w: unknown variant %q", ErrInvalidBalance, variant)
		}
	}
	return nil
}

// BalancesAggregate holds system-wide totals for one currency.
type BalancesAggregate struct {
	TotalIssuance uint64 `json:"total_issuance"`
	TotalDebt     uint64 `json:"total_debt"`
}

// VestingInfo is a per-account vesting schedule.
type VestingInfo struct {
	Locked        uint64 `json:"locked"`
	PerBlock      uint64 `json:"per_block"`
	StartingBlock uint64 `json:"starting_block"`
}

// AmountDecimal converts an unsigned chain amount to a decimal without loss.
func AmountDecimal(amount uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), 0)
}
