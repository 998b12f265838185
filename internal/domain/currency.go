package domain

import "fmt"

// Currency identifies a fungible asset class by its on-chain tag byte.
type Currency uint8

const (
	CurrencyUnknown Currency = iota
	CurrencyUsd
	CurrencyEq
	CurrencyEth
	CurrencyBtc
	CurrencyEos
	CurrencyDot
)

var currencyNames = map[Currency]string{
	CurrencyUnknown: "Unknown",
	CurrencyUsd:     "Usd",
	CurrencyEq:      "Eq",
	CurrencyEth:     "Eth",
	CurrencyBtc:     "Btc",
	CurrencyEos:     "Eos",
	CurrencyDot:     "Dot",
}

// CurrencyFromByte maps a raw tag byte to a Currency. Bytes outside the
// known table decode to CurrencyUnknown.
func CurrencyFromByte(b byte) Currency {
	c := Currency(b)
	if _, ok := currencyNames[c]; !ok {
		return CurrencyUnknown
	}
	return c
}

// Currencies returns every real asset currency in ascending tag order.
func Currencies() []Currency {
	return []Currency{CurrencyEq, CurrencyEth, CurrencyBtc, CurrencyEos, CurrencyDot}
}

// CurrenciesWithUSD returns Currencies plus the synthetic USD aggregate unit.
func CurrenciesWithUSD() []Currency {
	return append([]Currency{CurrencyUsd}, Currencies()...)
}

// Value returns the underlying numeric tag.
func (c Currency) Value() uint8 {
	return uint8(c)
}

func (c Currency) String() string {
	if name, ok := currencyNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Currency(%d)", uint8(c))
}

// ParseCurrency parses a currency by name.
func ParseCurrency(s string) (Currency, error) {
	for c, name := range currencyNames {
		if name == s {
			return c, nil
		}
	}
	return CurrencyUnknown, fmt.Errorf("%w: %q", ErrUnknownCurrency, s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Currency) UnmarshalText(text []byte) error {
	parsed, err := ParseCurrency(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
