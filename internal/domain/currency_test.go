package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCurrencyFromByte(t *testing.T) {
	tests := []struct {
		in   byte
		want Currency
	}{
		{1, CurrencyUsd},
		{2, CurrencyEq},
		{6, CurrencyDot},
		{0, CurrencyUnknown},
		{200, CurrencyUnknown},
	}

	for _, tt := range tests {
		if got := CurrencyFromByte(tt.in); got != tt.want {
			t.Errorf("CurrencyFromByte(%d) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestCurrenciesWithUSD(t *testing.T) {
	all := CurrenciesWithUSD()
	if all[0] != CurrencyUsd {
		t.Fatalf("expected usd first, got %s", all[0])
	}
	if len(all) != len(Currencies())+1 {
		t.Fatalf("expected %d currencies, got %d", len(Currencies())+1, len(all))
	}
	for _, c := range all {
		if c == CurrencyUnknown {
			t.Fatal("unknown currency must not be iterated")
		}
	}
}

func TestCurrency_TextRoundTrip(t *testing.T) {
	data, err := json.Marshal(map[Currency]int{CurrencyBtc: 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"Btc":1}` {
		t.Fatalf("unexpected encoding %s", data)
	}

	var decoded map[Currency]int
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded[CurrencyBtc] != 1 {
		t.Fatalf("unexpected decoded map %v", decoded)
	}

	if _, err := ParseCurrency("Doge"); !errors.Is(err, ErrUnknownCurrency) {
		t.Fatalf("expected ErrUnknownCurrency, got %v", err)
	}
}
