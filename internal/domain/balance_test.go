package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestSignedBalance_JSON(t *testing.T) {
	data, err := json.Marshal(Negative(7))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"Negative":7}` {
		t.Fatalf("unexpected encoding %s", data)
	}

	var b SignedBalance
	if err := json.Unmarshal([]byte(`{"Positive":12}`), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b != Positive(12) {
		t.Fatalf("got %s", b)
	}
}

func TestSignedBalance_UnmarshalRejectsBadVariants(t *testing.T) {
	for _, input := range []string{`{}`, `{"Positive":1,"Negative":1}`, `{"Zero":1}`} {
		var b SignedBalance
		err := json.Unmarshal([]byte(input), &b)
		if !errors.Is(err, ErrInvalidBalance) {
			t.Errorf("input %s: expected ErrInvalidBalance, got %v", input, err)
		}
	}
}

func TestSignedBalance_Decimal(t *testing.T) {
	if got := Negative(25).Decimal().String(); got != "-25" {
		t.Errorf("expected -25, got %s", got)
	}
	if got := Positive(18446744073709551615).Decimal().String(); got != "18446744073709551615" {
		t.Errorf("expected max uint64, got %s", got)
	}
}
