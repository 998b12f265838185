package domain

import (
	"bytes"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// AccountIDLength is the size of an on-chain account identifier in bytes.
const AccountIDLength = 32

// AccountID is an opaque 32-byte on-chain account identifier.
type AccountID [AccountIDLength]byte

// AccountIDFromBytes copies b into an AccountID.
func AccountIDFromBytes(b []byte) (AccountID, error) {
	var id AccountID
	if len(b) != AccountIDLength {
		return id, fmt.Errorf("%w: got %d bytes", ErrInvalidAccountID, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// ParseAccountID parses a 0x-prefixed hex account identifier.
func ParseAccountID(s string) (AccountID, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return AccountID{}, fmt.Errorf("%w: %v", ErrInvalidAccountID, err)
	}
	return AccountIDFromBytes(b)
}

// MustParseAccountID is ParseAccountID for package-level constants; it panics on bad input.
func MustParseAccountID(s string) AccountID {
	id, err := ParseAccountID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the 0x-prefixed lowercase hex form.
func (id AccountID) String() string {
	return hexutil.Encode(id[:])
}

// Short returns an abbreviated hex form for log lines.
func (id AccountID) Short() string {
	s := id.String()
	return s[:10] + ".." + s[len(s)-4:]
}

// Compare orders account identifiers by byte value.
func (id AccountID) Compare(other AccountID) int {
	return bytes.Compare(id[:], other[:])
}

// MarshalText implements encoding.TextMarshaler so AccountID works as a JSON map key.
func (id AccountID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *AccountID) UnmarshalText(text []byte) error {
	parsed, err := ParseAccountID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
