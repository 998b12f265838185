package domain

import "fmt"

const (
	// StoragePrefixLength is twox128(module) ++ twox128(item).
	StoragePrefixLength = 32
	// AccountHashLength is the blake2_128 hash preceding the raw account id
	// in a Blake2_128Concat map key.
	AccountHashLength = 16
	// AccountIDOffset is where the raw account id starts in a balance map key.
	AccountIDOffset = StoragePrefixLength + AccountHashLength
)

// DecodeAccountBalanceKey extracts the account id and currency from a raw
// account-balance storage key. The id occupies the fixed 32-byte window at
// AccountIDOffset; the currency tag is the final key byte.
func DecodeAccountBalanceKey(key []byte) (AccountID, Currency, error) {
	end := AccountIDOffset + AccountIDLength
	if len(key) <= end {
		return AccountID{}, CurrencyUnknown, fmt.Errorf("%w: length %d, need more than %d", ErrMalformedStorageKey, len(key), end)
	}
	id, err := AccountIDFromBytes(key[AccountIDOffset:end])
	if err != nil {
		return AccountID{}, CurrencyUnknown, err
	}
	return id, CurrencyFromByte(key[len(key)-1]), nil
}
