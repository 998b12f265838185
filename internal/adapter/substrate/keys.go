package substrate

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"
)

// Twox128 is the 128-bit xxHash variant used for storage prefixes: xxh64
// with seeds 0 and 1, each appended little endian.
func Twox128(data []byte) []byte {
	out := make([]byte, 0, 16)
	for seed := uint64(0); seed < 2; seed++ {
		h := xxhash.NewWithSeed(seed)
		_, _ = h.Write(data)
		out = binary.LittleEndian.AppendUint64(out, h.Sum64())
	}
	return out
}

// Blake2_128 is a 16-byte blake2b digest.
func Blake2_128(data []byte) []byte {
	h, err := blake2b.New(16, nil)
	if err != nil {
		// Only fails for sizes outside 1..64 or oversized keys.
		panic(err)
	}
	_, _ = h.Write(data)
	return h.Sum(nil)
}

// Blake2_128Concat is Blake2_128(data) followed by data itself, so the key
// stays recoverable from the hashed form.
func Blake2_128Concat(data []byte) []byte {
	return append(Blake2_128(data), data...)
}

// StoragePrefix returns twox128(module) ++ twox128(item).
func StoragePrefix(module, item string) []byte {
	return append(Twox128([]byte(module)), Twox128([]byte(item))...)
}

// MapKey returns the key of a single map entry under module/item.
func MapKey(module, item string, hashedKeys ...[]byte) []byte {
	key := StoragePrefix(module, item)
	for _, k := range hashedKeys {
		key = append(key, k...)
	}
	return key
}
