package substrate

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/iho/chainsnap/internal/domain"
)

// ErrDecode is returned for storage values that do not match the expected
// SCALE layout.
var ErrDecode = errors.New("scale decode failed")

type decoder struct {
	data []byte
	pos  int
}

func (d *decoder) u8() (uint8, error) {
	if d.pos+1 > len(d.data) {
		return 0, fmt.Errorf("%w: need 1 byte at %d, have %d", ErrDecode, d.pos, len(d.data))
	}
	v := d.data[d.pos]
	d.pos++
	return v, nil
}

func (d *decoder) u64() (uint64, error) {
	if d.pos+8 > len(d.data) {
		return 0, fmt.Errorf("%w: need 8 bytes at %d, have %d", ErrDecode, d.pos, len(d.data))
	}
	v := binary.LittleEndian.Uint64(d.data[d.pos:])
	d.pos += 8
	return v, nil
}

func (d *decoder) done() error {
	if d.pos != len(d.data) {
		return fmt.Errorf("%w: %d trailing bytes", ErrDecode, len(d.data)-d.pos)
	}
	return nil
}

// DecodeSignedBalance decodes the {Positive(u64), Negative(u64)} enum.
func DecodeSignedBalance(data []byte) (domain.SignedBalance, error) {
	d := decoder{data: data}
	variant, err := d.u8()
	if err != nil {
		return domain.SignedBalance{}, err
	}
	amount, err := d.u64()
	if err != nil {
		return domain.SignedBalance{}, err
	}
	if err := d.done(); err != nil {
		return domain.SignedBalance{}, err
	}

	switch variant {
	case 0:
		return domain.Positive(amount), nil
	case 1:
		return domain.Negative(amount), nil
	default:
		return domain.SignedBalance{}, fmt.Errorf("%w: signed balance variant %d", ErrDecode, variant)
	}
}

// DecodeU64 decodes a fixed-width little endian u64.
func DecodeU64(data []byte) (uint64, error) {
	d := decoder{data: data}
	v, err := d.u64()
	if err != nil {
		return 0, err
	}
	return v, d.done()
}

// DecodeBalancesAggregate decodes {total_issuance, total_debt}.
func DecodeBalancesAggregate(data []byte) (domain.BalancesAggregate, error) {
	d := decoder{data: data}
	var agg domain.BalancesAggregate
	var err error
	if agg.TotalIssuance, err = d.u64(); err != nil {
		return domain.BalancesAggregate{}, err
	}
	if agg.TotalDebt, err = d.u64(); err != nil {
		return domain.BalancesAggregate{}, err
	}
	return agg, d.done()
}

// DecodeVestingInfo decodes {locked, per_block, starting_block}.
func DecodeVestingInfo(data []byte) (domain.VestingInfo, error) {
	d := decoder{data: data}
	var v domain.VestingInfo
	var err error
	if v.Locked, err = d.u64(); err != nil {
		return domain.VestingInfo{}, err
	}
	if v.PerBlock, err = d.u64(); err != nil {
		return domain.VestingInfo{}, err
	}
	if v.StartingBlock, err = d.u64(); err != nil {
		return domain.VestingInfo{}, err
	}
	return v, d.done()
}

// EncodeSignedBalance is the inverse of DecodeSignedBalance.
func EncodeSignedBalance(b domain.SignedBalance) []byte {
	out := []byte{0}
	if b.IsNegative() {
		out[0] = 1
	}
	return binary.LittleEndian.AppendUint64(out, b.Amount)
}

// EncodeU64 encodes v as a fixed-width little endian u64.
func EncodeU64(values ...uint64) []byte {
	out := make([]byte, 0, 8*len(values))
	for _, v := range values {
		out = binary.LittleEndian.AppendUint64(out, v)
	}
	return out
}
