// Package int128 implements the 128-bit signed integer used by the
// long-decimal physical representation (DECIMAL columns whose precision
// exceeds format.ShortDecimalMaxPrecision).
package int128

import "github.com/gengdy1545/pixels/errs"

// Int128 is a 128-bit signed integer represented as a high/low word pair:
// the mathematical value is High*2^64 + Low, with High carrying the sign.
type Int128 struct {
	High int64
	Low  uint64
}

// Zero is the additive identity.
var Zero = Int128{}

// Add returns a+b with wraparound mod 2^128, carrying from the low-word
// addition into the high word exactly as a 128-bit adder would.
func Add(a, b Int128) Int128 {
	low := a.Low + b.Low
	carry := uint64(0)
	if low < a.Low {
		carry = 1
	}

	return Int128{
		High: a.High + b.High + int64(carry), //nolint:gosec
		Low:  low,
	}
}

// Cmp compares a and b lexicographically on (High, Low), with High
// compared as signed and Low as unsigned. It returns -1, 0, or 1.
func Cmp(a, b Int128) int {
	switch {
	case a.High < b.High:
		return -1
	case a.High > b.High:
		return 1
	case a.Low < b.Low:
		return -1
	case a.Low > b.Low:
		return 1
	default:
		return 0
	}
}

// BigEndianBytes renders the value as 16 big-endian bytes, high word
// first, each word most-significant-byte first.
func (v Int128) BigEndianBytes() [16]byte {
	var out [16]byte
	putUint64BE(out[0:8], uint64(v.High)) //nolint:gosec
	putUint64BE(out[8:16], v.Low)

	return out
}

func putUint64BE(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[7-i] = byte(v)
		v >>= 8
	}
}

func getUint64BE(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(b[i])
	}

	return v
}

// FromBigEndian parses a big-endian encoded integer of arbitrary length
// into an Int128, per spec.md §4.9:
//   - length >= 16: low is the last 8 bytes, high is the 8 bytes before that
//     (any bytes beyond the first 16, counting from the end, are ignored).
//   - length == 8: low is those 8 bytes, high is 0 if the sign bit (bit 7
//     of byte 0) is clear, or -1 (all bits set) if it is set.
//   - 0 < length < 8: the bytes are sign-extended to 8 bytes first, then
//     treated as the length-8 case.
//   - length == 0 or 8 < length < 16: ErrInvalidArgument (the spec names
//     no rendering for a length that is neither a single word nor a full
//     16-byte pair).
func FromBigEndian(b []byte) (Int128, error) {
	n := len(b)
	switch {
	case n == 0:
		return Int128{}, errs.ErrInvalidArgument
	case n >= 16:
		low := getUint64BE(b[n-8:])
		high := getUint64BE(b[n-16 : n-8])

		return Int128{High: int64(high), Low: low}, nil //nolint:gosec
	case n > 8:
		return Int128{}, errs.ErrInvalidArgument
	case n == 8:
		low := getUint64BE(b)
		high := int64(0)
		if b[0]&0x80 != 0 {
			high = -1
		}

		return Int128{High: high, Low: low}, nil
	default: // 0 < n < 8
		sign := byte(0)
		if b[0]&0x80 != 0 {
			sign = 0xFF
		}

		var extended [8]byte
		for i := range extended {
			extended[i] = sign
		}
		copy(extended[8-n:], b)

		low := getUint64BE(extended[:])
		high := int64(0)
		if sign == 0xFF {
			high = -1
		}

		return Int128{High: high, Low: low}, nil
	}
}
