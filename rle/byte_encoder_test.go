package rle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteEncoder_RoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{1},
		{1, 1, 1, 1},
		{1, 2, 3, 4, 5},
		{9, 9, 9, 9, 9, 9, 9, 9, 9, 9},
		{1, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3, 4},
	}

	for _, tc := range cases {
		enc := NewByteEncoder()
		enc.Encode(tc)
		encoded := append([]byte{}, enc.Bytes()...)
		enc.Close()

		decoded := NewByteDecoder().Decode(encoded, len(tc))
		require.Equal(t, tc, decoded)
	}
}

func TestByteEncoder_RepeatFrameDensity(t *testing.T) {
	// A run of k equal bytes with k >= MinRepeat must encode to at most
	// ceil(k / MaxRepeat) * 2 bytes (P4).
	for _, k := range []int{3, 4, 130, 131, 260, 261} {
		in := make([]byte, k)
		for i := range in {
			in[i] = 0x7A
		}

		enc := NewByteEncoder()
		enc.Encode(in)
		encoded := append([]byte{}, enc.Bytes()...)
		enc.Close()

		maxAllowed := ((k + MaxRepeat - 1) / MaxRepeat) * 2
		require.LessOrEqual(t, len(encoded), maxAllowed, "k=%d", k)

		decoded := NewByteDecoder().Decode(encoded, k)
		require.Equal(t, in, decoded)
	}
}

func TestByteEncoder_SplitLiteralThenRepeat(t *testing.T) {
	// Literal prefix followed by a run long enough to trigger repeat mode.
	in := []byte{1, 2, 3, 9, 9, 9, 9, 9}
	enc := NewByteEncoder()
	enc.Encode(in)
	encoded := append([]byte{}, enc.Bytes()...)
	enc.Close()

	decoded := NewByteDecoder().Decode(encoded, len(in))
	require.Equal(t, in, decoded)
}
