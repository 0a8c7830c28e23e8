package bitutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPack_LittleEndian_SingleByte(t *testing.T) {
	bits := []bool{true, false, true, true, false, false, false, true}

	out := Pack(bits, len(bits), LE)

	require.Len(t, out, 1)
	require.Equal(t, byte(0x8D), out[0])
}

func TestPack_BigEndian_SingleByte(t *testing.T) {
	bits := []bool{true, false, true, true, false, false, false, true}

	out := Pack(bits, len(bits), BE)

	// bit 0 (true) lands in bit 7, bit 7 (true) lands in bit 0.
	require.Len(t, out, 1)
	require.Equal(t, byte(0xB1), out[0])
}

func TestPack_OutputLengthIsCeilDiv8(t *testing.T) {
	cases := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 1},
		{7, 1},
		{8, 1},
		{9, 2},
		{16, 2},
		{17, 3},
	}

	for _, tc := range cases {
		bits := make([]bool, tc.count)
		out := Pack(bits, tc.count, LE)
		require.Len(t, out, tc.want, "count=%d", tc.count)
	}
}

func TestPackUnpack_RoundTrip(t *testing.T) {
	for _, order := range []Order{LE, BE} {
		bits := make([]bool, 37)
		for i := range bits {
			bits[i] = i%3 == 0
		}

		packed := Pack(bits, len(bits), order)
		unpacked := Unpack(packed, len(bits), order)

		require.Equal(t, bits, unpacked)
	}
}
