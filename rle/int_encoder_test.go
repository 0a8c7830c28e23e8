package rle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntEncoder_RoundTrip_Unsigned(t *testing.T) {
	cases := [][]int64{
		{},
		{42},
		{1, 1, 1, 1},
		{1, 2, 3, 4, 5, 6, 7},
		{10, 20, 30, 40, 50},
		{100, 5, 900000, 3, 3, 3},
	}

	for _, tc := range cases {
		enc := NewIntEncoder(false, false)
		enc.Encode(tc, len(tc))
		encoded := append([]byte{}, enc.Bytes()...)
		enc.Close()

		decoded := NewIntDecoder(false).Decode(encoded, len(tc))
		require.Equal(t, tc, decoded)
	}
}

func TestIntEncoder_RoundTrip_Signed(t *testing.T) {
	cases := [][]int64{
		{},
		{-1},
		{-5, -5, -5},
		{-10, -5, 0, 5, 10},
		{5, -3, 17, -200, 0, 0, 42},
	}

	for _, tc := range cases {
		enc := NewIntEncoder(true, true)
		enc.Encode(tc, len(tc))
		encoded := append([]byte{}, enc.Bytes()...)
		enc.Close()

		decoded := NewIntDecoder(true).Decode(encoded, len(tc))
		require.Equal(t, tc, decoded)
	}
}

func TestIntEncoder_EmptyInputEmitsNoBytes(t *testing.T) {
	enc := NewIntEncoder(false, false)
	enc.Encode(nil, 0)
	require.Empty(t, enc.Bytes())
	enc.Close()
}

func TestIntEncoder_SingleValueUsesDirectFrame(t *testing.T) {
	enc := NewIntEncoder(false, false)
	enc.Encode([]int64{7}, 1)
	b := enc.Bytes()
	require.NotEmpty(t, b)
	require.Equal(t, byte(modeDirect), b[0])
	enc.Close()
}

func TestIntEncoder_LargeRepeatRunAcrossBlocks(t *testing.T) {
	n := blockSize*2 + 7
	in := make([]int64, n)
	for i := range in {
		in[i] = 1
	}

	enc := NewIntEncoder(false, false)
	enc.Encode(in, n)
	encoded := append([]byte{}, enc.Bytes()...)
	enc.Close()

	decoded := NewIntDecoder(false).Decode(encoded, n)
	require.Equal(t, in, decoded)
}

func TestIntEncoder_ClearResetsStreamedState(t *testing.T) {
	enc := NewIntEncoder(false, false)
	enc.Encode([]int64{1, 2, 3}, 3)
	enc.Clear()
	require.Empty(t, enc.Bytes())

	enc.Encode([]int64{9, 9, 9}, 3)
	decoded := NewIntDecoder(false).Decode(enc.Bytes(), 3)
	require.Equal(t, []int64{9, 9, 9}, decoded)
	enc.Close()
}
