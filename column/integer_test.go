package column

import (
	"testing"

	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/stretchr/testify/require"
)

func TestIntegerWriter_RawAtEL0(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithEncodingLevel(format.EL0), pixel.WithStride(10))
	require.NoError(t, err)

	w := NewIntegerWriter(format.INT, cfg)
	defer w.Close()

	batch := ValueBatch{Kind: format.INT, Int64s: []int64{1, 2, 3}}
	_, err = w.Write(batch, 3)
	require.NoError(t, err)
	w.Flush()

	require.Equal(t, 24, w.ChunkSize()) // 3 raw int64 values, no null tail
}

func TestIntegerWriter_MinMaxSumAndRunLengthAtEL2(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithEncodingLevel(format.EL2), pixel.WithStride(10))
	require.NoError(t, err)

	w := NewIntegerWriter(format.LONG, cfg)
	defer w.Close()

	batch := ValueBatch{Kind: format.LONG, Int64s: []int64{5, 5, 5, 5}}
	_, err = w.Write(batch, 4)
	require.NoError(t, err)
	w.Flush()

	require.Equal(t, format.RUNLENGTH, w.ChunkEncoding().Kind)
	require.Equal(t, int64(4), w.ChunkStat().Count())
}

func TestIntegerWriter_UnpaddedNullExcludedFromStagedBuffer(t *testing.T) {
	cfg, err := pixel.NewConfig(
		pixel.WithEncodingLevel(format.EL0),
		pixel.WithNullsPadding(false),
		pixel.WithStride(10),
	)
	require.NoError(t, err)

	w := NewIntegerWriter(format.INT, cfg)
	defer w.Close()

	batch := ValueBatch{
		Kind:   format.INT,
		Int64s: []int64{7, 0, 9},
		Nulls:  []bool{false, true, false},
	}
	_, err = w.Write(batch, 3)
	require.NoError(t, err)
	w.Flush()

	// two 8-byte values, no slot written for the null position
	require.Equal(t, 16, w.ChunkIndex().IsNullOffset)
	require.Equal(t, int64(2), w.ChunkStat().Count())
	require.Equal(t, int64(1), w.ChunkStat().NullCount())
}

func TestIntegerWriter_EL2ForcesNullsPaddingOffRegardlessOfConfig(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithEncodingLevel(format.EL2), pixel.WithNullsPadding(true))
	require.NoError(t, err)

	w := NewIntegerWriter(format.SHORT, cfg)
	defer w.Close()

	require.False(t, w.effectiveNullsPadding)
}
