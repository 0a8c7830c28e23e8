package column

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gengdy1545/pixels/endian"
	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/stretchr/testify/require"
)

func TestVectorWriter_AlwaysBigEndianRegardlessOfConfig(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithByteOrder(endian.GetLittleEndianEngine()), pixel.WithStride(10))
	require.NoError(t, err)

	w := NewVectorWriter(3, cfg)
	defer w.Close()

	_, err = w.Write(ValueBatch{Kind: format.VECTOR, Vectors: [][]float64{{1, 2, 3}}}, 1)
	require.NoError(t, err)
	w.Flush()

	content := w.ChunkContent()
	require.Equal(t, 24, len(content)) // 3 doubles, 8 bytes each
	got := math.Float64frombits(binary.BigEndian.Uint64(content[:8]))
	require.InDelta(t, 1.0, got, 1e-9)
}

func TestVectorWriter_PadsShortVectorWithZero(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithStride(10))
	require.NoError(t, err)

	w := NewVectorWriter(4, cfg)
	defer w.Close()

	_, err = w.Write(ValueBatch{Kind: format.VECTOR, Vectors: [][]float64{{9, 9}}}, 1)
	require.NoError(t, err)
	w.Flush()

	content := w.ChunkContent()
	require.Equal(t, float64(0), math.Float64frombits(binary.BigEndian.Uint64(content[16:24])))
}

func TestVectorWriter_NullPaddingWritesZeroVector(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithNullsPadding(true), pixel.WithStride(10))
	require.NoError(t, err)

	w := NewVectorWriter(2, cfg)
	defer w.Close()

	batch := ValueBatch{
		Kind:    format.VECTOR,
		Vectors: [][]float64{nil, {5, 6}},
		Nulls:   []bool{true, false},
	}
	_, err = w.Write(batch, 2)
	require.NoError(t, err)
	w.Flush()

	require.Equal(t, int64(1), w.ChunkStat().Count())
	require.Equal(t, int64(1), w.ChunkStat().NullCount())
}
