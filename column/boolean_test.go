package column

import (
	"testing"

	"github.com/gengdy1545/pixels/errs"
	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/stretchr/testify/require"
)

func TestBooleanWriter_PacksAndTracksTrueCount(t *testing.T) {
	// Alignment 1 keeps flush from padding the content, so ChunkSize is the packed width.
	cfg, err := pixel.NewConfig(pixel.WithStride(10), pixel.WithNullAlignment(1))
	require.NoError(t, err)

	w := NewBooleanWriter(cfg)
	defer w.Close()

	batch := ValueBatch{Kind: format.BOOLEAN, Bools: []bool{true, false, true, true}}
	_, err = w.Write(batch, 4)
	require.NoError(t, err)
	w.Flush()

	require.Equal(t, int64(4), w.ChunkStat().Count())
	require.Equal(t, int64(3), w.chunkStat.TrueCount())
	require.Equal(t, 1, w.ChunkSize()) // 4 bits packs into a single byte
}

func TestBooleanWriter_UnpaddedNullLeavesNoStaleByteInStaged(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithNullsPadding(false), pixel.WithStride(10), pixel.WithNullAlignment(1))
	require.NoError(t, err)

	w := NewBooleanWriter(cfg)
	defer w.Close()

	first := ValueBatch{Kind: format.BOOLEAN, Bools: []bool{true, true, true}}
	_, err = w.Write(first, 3)
	require.NoError(t, err)
	w.Flush()
	firstSize := w.ChunkSize()

	w.Reset()

	second := ValueBatch{
		Kind:  format.BOOLEAN,
		Bools: []bool{false, true},
		Nulls: []bool{true, false},
	}
	_, err = w.Write(second, 2)
	require.NoError(t, err)
	w.Flush()

	require.Equal(t, int64(1), w.ChunkStat().Count())
	// The null bitmap byte follows the content; the content before it
	// carries no byte for the unpadded null.
	require.LessOrEqual(t, w.ChunkIndex().IsNullOffset, firstSize)
}

func TestBooleanWriter_PixelBoundaryAtExactStride(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithStride(2))
	require.NoError(t, err)

	w := NewBooleanWriter(cfg)
	defer w.Close()

	batch := ValueBatch{Kind: format.BOOLEAN, Bools: []bool{true, false, true, false}}
	_, err = w.Write(batch, 4)
	require.NoError(t, err)
	w.Flush()

	require.Equal(t, 2, w.ChunkIndex().PixelCount())
	positions := w.ChunkIndex().PixelPositions
	require.Equal(t, 0, positions[0])
	require.Equal(t, 1, positions[1])
}

func TestBooleanWriter_WriteAfterCloseIsRejected(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithStride(10))
	require.NoError(t, err)

	w := NewBooleanWriter(cfg)
	w.Close()

	_, err = w.Write(ValueBatch{Kind: format.BOOLEAN, Bools: []bool{true}}, 1)
	require.ErrorIs(t, err, errs.ErrWriterClosed)
}
