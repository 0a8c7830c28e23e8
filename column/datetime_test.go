package column

import (
	"testing"

	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/stretchr/testify/require"
)

func TestDateTimeWriter_SignedFixedWidthForDate(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithEncodingLevel(format.EL2), pixel.WithStride(10))
	require.NoError(t, err)

	w := NewDateTimeWriter(format.DATE, cfg)
	defer w.Close()

	batch := ValueBatch{Kind: format.DATE, Int64s: []int64{-5, -5, 10}}
	_, err = w.Write(batch, 3)
	require.NoError(t, err)
	w.Flush()

	require.Equal(t, int64(-5), w.chunkStat.Min())
	require.Equal(t, int64(10), w.chunkStat.Max())
}

func TestDateTimeWriter_TimestampUsesVariableWidthEncoder(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithEncodingLevel(format.EL2), pixel.WithStride(10))
	require.NoError(t, err)

	w := NewDateTimeWriter(format.TIMESTAMP, cfg)
	defer w.Close()

	batch := ValueBatch{Kind: format.TIMESTAMP, Int64s: []int64{1000000000000, -1, 0}}
	_, err = w.Write(batch, 3)
	require.NoError(t, err)
	w.Flush()

	require.Equal(t, int64(3), w.ChunkStat().Count())
}

func TestDateTimeWriter_RawAtEL0PreservesNegativeValues(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithEncodingLevel(format.EL0), pixel.WithStride(10))
	require.NoError(t, err)

	w := NewDateTimeWriter(format.TIME, cfg)
	defer w.Close()

	batch := ValueBatch{Kind: format.TIME, Int64s: []int64{-100}}
	_, err = w.Write(batch, 1)
	require.NoError(t, err)
	w.Flush()

	// A 4-byte TIME value plus 4 bytes of padding to the default 8-byte null alignment.
	require.Equal(t, 8, w.ChunkSize())
	require.Equal(t, int32(-100), int32(cfg.ByteOrder().Uint32(w.ChunkContent()[:4])))
}
