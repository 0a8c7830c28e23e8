package column

import (
	"testing"

	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/stretchr/testify/require"
)

func TestByteWriter_RawAtEL0(t *testing.T) {
	// Alignment 1 keeps flush from padding the content, so ChunkSize is the raw width.
	cfg, err := pixel.NewConfig(pixel.WithEncodingLevel(format.EL0), pixel.WithStride(10), pixel.WithNullAlignment(1))
	require.NoError(t, err)

	w := NewByteWriter(cfg)
	defer w.Close()

	batch := ValueBatch{Kind: format.BYTE, Bytes: []byte{1, 2, 3}}
	_, err = w.Write(batch, 3)
	require.NoError(t, err)
	w.Flush()

	require.Equal(t, 3, w.ChunkSize())
}

func TestByteWriter_RunLengthEncodedAtEL2(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithEncodingLevel(format.EL2), pixel.WithStride(10))
	require.NoError(t, err)

	w := NewByteWriter(cfg)
	defer w.Close()

	batch := ValueBatch{Kind: format.BYTE, Bytes: []byte{9, 9, 9, 9, 9}}
	_, err = w.Write(batch, 5)
	require.NoError(t, err)
	w.Flush()

	require.Equal(t, format.RUNLENGTH, w.ChunkEncoding().Kind)
}

func TestByteWriter_StatUsesIntValue(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithStride(10))
	require.NoError(t, err)

	w := NewByteWriter(cfg)
	defer w.Close()

	batch := ValueBatch{Kind: format.BYTE, Bytes: []byte{3, 1, 2}}
	_, err = w.Write(batch, 3)
	require.NoError(t, err)
	w.Flush()

	require.Equal(t, int64(1), w.chunkStat.Min())
	require.Equal(t, int64(3), w.chunkStat.Max())
	require.Equal(t, int64(6), w.chunkStat.Sum())
}
