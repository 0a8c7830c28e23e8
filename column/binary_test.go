package column

import (
	"testing"

	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/gengdy1545/pixels/stats"
	"github.com/stretchr/testify/require"
)

func TestBinaryWriter_DirectContentAndStarts(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithStride(10))
	require.NoError(t, err)

	w := NewBinaryWriter(format.VARBINARY, 0, cfg)
	defer w.Close()

	batch := ValueBatch{Kind: format.VARBINARY, Binaries: [][]byte{{1, 2}, {3}, {4, 5, 6}}}
	_, err = w.Write(batch, 3)
	require.NoError(t, err)
	w.Flush()

	require.Equal(t, int64(3), w.ChunkStat().Count())
	require.Greater(t, w.ChunkSize(), 0)
}

func TestBinaryWriter_BinaryTruncatesButVarbinaryDoesNot(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithStride(10))
	require.NoError(t, err)

	binW := NewBinaryWriter(format.BINARY, 2, cfg)
	defer binW.Close()
	_, err = binW.Write(ValueBatch{Kind: format.BINARY, Binaries: [][]byte{{1, 2, 3}}}, 1)
	require.NoError(t, err)
	binW.Flush()
	stat := binW.ChunkStat().(*stats.BinaryRecorder)
	require.Equal(t, int64(1), stat.Truncated())
	require.Equal(t, []byte{1, 2}, stat.Max())

	varW := NewBinaryWriter(format.VARBINARY, 0, cfg)
	defer varW.Close()
	_, err = varW.Write(ValueBatch{Kind: format.VARBINARY, Binaries: [][]byte{{1, 2, 3}}}, 1)
	require.NoError(t, err)
	varW.Flush()
	varStat := varW.ChunkStat().(*stats.BinaryRecorder)
	require.Equal(t, int64(0), varStat.Truncated())
	require.Equal(t, []byte{1, 2, 3}, varStat.Max())
}

func TestBinaryWriter_UnpaddedNullSkipsStartsEntry(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithNullsPadding(false), pixel.WithStride(10))
	require.NoError(t, err)

	w := NewBinaryWriter(format.VARBINARY, 0, cfg)
	defer w.Close()

	batch := ValueBatch{
		Kind:     format.VARBINARY,
		Binaries: [][]byte{{9}, nil, {8}},
		Nulls:    []bool{false, true, false},
	}
	_, err = w.Write(batch, 3)
	require.NoError(t, err)
	w.Flush()

	require.Equal(t, int64(2), w.ChunkStat().Count())
	require.Equal(t, int64(1), w.ChunkStat().NullCount())
	require.Equal(t, 2, len(w.starts))
}
