package column

import (
	"testing"

	"github.com/gengdy1545/pixels/endian"
	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/int128"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/stretchr/testify/require"
)

func TestLongDecimalWriter_WordOrderFollowsByteOrder(t *testing.T) {
	leCfg, err := pixel.NewConfig(pixel.WithByteOrder(endian.GetLittleEndianEngine()), pixel.WithStride(10))
	require.NoError(t, err)

	leW := NewLongDecimalWriter(leCfg)
	defer leW.Close()
	v := int128.Int128{High: 1, Low: 2}
	_, err = leW.Write(ValueBatch{Kind: format.DECIMAL, Decimals: []int128.Int128{v}}, 1)
	require.NoError(t, err)
	leW.Flush()

	content := leW.ChunkContent()
	require.Equal(t, uint64(2), leCfg.ByteOrder().Uint64(content[:8]))
	require.Equal(t, uint64(1), leCfg.ByteOrder().Uint64(content[8:16]))

	beCfg, err := pixel.NewConfig(pixel.WithByteOrder(endian.GetBigEndianEngine()), pixel.WithStride(10))
	require.NoError(t, err)

	beW := NewLongDecimalWriter(beCfg)
	defer beW.Close()
	_, err = beW.Write(ValueBatch{Kind: format.DECIMAL, Decimals: []int128.Int128{v}}, 1)
	require.NoError(t, err)
	beW.Flush()

	beContent := beW.ChunkContent()
	require.Equal(t, uint64(1), beCfg.ByteOrder().Uint64(beContent[:8]))
	require.Equal(t, uint64(2), beCfg.ByteOrder().Uint64(beContent[8:16]))
}

func TestLongDecimalWriter_MinMaxSum(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithStride(10))
	require.NoError(t, err)

	w := NewLongDecimalWriter(cfg)
	defer w.Close()

	a := int128.Int128{Low: 10}
	b := int128.Int128{Low: 20}
	_, err = w.Write(ValueBatch{Kind: format.DECIMAL, Decimals: []int128.Int128{a, b}}, 2)
	require.NoError(t, err)
	w.Flush()

	require.Equal(t, 0, int128.Cmp(a, w.chunkStat.Min()))
	require.Equal(t, 0, int128.Cmp(b, w.chunkStat.Max()))
	require.Equal(t, 0, int128.Cmp(int128.Int128{Low: 30}, w.chunkStat.Sum()))
}
