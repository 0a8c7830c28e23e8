package pixel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkIndex_AddPixelAndReset(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	ci := NewChunkIndex(cfg)
	ci.AddPixel(0, []byte{1, 2, 3})
	ci.AddPixel(128, []byte{4, 5})

	require.Equal(t, 2, ci.PixelCount())
	require.Equal(t, []int{0, 128}, ci.PixelPositions)
	require.Equal(t, [][]byte{{1, 2, 3}, {4, 5}}, ci.PixelStatistics)
	require.True(t, ci.LittleEndian)
	require.True(t, ci.NullsPadding)

	ci.IsNullOffset = 256
	ci.Reset()
	require.Zero(t, ci.PixelCount())
	require.Zero(t, ci.IsNullOffset)
	require.True(t, ci.LittleEndian, "configuration-derived fields survive Reset")
}
