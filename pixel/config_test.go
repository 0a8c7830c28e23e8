package pixel

import (
	"testing"

	"github.com/gengdy1545/pixels/endian"
	"github.com/gengdy1545/pixels/format"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, DefaultPixelStride, cfg.PixelStride())
	require.Equal(t, format.EL0, cfg.EncodingLevel())
	require.True(t, cfg.NullsPadding())
	require.True(t, cfg.LittleEndian())
	require.Equal(t, DefaultIsNullAlignment, cfg.IsNullAlignment())
}

func TestNewConfig_WithOptions(t *testing.T) {
	cfg, err := NewConfig(
		WithStride(500),
		WithEncodingLevel(format.EL2),
		WithByteOrder(endian.GetBigEndianEngine()),
		WithNullsPadding(false),
		WithNullAlignment(4),
	)
	require.NoError(t, err)
	require.Equal(t, 500, cfg.PixelStride())
	require.Equal(t, format.EL2, cfg.EncodingLevel())
	require.False(t, cfg.LittleEndian())
	require.False(t, cfg.NullsPadding())
	require.Equal(t, 4, cfg.IsNullAlignment())
}

func TestNewConfig_RejectsNonPositiveStride(t *testing.T) {
	_, err := NewConfig(WithStride(0))
	require.Error(t, err)

	_, err = NewConfig(WithStride(-5))
	require.Error(t, err)
}

func TestNewConfig_RejectsNonPositiveAlignment(t *testing.T) {
	_, err := NewConfig(WithNullAlignment(0))
	require.Error(t, err)
}
