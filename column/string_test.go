package column

import (
	"testing"

	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/gengdy1545/pixels/stats"
	"github.com/stretchr/testify/require"
)

func TestStringWriter_DirectModeRoundTripsPositions(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithEncodingLevel(format.EL0), pixel.WithStride(4))
	require.NoError(t, err)

	w := NewStringWriter(format.STRING, 0, cfg)
	defer w.Close()

	batch := ValueBatch{Kind: format.STRING, Strings: []string{"a", "bb", "ccc"}}
	_, err = w.Write(batch, 3)
	require.NoError(t, err)
	w.Flush()

	require.Equal(t, int64(3), w.ChunkStat().Count())
	require.Greater(t, w.ChunkSize(), 0)
}

func TestStringWriter_DictionaryModeDeduplicates(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithEncodingLevel(format.EL1), pixel.WithStride(10))
	require.NoError(t, err)

	w := NewStringWriter(format.VARCHAR, 10, cfg)
	defer w.Close()

	batch := ValueBatch{Kind: format.VARCHAR, Strings: []string{"red", "green", "red", "red"}}
	_, err = w.Write(batch, 4)
	require.NoError(t, err)
	w.Flush()

	enc := w.ChunkEncoding()
	require.Equal(t, format.DICTIONARY, enc.Kind)
	require.Equal(t, 2, enc.DictionarySize)
}

func TestStringWriter_RunLengthOverDictionaryAtEL2(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithEncodingLevel(format.EL2), pixel.WithStride(10))
	require.NoError(t, err)

	w := NewStringWriter(format.VARCHAR, 10, cfg)
	defer w.Close()

	batch := ValueBatch{Kind: format.VARCHAR, Strings: []string{"x", "x", "x", "y"}}
	_, err = w.Write(batch, 4)
	require.NoError(t, err)
	w.Flush()

	require.Equal(t, format.RUNLENGTH, w.ChunkEncoding().Kind)
}

func TestStringWriter_VarcharTruncatesAndCountsTruncation(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithEncodingLevel(format.EL0), pixel.WithStride(10))
	require.NoError(t, err)

	w := NewStringWriter(format.VARCHAR, 3, cfg)
	defer w.Close()

	batch := ValueBatch{Kind: format.VARCHAR, Strings: []string{"hello", "hi"}}
	_, err = w.Write(batch, 2)
	require.NoError(t, err)
	w.Flush()

	stat, ok := w.ChunkStat().(*stats.StringRecorder)
	require.True(t, ok)
	require.Equal(t, int64(1), stat.Truncated())
	require.Equal(t, "hi", stat.Max())
}

func TestStringWriter_CharDisablesCascadingNullsPaddingOverride(t *testing.T) {
	cfg, err := pixel.NewConfig(
		pixel.WithEncodingLevel(format.EL2),
		pixel.WithNullsPadding(true),
		pixel.WithStride(10),
	)
	require.NoError(t, err)

	charW := NewStringWriter(format.CHAR, 5, cfg)
	defer charW.Close()
	require.True(t, charW.effectiveNullsPadding)

	varcharW := NewStringWriter(format.VARCHAR, 5, cfg)
	defer varcharW.Close()
	require.False(t, varcharW.effectiveNullsPadding)
}

func TestStringWriter_NullsNotPaddedContributeNoBytes(t *testing.T) {
	cfg, err := pixel.NewConfig(
		pixel.WithEncodingLevel(format.EL0),
		pixel.WithNullsPadding(false),
		pixel.WithStride(10),
	)
	require.NoError(t, err)

	w := NewStringWriter(format.STRING, 0, cfg)
	defer w.Close()

	withNull := ValueBatch{
		Kind:    format.STRING,
		Strings: []string{"a", "", "b"},
		Nulls:   []bool{false, true, false},
	}
	_, err = w.Write(withNull, 3)
	require.NoError(t, err)
	w.Flush()

	require.Equal(t, int64(2), w.ChunkStat().Count())
	require.Equal(t, int64(1), w.ChunkStat().NullCount())
}

func TestStringWriter_PixelBoundarySpansMultipleWrites(t *testing.T) {
	cfg, err := pixel.NewConfig(pixel.WithEncodingLevel(format.EL0), pixel.WithStride(2))
	require.NoError(t, err)

	w := NewStringWriter(format.STRING, 0, cfg)
	defer w.Close()

	batch := ValueBatch{Kind: format.STRING, Strings: []string{"a", "b", "c", "d", "e"}}
	_, err = w.Write(batch, 5)
	require.NoError(t, err)
	w.Flush()

	require.Equal(t, 3, w.ChunkIndex().PixelCount())
}
