package pixel

import (
	"testing"

	"github.com/gengdy1545/pixels/format"
	"github.com/stretchr/testify/require"
)

func TestEncoding_RunLengthOverDictionaryCascade(t *testing.T) {
	e := RunLengthOverDictionary(12)

	require.Equal(t, format.RUNLENGTH, e.Kind)
	require.NotNil(t, e.Cascade)
	require.Equal(t, format.DICTIONARY, e.Cascade.Kind)
	require.Equal(t, 12, e.Cascade.DictionarySize)
	require.Nil(t, e.Cascade.Cascade)
}

func TestEncoding_NoneHasNoCascade(t *testing.T) {
	e := None()
	require.Equal(t, format.NONE, e.Kind)
	require.Nil(t, e.Cascade)
}
