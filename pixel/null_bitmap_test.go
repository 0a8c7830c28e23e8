package pixel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNullsBitmap_SetAdvanceHasAny(t *testing.T) {
	b := NewNullsBitmap(8)
	defer b.Close()

	b.Set(0, false)
	b.Set(1, true)
	b.Set(2, false)
	b.Advance(3)

	require.Equal(t, 3, b.Index())
	require.Equal(t, []bool{false, true, false}, b.Flags())
	require.True(t, b.HasAny())
}

func TestNullsBitmap_ResetClearsIndexNotHasAny(t *testing.T) {
	b := NewNullsBitmap(4)
	defer b.Close()

	b.Set(0, true)
	b.Advance(1)
	require.True(t, b.HasAny())

	b.Reset()
	require.Equal(t, 0, b.Index())
	require.False(t, b.HasAny(), "no positions filled after reset, so HasAny sees an empty prefix")
}
