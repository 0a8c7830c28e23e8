package dict

import (
	"testing"

	"github.com/gengdy1545/pixels/internal/pool"
	"github.com/stretchr/testify/require"
)

func TestDictionary_AddDeduplicates(t *testing.T) {
	d := New()

	codeA := d.Add([]byte("a"), 0, 1)
	codeB := d.Add([]byte("b"), 0, 1)
	codeA2 := d.Add([]byte("a"), 0, 1)
	codeA3 := d.Add([]byte("xay"), 1, 1) // "a" via offset/length

	require.Equal(t, 0, codeA)
	require.Equal(t, 1, codeB)
	require.Equal(t, codeA, codeA2)
	require.Equal(t, codeA, codeA3)
	require.Equal(t, 2, d.Size())
}

func TestDictionary_CodeDensityInvariant(t *testing.T) {
	d := New()
	words := []string{"a", "b", "a", "a", "c", "b", "d", "e", "a"}

	seen := map[int]bool{}
	for _, w := range words {
		code := d.Add([]byte(w), 0, len(w))
		seen[code] = true
	}

	require.Equal(t, d.Size(), len(seen))
	for i := 0; i < d.Size(); i++ {
		require.True(t, seen[i], "code %d missing", i)
	}
}

func TestDictionary_VisitOrdersByCode(t *testing.T) {
	d := New()
	_ = d.Add([]byte("a"), 0, 1)
	_ = d.Add([]byte("b"), 0, 1)
	_ = d.Add([]byte("a"), 0, 1)
	_ = d.Add([]byte("c"), 0, 1)

	buf := pool.NewByteBuffer(16)
	var lengths []int
	d.Visit(func(ctx VisitCtx) {
		lengths = append(lengths, ctx.Len())
		ctx.WriteBytes(buf)
	})

	require.Equal(t, []int{1, 1, 1}, lengths)
	require.Equal(t, "abc", string(buf.Bytes()))
}

func TestDictionary_Clear(t *testing.T) {
	d := New()
	d.Add([]byte("a"), 0, 1)
	d.Add([]byte("b"), 0, 1)
	require.Equal(t, 2, d.Size())

	d.Clear()
	require.Equal(t, 0, d.Size())

	code := d.Add([]byte("a"), 0, 1)
	require.Equal(t, 0, code)
}
