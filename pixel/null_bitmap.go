package pixel

import "github.com/gengdy1545/pixels/internal/pool"

// NullsBitmap is the per-pixel null-flag staging buffer, capacity
// pixelStride, with a running index into how much of it is filled, per
// spec.md §3's NullsBitmap entity. It is reset at the start of every
// pixel.
type NullsBitmap struct {
	flags               []bool
	cleanup             func()
	curPixelIsNullIndex int
}

// NewNullsBitmap returns a NullsBitmap with capacity stride, backed by a
// pooled bool slice.
func NewNullsBitmap(stride int) *NullsBitmap {
	flags, cleanup := pool.GetBoolSlice(stride)

	return &NullsBitmap{flags: flags, cleanup: cleanup}
}

// Set records whether logical position i within the current pixel is
// null. i must be less than the configured stride.
func (n *NullsBitmap) Set(i int, isNull bool) {
	n.flags[i] = isNull
}

// Advance moves the running index forward by k, the number of positions
// just written.
func (n *NullsBitmap) Advance(k int) {
	n.curPixelIsNullIndex += k
}

// Index returns curPixelIsNullIndex, the count of positions filled so
// far within the current pixel.
func (n *NullsBitmap) Index() int {
	return n.curPixelIsNullIndex
}

// Flags returns the filled prefix of the staging buffer, i.e. the null
// flags for the positions written so far in the current pixel.
func (n *NullsBitmap) Flags() []bool {
	return n.flags[:n.curPixelIsNullIndex]
}

// HasAny reports whether any position filled so far in the current pixel
// is null.
func (n *NullsBitmap) HasAny() bool {
	for _, f := range n.flags[:n.curPixelIsNullIndex] {
		if f {
			return true
		}
	}

	return false
}

// Reset zeroes the running index, starting a fresh pixel. The backing
// buffer's contents are overwritten by Set before being read again, so
// the flags themselves are not cleared.
func (n *NullsBitmap) Reset() {
	n.curPixelIsNullIndex = 0
}

// Close returns the backing slice to the pool. The bitmap must not be
// used afterward.
func (n *NullsBitmap) Close() {
	if n.cleanup != nil {
		n.cleanup()
		n.cleanup = nil
	}
	n.flags = nil
}
