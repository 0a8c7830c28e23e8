package stats

import (
	"encoding/binary"
	"math"
)

// writer is a tiny append-only byte builder used by Serialize. Statistics
// blobs are an internal framing detail embedded opaquely in the chunk
// index (spec.md §4.5: "serialize() -> opaque bytes"), not part of the
// pixel byte stream itself, so they are not subject to cfg.byteOrder and
// always use a fixed big-endian layout.
type writer struct {
	buf []byte
}

func (w *writer) putInt64(v int64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, uint64(v)) //nolint:gosec
}

func (w *writer) putUint64(v uint64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, v)
}

func (w *writer) putFloat64(v float64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, math.Float64bits(v))
}

func (w *writer) putBool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

func (w *writer) putBytes(b []byte) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(len(b))) //nolint:gosec
	w.buf = append(w.buf, b...)
}

// serializeBase writes the fields every recorder shares (count, null
// count, hasNull), then invokes extra to append the category-specific
// tail, returning the combined buffer.
func serializeBase(b *base, extra func(w *writer)) []byte {
	w := &writer{}
	w.putInt64(b.count)
	w.putInt64(b.nullCount)
	w.putBool(b.hasNull)
	if extra != nil {
		extra(w)
	}

	return w.buf
}
