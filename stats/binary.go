package stats

import "bytes"

// BinaryRecorder accumulates lexicographic min/max for BINARY and
// VARBINARY columns. There is no numeric sum for a byte-string category,
// per spec.md §4.5 ("sum for numeric types" only).
type BinaryRecorder struct {
	base
	min, max  []byte
	truncated int64
}

// NewBinaryRecorder returns an empty BinaryRecorder.
func NewBinaryRecorder() *BinaryRecorder {
	return &BinaryRecorder{}
}

// IncrementTruncated records that a BINARY value was cut to maxLength.
// Tracked separately from Update since truncation happens before the
// (already-shortened) value is counted towards min/max.
func (r *BinaryRecorder) IncrementTruncated() {
	r.truncated++
}

func (r *BinaryRecorder) Update(value any, occurrences int64) {
	v := value.([]byte)
	if r.count == 0 {
		r.min = append([]byte{}, v...)
		r.max = append([]byte{}, v...)
	} else {
		if bytes.Compare(v, r.min) < 0 {
			r.min = append(r.min[:0], v...)
		}
		if bytes.Compare(v, r.max) > 0 {
			r.max = append(r.max[:0], v...)
		}
	}
	r.count += occurrences
}

func (r *BinaryRecorder) Merge(other Recorder) {
	o := other.(*BinaryRecorder)
	if o.count == 0 {
		return
	}
	if r.count == 0 {
		r.min = append([]byte{}, o.min...)
		r.max = append([]byte{}, o.max...)
	} else {
		if bytes.Compare(o.min, r.min) < 0 {
			r.min = append(r.min[:0], o.min...)
		}
		if bytes.Compare(o.max, r.max) > 0 {
			r.max = append(r.max[:0], o.max...)
		}
	}
	r.truncated += o.truncated
	r.mergeBase(&o.base)
}

func (r *BinaryRecorder) Serialize() []byte {
	return serializeBase(&r.base, func(w *writer) {
		w.putBytes(r.min)
		w.putBytes(r.max)
		w.putInt64(r.truncated)
	})
}

func (r *BinaryRecorder) Reset() {
	r.reset()
	r.min, r.max = nil, nil
	r.truncated = 0
}

// Truncated returns how many values were cut to fit maxLength.
func (r *BinaryRecorder) Truncated() int64 { return r.truncated }

// Min returns the lexicographically smallest observed value.
func (r *BinaryRecorder) Min() []byte { return r.min }

// Max returns the lexicographically largest observed value.
func (r *BinaryRecorder) Max() []byte { return r.max }
