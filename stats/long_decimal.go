package stats

import "github.com/gengdy1545/pixels/int128"

// LongDecimalRecorder accumulates min/max/sum for DECIMAL columns whose
// precision exceeds format.ShortDecimalMaxPrecision and are therefore
// stored as two 64-bit words (int128.Int128) per spec.md §3 and §4.9.
type LongDecimalRecorder struct {
	base
	min, max, sum int128.Int128
}

// NewLongDecimalRecorder returns an empty LongDecimalRecorder.
func NewLongDecimalRecorder() *LongDecimalRecorder {
	return &LongDecimalRecorder{}
}

func (r *LongDecimalRecorder) Update(value any, occurrences int64) {
	v := value.(int128.Int128)
	if r.count == 0 {
		r.min, r.max = v, v
	} else {
		if int128.Cmp(v, r.min) < 0 {
			r.min = v
		}
		if int128.Cmp(v, r.max) > 0 {
			r.max = v
		}
	}
	for i := int64(0); i < occurrences; i++ {
		r.sum = int128.Add(r.sum, v)
	}
	r.count += occurrences
}

func (r *LongDecimalRecorder) Merge(other Recorder) {
	o := other.(*LongDecimalRecorder)
	if o.count == 0 {
		return
	}
	if r.count == 0 {
		r.min, r.max = o.min, o.max
	} else {
		if int128.Cmp(o.min, r.min) < 0 {
			r.min = o.min
		}
		if int128.Cmp(o.max, r.max) > 0 {
			r.max = o.max
		}
	}
	r.sum = int128.Add(r.sum, o.sum)
	r.mergeBase(&o.base)
}

func (r *LongDecimalRecorder) Serialize() []byte {
	return serializeBase(&r.base, func(w *writer) {
		minB := r.min.BigEndianBytes()
		maxB := r.max.BigEndianBytes()
		sumB := r.sum.BigEndianBytes()
		w.buf = append(w.buf, minB[:]...)
		w.buf = append(w.buf, maxB[:]...)
		w.buf = append(w.buf, sumB[:]...)
	})
}

func (r *LongDecimalRecorder) Reset() {
	r.reset()
	r.min, r.max, r.sum = int128.Zero, int128.Zero, int128.Zero
}

// Min returns the minimum observed value.
func (r *LongDecimalRecorder) Min() int128.Int128 { return r.min }

// Max returns the maximum observed value.
func (r *LongDecimalRecorder) Max() int128.Int128 { return r.max }

// Sum returns the running sum of observed values.
func (r *LongDecimalRecorder) Sum() int128.Int128 { return r.sum }
