package stats

// IntRecorder accumulates min/max/sum statistics for any integer-shaped
// category stored as a 64-bit value: SHORT, INT, LONG, DATE, TIME,
// TIMESTAMP, and the short-decimal physical representation (the unscaled
// int64, per spec.md §3's "short-decimal when precision <=
// SHORT_DECIMAL_MAX_PRECISION"). These categories share the exact same
// statistical shape, so one recorder type serves all of them.
type IntRecorder struct {
	base
	min, max, sum int64
}

// NewIntRecorder returns an empty IntRecorder.
func NewIntRecorder() *IntRecorder {
	return &IntRecorder{}
}

func (r *IntRecorder) Update(value any, occurrences int64) {
	v := value.(int64)
	if r.count == 0 {
		r.min, r.max = v, v
	} else {
		if v < r.min {
			r.min = v
		}
		if v > r.max {
			r.max = v
		}
	}
	r.sum += v * occurrences
	r.count += occurrences
}

func (r *IntRecorder) Merge(other Recorder) {
	o := other.(*IntRecorder)
	if o.count == 0 {
		return
	}
	if r.count == 0 {
		r.min, r.max = o.min, o.max
	} else {
		if o.min < r.min {
			r.min = o.min
		}
		if o.max > r.max {
			r.max = o.max
		}
	}
	r.sum += o.sum
	r.mergeBase(&o.base)
}

func (r *IntRecorder) Serialize() []byte {
	return serializeBase(&r.base, func(w *writer) {
		w.putInt64(r.min)
		w.putInt64(r.max)
		w.putInt64(r.sum)
	})
}

func (r *IntRecorder) Reset() {
	r.reset()
	r.min, r.max, r.sum = 0, 0, 0
}

// Min returns the minimum observed value.
func (r *IntRecorder) Min() int64 { return r.min }

// Max returns the maximum observed value.
func (r *IntRecorder) Max() int64 { return r.max }

// Sum returns the running sum of observed values.
func (r *IntRecorder) Sum() int64 { return r.sum }
