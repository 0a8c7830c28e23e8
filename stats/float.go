package stats

// FloatRecorder accumulates min/max/sum for FLOAT and DOUBLE columns.
// Both categories are promoted to float64 before updating; FLOAT's
// 32-bit precision loss is already baked into the value by the time it
// reaches the recorder.
type FloatRecorder struct {
	base
	min, max, sum float64
}

// NewFloatRecorder returns an empty FloatRecorder.
func NewFloatRecorder() *FloatRecorder {
	return &FloatRecorder{}
}

func (r *FloatRecorder) Update(value any, occurrences int64) {
	v := value.(float64)
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
	r.sum += v * float64(occurrences)
	r.count += occurrences
}

func (r *FloatRecorder) Merge(other Recorder) {
	o := other.(*FloatRecorder)
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

func (r *FloatRecorder) Serialize() []byte {
	return serializeBase(&r.base, func(w *writer) {
		w.putFloat64(r.min)
		w.putFloat64(r.max)
		w.putFloat64(r.sum)
	})
}

func (r *FloatRecorder) Reset() {
	r.reset()
	r.min, r.max, r.sum = 0, 0, 0
}

// Min returns the minimum observed value.
func (r *FloatRecorder) Min() float64 { return r.min }

// Max returns the maximum observed value.
func (r *FloatRecorder) Max() float64 { return r.max }

// Sum returns the running sum of observed values.
func (r *FloatRecorder) Sum() float64 { return r.sum }
