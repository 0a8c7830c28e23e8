package stats

// StringRecorder accumulates lexicographic min/max for STRING, CHAR, and
// VARCHAR columns, plus a running count of values truncated to the
// category's maxLength by the owning writer (spec.md §4.7: "Varchar
// truncates inputs longer than maxLength, counting truncations").
type StringRecorder struct {
	base
	min, max  string
	truncated int64
}

// NewStringRecorder returns an empty StringRecorder.
func NewStringRecorder() *StringRecorder {
	return &StringRecorder{}
}

func (r *StringRecorder) Update(value any, occurrences int64) {
	v := value.(string)
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
	r.count += occurrences
}

// IncrementTruncated records that a value was shortened to fit maxLength.
func (r *StringRecorder) IncrementTruncated() {
	r.truncated++
}

func (r *StringRecorder) Merge(other Recorder) {
	o := other.(*StringRecorder)
	r.truncated += o.truncated
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
	r.mergeBase(&o.base)
}

func (r *StringRecorder) Serialize() []byte {
	return serializeBase(&r.base, func(w *writer) {
		w.putBytes([]byte(r.min))
		w.putBytes([]byte(r.max))
		w.putInt64(r.truncated)
	})
}

func (r *StringRecorder) Reset() {
	r.reset()
	r.min, r.max, r.truncated = "", "", 0
}

// Min returns the lexicographically smallest observed value.
func (r *StringRecorder) Min() string { return r.min }

// Max returns the lexicographically largest observed value.
func (r *StringRecorder) Max() string { return r.max }

// Truncated returns the number of values shortened to fit maxLength.
func (r *StringRecorder) Truncated() int64 { return r.truncated }
