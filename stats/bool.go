package stats

// BoolRecorder accumulates statistics for BOOLEAN columns. Boolean values
// have no meaningful min/max/sum in the numeric sense, so the only
// type-specific field tracked is the count of true values.
type BoolRecorder struct {
	base
	trueCount int64
}

// NewBoolRecorder returns an empty BoolRecorder.
func NewBoolRecorder() *BoolRecorder {
	return &BoolRecorder{}
}

func (r *BoolRecorder) Update(value any, occurrences int64) {
	r.count += occurrences
	if value.(bool) {
		r.trueCount += occurrences
	}
}

func (r *BoolRecorder) Merge(other Recorder) {
	o := other.(*BoolRecorder)
	r.mergeBase(&o.base)
	r.trueCount += o.trueCount
}

func (r *BoolRecorder) Serialize() []byte {
	return serializeBase(&r.base, func(w *writer) {
		w.putInt64(r.trueCount)
	})
}

func (r *BoolRecorder) Reset() {
	r.reset()
	r.trueCount = 0
}

// TrueCount returns the number of true values observed.
func (r *BoolRecorder) TrueCount() int64 {
	return r.trueCount
}
