package stats

// VectorRecorder accumulates statistics for VECTOR columns. A dense
// fixed-dimension double array has no single scalar min/max/sum that
// spec.md mandates, so VectorRecorder only tracks the shared count/
// null-count/hasNull fields every category carries.
type VectorRecorder struct {
	base
}

// NewVectorRecorder returns an empty VectorRecorder.
func NewVectorRecorder() *VectorRecorder {
	return &VectorRecorder{}
}

func (r *VectorRecorder) Update(_ any, occurrences int64) {
	r.count += occurrences
}

func (r *VectorRecorder) Merge(other Recorder) {
	o := other.(*VectorRecorder)
	r.mergeBase(&o.base)
}

func (r *VectorRecorder) Serialize() []byte {
	return serializeBase(&r.base, nil)
}

func (r *VectorRecorder) Reset() {
	r.reset()
}
