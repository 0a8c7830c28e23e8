package column

import (
	"encoding/binary"
	"math"

	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/gengdy1545/pixels/stats"
)

// VectorWriter implements Writer for VECTOR columns: a dense double
// array of fixed dimension, concatenated as big-endian doubles per value
// regardless of the writer's configured byte order — vector components
// are always big-endian per spec.md §4.7 ("concatenates dim big-endian
// doubles per value").
type VectorWriter struct {
	base

	dim int

	pixelStat *stats.VectorRecorder
	chunkStat *stats.VectorRecorder
}

// NewVectorWriter constructs a VectorWriter for the given fixed
// dimension.
func NewVectorWriter(dim int, cfg pixel.Config) *VectorWriter {
	w := &VectorWriter{
		base:      newBase(format.VECTOR, cfg),
		dim:       dim,
		pixelStat: stats.NewVectorRecorder(),
		chunkStat: stats.NewVectorRecorder(),
	}
	w.setEffectiveNullsPadding(w.DecideNullsPadding(cfg))

	return w
}

func (w *VectorWriter) Write(batch ValueBatch, n int) (int, error) {
	if err := w.checkNotClosed(); err != nil {
		return 0, err
	}
	if err := w.checkKind(batch.Kind); err != nil {
		return 0, err
	}
	if err := w.checkRange(len(batch.Vectors), n); err != nil {
		return 0, err
	}

	padding := w.effectiveNullsPadding
	w.partition(n,
		func(i int) bool { return batch.isNull(i) },
		func(i int, isNull bool) {
			switch {
			case isNull && padding:
				w.out.Write(make([]byte, 8*w.dim))
				w.pixelStat.IncrementNull()
			case isNull:
				w.pixelStat.IncrementNull()
			default:
				w.writeVector(batch.Vectors[i])
				w.pixelStat.Update(batch.Vectors[i], 1)
			}
		},
		w.NewPixel,
	)

	return w.out.Position(), nil
}

func (w *VectorWriter) writeVector(v []float64) {
	buf := make([]byte, 8*w.dim)
	for i := 0; i < w.dim; i++ {
		var x float64
		if i < len(v) {
			x = v[i]
		}
		binary.BigEndian.PutUint64(buf[i*8:], math.Float64bits(x))
	}
	w.out.Write(buf)
}

func (w *VectorWriter) NewPixel() {
	start := w.pixelStartPos

	w.chunkStat.Merge(w.pixelStat)
	w.index.AddPixel(start, w.pixelStat.Serialize())

	w.recordNullBitmap()
	w.pixelStat.Reset()
	w.nulls.Reset()
}

func (w *VectorWriter) Flush() {
	if w.nulls.Index() > 0 {
		w.NewPixel()
	}
	w.finishFlush()
}

func (w *VectorWriter) Close() { w.closeStreams() }

func (w *VectorWriter) Reset() {
	w.resetStreams()
	w.pixelStat.Reset()
	w.chunkStat.Reset()
}

func (w *VectorWriter) ChunkStat() stats.Recorder { return w.chunkStat }

func (w *VectorWriter) ChunkEncoding() pixel.Encoding { return pixel.None() }

func (w *VectorWriter) DecideNullsPadding(cfg pixel.Config) bool {
	return defaultDecideNullsPadding(cfg)
}

var _ Writer = (*VectorWriter)(nil)
