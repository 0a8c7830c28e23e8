package column

import (
	"math"

	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/gengdy1545/pixels/stats"
)

// FloatWriter implements Writer for FLOAT and DOUBLE columns. There is
// no per-pixel staging buffer: each non-null value is written
// immediately as 4 or 8 bytes, a raw bit-cast from the IEEE value in the
// configured endian. Encoding kind is always NONE (spec.md §4.7).
type FloatWriter struct {
	base

	width int // 4 for FLOAT, 8 for DOUBLE

	pixelStat *stats.FloatRecorder
	chunkStat *stats.FloatRecorder
}

// NewFloatWriter constructs a FloatWriter for the given category (FLOAT
// or DOUBLE).
func NewFloatWriter(category format.Category, cfg pixel.Config) *FloatWriter {
	width := 8
	if category == format.FLOAT {
		width = 4
	}

	w := &FloatWriter{
		base:      newBase(category, cfg),
		width:     width,
		pixelStat: stats.NewFloatRecorder(),
		chunkStat: stats.NewFloatRecorder(),
	}
	w.setEffectiveNullsPadding(w.DecideNullsPadding(cfg))

	return w
}

func (w *FloatWriter) Write(batch ValueBatch, n int) (int, error) {
	if err := w.checkNotClosed(); err != nil {
		return 0, err
	}
	if err := w.checkKind(batch.Kind); err != nil {
		return 0, err
	}
	if err := w.checkRange(len(batch.Float64s), n); err != nil {
		return 0, err
	}

	padding := w.effectiveNullsPadding
	w.partition(n,
		func(i int) bool { return batch.isNull(i) },
		func(i int, isNull bool) {
			switch {
			case isNull && padding:
				w.writeRaw(0)
				w.pixelStat.IncrementNull()
			case isNull:
				w.pixelStat.IncrementNull()
			default:
				v := batch.Float64s[i]
				w.writeRaw(v)
				w.pixelStat.Update(v, 1)
			}
		},
		w.NewPixel,
	)

	return w.out.Position(), nil
}

func (w *FloatWriter) writeRaw(v float64) {
	order := w.cfg.ByteOrder()
	if w.width == 4 {
		var buf [4]byte
		order.PutUint32(buf[:], math.Float32bits(float32(v)))
		w.out.Write(buf[:])
	} else {
		var buf [8]byte
		order.PutUint64(buf[:], math.Float64bits(v))
		w.out.Write(buf[:])
	}
}

func (w *FloatWriter) NewPixel() {
	start := w.pixelStartPos

	w.chunkStat.Merge(w.pixelStat)
	w.index.AddPixel(start, w.pixelStat.Serialize())

	w.recordNullBitmap()
	w.pixelStat.Reset()
	w.nulls.Reset()
}

func (w *FloatWriter) Flush() {
	if w.nulls.Index() > 0 {
		w.NewPixel()
	}
	w.finishFlush()
}

func (w *FloatWriter) Close() {
	w.closeStreams()
}

func (w *FloatWriter) Reset() {
	w.resetStreams()
	w.pixelStat.Reset()
	w.chunkStat.Reset()
}

func (w *FloatWriter) ChunkStat() stats.Recorder { return w.chunkStat }

func (w *FloatWriter) ChunkEncoding() pixel.Encoding { return pixel.None() }

func (w *FloatWriter) DecideNullsPadding(cfg pixel.Config) bool {
	return defaultDecideNullsPadding(cfg)
}

var _ Writer = (*FloatWriter)(nil)
