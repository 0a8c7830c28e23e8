package column

import (
	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/gengdy1545/pixels/stats"
)

// DecimalWriter implements Writer for short-decimal DECIMAL columns
// (precision <= format.ShortDecimalMaxPrecision): each value is its
// unscaled 64-bit two's-complement representation, written immediately
// with no per-pixel staging, still honoring pixel boundaries via the
// shared partition loop (spec.md §4.7).
type DecimalWriter struct {
	base

	pixelStat *stats.IntRecorder
	chunkStat *stats.IntRecorder
}

// NewDecimalWriter constructs a DecimalWriter.
func NewDecimalWriter(cfg pixel.Config) *DecimalWriter {
	w := &DecimalWriter{
		base:      newBase(format.DECIMAL, cfg),
		pixelStat: stats.NewIntRecorder(),
		chunkStat: stats.NewIntRecorder(),
	}
	w.setEffectiveNullsPadding(w.DecideNullsPadding(cfg))

	return w
}

func (w *DecimalWriter) Write(batch ValueBatch, n int) (int, error) {
	if err := w.checkNotClosed(); err != nil {
		return 0, err
	}
	if err := w.checkKind(batch.Kind); err != nil {
		return 0, err
	}
	if err := w.checkRange(len(batch.Int64s), n); err != nil {
		return 0, err
	}

	padding := w.effectiveNullsPadding
	order := w.cfg.ByteOrder()
	w.partition(n,
		func(i int) bool { return batch.isNull(i) },
		func(i int, isNull bool) {
			switch {
			case isNull && padding:
				var buf [8]byte
				w.out.Write(buf[:])
				w.pixelStat.IncrementNull()
			case isNull:
				w.pixelStat.IncrementNull()
			default:
				v := batch.Int64s[i]
				var buf [8]byte
				order.PutUint64(buf[:], uint64(v)) //nolint:gosec
				w.out.Write(buf[:])
				w.pixelStat.Update(v, 1)
			}
		},
		w.NewPixel,
	)

	return w.out.Position(), nil
}

func (w *DecimalWriter) NewPixel() {
	start := w.pixelStartPos

	w.chunkStat.Merge(w.pixelStat)
	w.index.AddPixel(start, w.pixelStat.Serialize())

	w.recordNullBitmap()
	w.pixelStat.Reset()
	w.nulls.Reset()
}

func (w *DecimalWriter) Flush() {
	if w.nulls.Index() > 0 {
		w.NewPixel()
	}
	w.finishFlush()
}

func (w *DecimalWriter) Close() { w.closeStreams() }

func (w *DecimalWriter) Reset() {
	w.resetStreams()
	w.pixelStat.Reset()
	w.chunkStat.Reset()
}

func (w *DecimalWriter) ChunkStat() stats.Recorder { return w.chunkStat }

func (w *DecimalWriter) ChunkEncoding() pixel.Encoding { return pixel.None() }

func (w *DecimalWriter) DecideNullsPadding(cfg pixel.Config) bool {
	return defaultDecideNullsPadding(cfg)
}

var _ Writer = (*DecimalWriter)(nil)
