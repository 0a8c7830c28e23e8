package column

import (
	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/int128"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/gengdy1545/pixels/stats"
)

// LongDecimalWriter implements Writer for long-decimal DECIMAL columns
// (precision > format.ShortDecimalMaxPrecision): each value is two
// 64-bit words, high-word-first when the configured byte order is BE
// and low-word-first when it is LE (spec.md §4.7). Like DecimalWriter,
// there is no per-pixel staging.
type LongDecimalWriter struct {
	base

	pixelStat *stats.LongDecimalRecorder
	chunkStat *stats.LongDecimalRecorder
}

// NewLongDecimalWriter constructs a LongDecimalWriter.
func NewLongDecimalWriter(cfg pixel.Config) *LongDecimalWriter {
	w := &LongDecimalWriter{
		base:      newBase(format.DECIMAL, cfg),
		pixelStat: stats.NewLongDecimalRecorder(),
		chunkStat: stats.NewLongDecimalRecorder(),
	}
	w.setEffectiveNullsPadding(w.DecideNullsPadding(cfg))

	return w
}

func (w *LongDecimalWriter) Write(batch ValueBatch, n int) (int, error) {
	if err := w.checkNotClosed(); err != nil {
		return 0, err
	}
	if err := w.checkKind(batch.Kind); err != nil {
		return 0, err
	}
	if err := w.checkRange(len(batch.Decimals), n); err != nil {
		return 0, err
	}

	padding := w.effectiveNullsPadding
	w.partition(n,
		func(i int) bool { return batch.isNull(i) },
		func(i int, isNull bool) {
			switch {
			case isNull && padding:
				w.writeWords(int128.Zero)
				w.pixelStat.IncrementNull()
			case isNull:
				w.pixelStat.IncrementNull()
			default:
				v := batch.Decimals[i]
				w.writeWords(v)
				w.pixelStat.Update(v, 1)
			}
		},
		w.NewPixel,
	)

	return w.out.Position(), nil
}

func (w *LongDecimalWriter) writeWords(v int128.Int128) {
	order := w.cfg.ByteOrder()
	var hi, lo [8]byte
	order.PutUint64(hi[:], uint64(v.High)) //nolint:gosec
	order.PutUint64(lo[:], v.Low)

	if w.cfg.LittleEndian() {
		w.out.Write(lo[:])
		w.out.Write(hi[:])
	} else {
		w.out.Write(hi[:])
		w.out.Write(lo[:])
	}
}

func (w *LongDecimalWriter) NewPixel() {
	start := w.pixelStartPos

	w.chunkStat.Merge(w.pixelStat)
	w.index.AddPixel(start, w.pixelStat.Serialize())

	w.recordNullBitmap()
	w.pixelStat.Reset()
	w.nulls.Reset()
}

func (w *LongDecimalWriter) Flush() {
	if w.nulls.Index() > 0 {
		w.NewPixel()
	}
	w.finishFlush()
}

func (w *LongDecimalWriter) Close() { w.closeStreams() }

func (w *LongDecimalWriter) Reset() {
	w.resetStreams()
	w.pixelStat.Reset()
	w.chunkStat.Reset()
}

func (w *LongDecimalWriter) ChunkStat() stats.Recorder { return w.chunkStat }

func (w *LongDecimalWriter) ChunkEncoding() pixel.Encoding { return pixel.None() }

func (w *LongDecimalWriter) DecideNullsPadding(cfg pixel.Config) bool {
	return defaultDecideNullsPadding(cfg)
}

var _ Writer = (*LongDecimalWriter)(nil)
