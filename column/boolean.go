package column

import (
	"github.com/gengdy1545/pixels/bitutil"
	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/internal/pool"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/gengdy1545/pixels/stats"
)

// BooleanWriter implements Writer for BOOLEAN columns: booleans are
// staged into a per-pixel buffer and bit-packed at every pixel boundary.
// Encoding kind is always NONE (spec.md §4.7).
type BooleanWriter struct {
	base

	staged        []bool
	stagedCleanup func()

	pixelStat *stats.BoolRecorder
	chunkStat *stats.BoolRecorder
}

// NewBooleanWriter constructs a BooleanWriter.
func NewBooleanWriter(cfg pixel.Config) *BooleanWriter {
	staged, cleanup := pool.GetBoolSlice(cfg.PixelStride())

	w := &BooleanWriter{
		base:          newBase(format.BOOLEAN, cfg),
		staged:        staged,
		stagedCleanup: cleanup,
		pixelStat:     stats.NewBoolRecorder(),
		chunkStat:     stats.NewBoolRecorder(),
	}
	w.setEffectiveNullsPadding(w.DecideNullsPadding(cfg))

	return w
}

func (w *BooleanWriter) Write(batch ValueBatch, n int) (int, error) {
	if err := w.checkNotClosed(); err != nil {
		return 0, err
	}
	if err := w.checkKind(batch.Kind); err != nil {
		return 0, err
	}
	if err := w.checkRange(len(batch.Bools), n); err != nil {
		return 0, err
	}

	padding := w.effectiveNullsPadding
	w.partition(n,
		func(i int) bool { return batch.isNull(i) },
		func(i int, isNull bool) {
			switch {
			case isNull && padding:
				w.staged[w.stagedLen] = false
				w.stagedLen++
				w.pixelStat.IncrementNull()
			case isNull:
				// not padded: no byte contributed, isNull recorded only
				w.pixelStat.IncrementNull()
			default:
				w.staged[w.stagedLen] = batch.Bools[i]
				w.stagedLen++
				w.pixelStat.Update(batch.Bools[i], 1)
			}
		},
		w.NewPixel,
	)

	return w.out.Position(), nil
}

func (w *BooleanWriter) NewPixel() {
	start := w.pixelStartPos
	packed := bitutil.Pack(w.staged[:w.stagedLen], w.stagedLen, bitOrderFor(w.cfg))
	w.out.Write(packed)

	w.chunkStat.Merge(w.pixelStat)
	w.index.AddPixel(start, w.pixelStat.Serialize())

	w.recordNullBitmap()
	w.pixelStat.Reset()
	w.resetPixelCounters()
}

func (w *BooleanWriter) Flush() {
	if w.nulls.Index() > 0 {
		w.NewPixel()
	}
	w.finishFlush()
}

func (w *BooleanWriter) Close() {
	w.closeStreams()
	if w.stagedCleanup != nil {
		w.stagedCleanup()
		w.stagedCleanup = nil
	}
}

func (w *BooleanWriter) Reset() {
	w.resetStreams()
	w.pixelStat.Reset()
	w.chunkStat.Reset()
}

func (w *BooleanWriter) ChunkStat() stats.Recorder { return w.chunkStat }

func (w *BooleanWriter) ChunkEncoding() pixel.Encoding { return pixel.None() }

func (w *BooleanWriter) DecideNullsPadding(cfg pixel.Config) bool {
	return defaultDecideNullsPadding(cfg)
}

var _ Writer = (*BooleanWriter)(nil)
