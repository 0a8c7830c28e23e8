package column

import (
	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/internal/pool"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/gengdy1545/pixels/rle"
	"github.com/gengdy1545/pixels/stats"
)

// IntegerWriter implements Writer for SHORT, INT, and LONG columns. Every
// width is staged as a 64-bit value; at EL2 the staged pixel is encoded
// through an unsigned RunLengthIntEncoder, otherwise raw 8-byte values
// are written in the configured endian (spec.md §4.7).
type IntegerWriter struct {
	base

	staged        []int64
	stagedCleanup func()

	pixelStat *stats.IntRecorder
	chunkStat *stats.IntRecorder
}

// NewIntegerWriter constructs an IntegerWriter for the given integer
// category (SHORT, INT, or LONG).
func NewIntegerWriter(category format.Category, cfg pixel.Config) *IntegerWriter {
	staged, cleanup := pool.GetInt64Slice(cfg.PixelStride())

	w := &IntegerWriter{
		base:          newBase(category, cfg),
		staged:        staged,
		stagedCleanup: cleanup,
		pixelStat:     stats.NewIntRecorder(),
		chunkStat:     stats.NewIntRecorder(),
	}
	w.setEffectiveNullsPadding(w.DecideNullsPadding(cfg))

	return w
}

func (w *IntegerWriter) Write(batch ValueBatch, n int) (int, error) {
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
	w.partition(n,
		func(i int) bool { return batch.isNull(i) },
		func(i int, isNull bool) {
			switch {
			case isNull && padding:
				w.staged[w.stagedLen] = 0
				w.stagedLen++
				w.pixelStat.IncrementNull()
			case isNull:
				w.pixelStat.IncrementNull()
			default:
				w.staged[w.stagedLen] = batch.Int64s[i]
				w.stagedLen++
				w.pixelStat.Update(batch.Int64s[i], 1)
			}
		},
		w.NewPixel,
	)

	return w.out.Position(), nil
}

func (w *IntegerWriter) NewPixel() {
	start := w.pixelStartPos
	n := w.stagedLen

	if w.cfg.EncodingLevel() >= format.EL2 {
		enc := rle.NewIntEncoder(false, false)
		enc.Encode(w.staged[:n], n)
		w.out.Write(enc.Bytes())
		enc.Close()
	} else {
		order := w.cfg.ByteOrder()
		for _, v := range w.staged[:n] {
			var buf [8]byte
			order.PutUint64(buf[:], uint64(v)) //nolint:gosec
			w.out.Write(buf[:])
		}
	}

	w.chunkStat.Merge(w.pixelStat)
	w.index.AddPixel(start, w.pixelStat.Serialize())

	w.recordNullBitmap()
	w.pixelStat.Reset()
	w.resetPixelCounters()
}

func (w *IntegerWriter) Flush() {
	if w.nulls.Index() > 0 {
		w.NewPixel()
	}
	w.finishFlush()
}

func (w *IntegerWriter) Close() {
	w.closeStreams()
	if w.stagedCleanup != nil {
		w.stagedCleanup()
		w.stagedCleanup = nil
	}
}

func (w *IntegerWriter) Reset() {
	w.resetStreams()
	w.pixelStat.Reset()
	w.chunkStat.Reset()
}

func (w *IntegerWriter) ChunkStat() stats.Recorder { return w.chunkStat }

func (w *IntegerWriter) ChunkEncoding() pixel.Encoding {
	if w.cfg.EncodingLevel() >= format.EL2 {
		return pixel.RunLength()
	}

	return pixel.None()
}

func (w *IntegerWriter) DecideNullsPadding(cfg pixel.Config) bool {
	return cascadingDecideNullsPadding(cfg)
}

var _ Writer = (*IntegerWriter)(nil)
