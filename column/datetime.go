package column

import (
	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/internal/pool"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/gengdy1545/pixels/rle"
	"github.com/gengdy1545/pixels/stats"
)

// DateTimeWriter implements Writer for DATE, TIME, and TIMESTAMP columns.
// DATE and TIME are logically 32-bit and TIMESTAMP is 64-bit, but all
// three stage as int64 and cascade into a signed, zig-zag
// RunLengthIntEncoder at EL2 (spec.md §4.7: "Time may be negative across
// time zones; dates can predate epoch" is exactly why this family, unlike
// plain Integer, always encodes signed).
type DateTimeWriter struct {
	base

	staged        []int64
	stagedCleanup func()

	pixelStat *stats.IntRecorder
	chunkStat *stats.IntRecorder
}

// NewDateTimeWriter constructs a DateTimeWriter for the given category
// (DATE, TIME, or TIMESTAMP).
func NewDateTimeWriter(category format.Category, cfg pixel.Config) *DateTimeWriter {
	staged, cleanup := pool.GetInt64Slice(cfg.PixelStride())

	w := &DateTimeWriter{
		base:          newBase(category, cfg),
		staged:        staged,
		stagedCleanup: cleanup,
		pixelStat:     stats.NewIntRecorder(),
		chunkStat:     stats.NewIntRecorder(),
	}
	w.setEffectiveNullsPadding(w.DecideNullsPadding(cfg))

	return w
}

func (w *DateTimeWriter) Write(batch ValueBatch, n int) (int, error) {
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

func (w *DateTimeWriter) NewPixel() {
	start := w.pixelStartPos
	n := w.stagedLen

	if w.cfg.EncodingLevel() >= format.EL2 {
		enc := rle.NewIntEncoder(true, w.category != format.TIMESTAMP)
		enc.Encode(w.staged[:n], n)
		w.out.Write(enc.Bytes())
		enc.Close()
	} else if w.category == format.TIMESTAMP {
		order := w.cfg.ByteOrder()
		for _, v := range w.staged[:n] {
			var buf [8]byte
			order.PutUint64(buf[:], uint64(v)) //nolint:gosec
			w.out.Write(buf[:])
		}
	} else {
		// DATE and TIME are logically 32-bit (spec.md §4.7); raw mode
		// writes the 4-byte truncation instead of TIMESTAMP's 8 bytes,
		// matching DateColumnWriter.cpp's int-width output.
		order := w.cfg.ByteOrder()
		for _, v := range w.staged[:n] {
			var buf [4]byte
			order.PutUint32(buf[:], uint32(v)) //nolint:gosec
			w.out.Write(buf[:])
		}
	}

	w.chunkStat.Merge(w.pixelStat)
	w.index.AddPixel(start, w.pixelStat.Serialize())

	w.recordNullBitmap()
	w.pixelStat.Reset()
	w.resetPixelCounters()
}

func (w *DateTimeWriter) Flush() {
	if w.nulls.Index() > 0 {
		w.NewPixel()
	}
	w.finishFlush()
}

func (w *DateTimeWriter) Close() {
	w.closeStreams()
	if w.stagedCleanup != nil {
		w.stagedCleanup()
		w.stagedCleanup = nil
	}
}

func (w *DateTimeWriter) Reset() {
	w.resetStreams()
	w.pixelStat.Reset()
	w.chunkStat.Reset()
}

func (w *DateTimeWriter) ChunkStat() stats.Recorder { return w.chunkStat }

func (w *DateTimeWriter) ChunkEncoding() pixel.Encoding {
	if w.cfg.EncodingLevel() >= format.EL2 {
		return pixel.RunLength()
	}

	return pixel.None()
}

func (w *DateTimeWriter) DecideNullsPadding(cfg pixel.Config) bool {
	return cascadingDecideNullsPadding(cfg)
}

var _ Writer = (*DateTimeWriter)(nil)
