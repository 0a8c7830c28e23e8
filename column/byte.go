package column

import (
	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/internal/pool"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/gengdy1545/pixels/rle"
	"github.com/gengdy1545/pixels/stats"
)

// ByteWriter implements Writer for BYTE columns: bytes are staged per
// pixel and, at EL2, run through RunLengthByteEncoder; otherwise they
// are written raw (spec.md §4.7).
type ByteWriter struct {
	base

	staged        []byte
	stagedCleanup func()

	pixelStat *stats.IntRecorder
	chunkStat *stats.IntRecorder
}

// NewByteWriter constructs a ByteWriter.
func NewByteWriter(cfg pixel.Config) *ByteWriter {
	staged, cleanup := pool.GetByteSlice(cfg.PixelStride())

	w := &ByteWriter{
		base:          newBase(format.BYTE, cfg),
		staged:        staged,
		stagedCleanup: cleanup,
		pixelStat:     stats.NewIntRecorder(),
		chunkStat:     stats.NewIntRecorder(),
	}
	w.setEffectiveNullsPadding(w.DecideNullsPadding(cfg))

	return w
}

func (w *ByteWriter) Write(batch ValueBatch, n int) (int, error) {
	if err := w.checkNotClosed(); err != nil {
		return 0, err
	}
	if err := w.checkKind(batch.Kind); err != nil {
		return 0, err
	}
	if err := w.checkRange(len(batch.Bytes), n); err != nil {
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
				w.staged[w.stagedLen] = batch.Bytes[i]
				w.stagedLen++
				w.pixelStat.Update(int64(batch.Bytes[i]), 1)
			}
		},
		w.NewPixel,
	)

	return w.out.Position(), nil
}

func (w *ByteWriter) NewPixel() {
	start := w.pixelStartPos
	n := w.stagedLen

	if w.cfg.EncodingLevel() >= format.EL2 {
		enc := rle.NewByteEncoder()
		enc.Encode(w.staged[:n])
		enc.Flush()
		w.out.Write(enc.Bytes())
		enc.Close()
	} else {
		w.out.Write(w.staged[:n])
	}

	w.chunkStat.Merge(w.pixelStat)
	w.index.AddPixel(start, w.pixelStat.Serialize())

	w.recordNullBitmap()
	w.pixelStat.Reset()
	w.resetPixelCounters()
}

func (w *ByteWriter) Flush() {
	if w.nulls.Index() > 0 {
		w.NewPixel()
	}
	w.finishFlush()
}

func (w *ByteWriter) Close() {
	w.closeStreams()
	if w.stagedCleanup != nil {
		w.stagedCleanup()
		w.stagedCleanup = nil
	}
}

func (w *ByteWriter) Reset() {
	w.resetStreams()
	w.pixelStat.Reset()
	w.chunkStat.Reset()
}

func (w *ByteWriter) ChunkStat() stats.Recorder { return w.chunkStat }

func (w *ByteWriter) ChunkEncoding() pixel.Encoding {
	if w.cfg.EncodingLevel() >= format.EL2 {
		return pixel.RunLength()
	}

	return pixel.None()
}

func (w *ByteWriter) DecideNullsPadding(cfg pixel.Config) bool {
	return cascadingDecideNullsPadding(cfg)
}

var _ Writer = (*ByteWriter)(nil)
