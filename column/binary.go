package column

import (
	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/gengdy1545/pixels/stats"
)

// BinaryWriter implements Writer for BINARY and VARBINARY columns.
// Values are written directly to the content region in arrival order;
// an auxiliary per-value starts array records each logical value's
// content offset, identical in shape to StringWriter's direct mode
// (spec.md §4.7). BINARY truncates to maxLength and counts truncation;
// VARBINARY is unbounded.
type BinaryWriter struct {
	base

	maxLength int // 0 means unbounded (VARBINARY)

	starts []int64

	pixelStat *stats.BinaryRecorder
	chunkStat *stats.BinaryRecorder
}

// NewBinaryWriter constructs a BinaryWriter for BINARY or VARBINARY.
// maxLength is ignored (treated as unbounded) for VARBINARY.
func NewBinaryWriter(category format.Category, maxLength int, cfg pixel.Config) *BinaryWriter {
	w := &BinaryWriter{
		base:      newBase(category, cfg),
		maxLength: maxLength,
		pixelStat: stats.NewBinaryRecorder(),
		chunkStat: stats.NewBinaryRecorder(),
	}
	w.setEffectiveNullsPadding(w.DecideNullsPadding(cfg))

	return w
}

func (w *BinaryWriter) truncate(b []byte) ([]byte, bool) {
	if w.maxLength <= 0 || len(b) <= w.maxLength {
		return b, false
	}

	return b[:w.maxLength], true
}

func (w *BinaryWriter) Write(batch ValueBatch, n int) (int, error) {
	if err := w.checkNotClosed(); err != nil {
		return 0, err
	}
	if err := w.checkKind(batch.Kind); err != nil {
		return 0, err
	}
	if err := w.checkRange(len(batch.Binaries), n); err != nil {
		return 0, err
	}

	padding := w.effectiveNullsPadding
	w.partition(n,
		func(i int) bool { return batch.isNull(i) },
		func(i int, isNull bool) {
			switch {
			case isNull && padding:
				w.starts = append(w.starts, int64(w.out.Position()))
				w.pixelStat.IncrementNull()
			case isNull:
				w.pixelStat.IncrementNull()
			default:
				v, truncated := w.truncate(batch.Binaries[i])
				if truncated {
					w.pixelStat.IncrementTruncated()
				}
				w.starts = append(w.starts, int64(w.out.Position()))
				w.out.Write(v)
				w.pixelStat.Update(v, 1)
			}
		},
		w.NewPixel,
	)

	return w.out.Position(), nil
}

func (w *BinaryWriter) NewPixel() {
	start := w.pixelStartPos

	w.chunkStat.Merge(w.pixelStat)
	w.index.AddPixel(start, w.pixelStat.Serialize())

	w.recordNullBitmap()
	w.pixelStat.Reset()
	w.resetPixelCounters()
}

func (w *BinaryWriter) Flush() {
	if w.nulls.Index() > 0 {
		w.NewPixel()
	}

	contentEnd := int64(w.out.Position())

	w.finishFlush()

	order := w.cfg.ByteOrder()
	startsOffset := w.out.Position()
	for _, s := range append(w.starts, contentEnd) { //nolint:gocritic
		var buf [8]byte
		order.PutUint64(buf[:], uint64(s)) //nolint:gosec
		w.out.Write(buf[:])
	}

	var buf [8]byte
	order.PutUint64(buf[:], uint64(startsOffset)) //nolint:gosec
	w.out.Write(buf[:])
}

func (w *BinaryWriter) Close() {
	w.closeStreams()
}

func (w *BinaryWriter) Reset() {
	w.resetStreams()
	w.pixelStat.Reset()
	w.chunkStat.Reset()
	w.starts = w.starts[:0]
}

func (w *BinaryWriter) ChunkStat() stats.Recorder { return w.chunkStat }

func (w *BinaryWriter) ChunkEncoding() pixel.Encoding { return pixel.None() }

func (w *BinaryWriter) DecideNullsPadding(cfg pixel.Config) bool {
	return defaultDecideNullsPadding(cfg)
}

var _ Writer = (*BinaryWriter)(nil)
