package column

import (
	"github.com/gengdy1545/pixels/dict"
	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/internal/pool"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/gengdy1545/pixels/rle"
	"github.com/gengdy1545/pixels/stats"
)

// StringWriter implements Writer for STRING, CHAR, and VARCHAR columns,
// per spec.md §4.7's two string modes.
//
// At EL1 and above, values resolve through a Dictionary to a dense code;
// codes are staged per pixel and, at EL2, run-length encoded, else
// written as raw 4-byte ints. At EL0, values are written directly to
// the content region and an auxiliary starts array records each
// logical value's content offset so positions stay random-accessible.
//
// VARCHAR and CHAR share this implementation via maxLength: CHAR's only
// difference is that it pins DecideNullsPadding to the non-cascading
// policy instead of the EL2 override (spec.md §4.7: "Char inherits from
// Varchar but disables decideNullsPadding's EL2 override behavior").
type StringWriter struct {
	base

	maxLength  int // 0 means unbounded (STRING)
	isChar     bool
	dictionary bool // true once EncodingLevel >= EL1

	dict        *dict.Dictionary
	codeStaged  []int64
	codeCleanup func()

	starts []int64 // direct mode only: content offset of each value

	pixelStat *stats.StringRecorder
	chunkStat *stats.StringRecorder
}

// NewStringWriter constructs a StringWriter for STRING, CHAR, or
// VARCHAR. maxLength is ignored (treated as unbounded) for STRING.
func NewStringWriter(category format.Category, maxLength int, cfg pixel.Config) *StringWriter {
	w := &StringWriter{
		base:       newBase(category, cfg),
		maxLength:  maxLength,
		isChar:     category == format.CHAR,
		dictionary: cfg.EncodingLevel() >= format.EL1,
		pixelStat:  stats.NewStringRecorder(),
		chunkStat:  stats.NewStringRecorder(),
	}

	if w.dictionary {
		w.dict = dict.New()
		w.codeStaged, w.codeCleanup = pool.GetInt64Slice(cfg.PixelStride())
	}

	w.setEffectiveNullsPadding(w.DecideNullsPadding(cfg))

	return w
}

func (w *StringWriter) truncate(s string) (string, bool) {
	if w.maxLength <= 0 || len(s) <= w.maxLength {
		return s, false
	}

	return s[:w.maxLength], true
}

func (w *StringWriter) Write(batch ValueBatch, n int) (int, error) {
	if err := w.checkNotClosed(); err != nil {
		return 0, err
	}
	if err := w.checkKind(batch.Kind); err != nil {
		return 0, err
	}
	if err := w.checkRange(len(batch.Strings), n); err != nil {
		return 0, err
	}

	padding := w.effectiveNullsPadding
	w.partition(n,
		func(i int) bool { return batch.isNull(i) },
		func(i int, isNull bool) {
			if w.dictionary {
				w.emitDictionary(batch, i, isNull, padding)
			} else {
				w.emitDirect(batch, i, isNull, padding)
			}
		},
		w.NewPixel,
	)

	return w.out.Position(), nil
}

func (w *StringWriter) emitDictionary(batch ValueBatch, i int, isNull, padding bool) {
	switch {
	case isNull && padding:
		w.codeStaged[w.stagedLen] = 0
		w.stagedLen++
		w.pixelStat.IncrementNull()
	case isNull:
		w.pixelStat.IncrementNull()
	default:
		v, truncated := w.truncate(batch.Strings[i])
		if truncated {
			w.pixelStat.IncrementTruncated()
		}
		code := w.dict.Add([]byte(v), 0, len(v))
		w.codeStaged[w.stagedLen] = int64(code)
		w.stagedLen++
		w.pixelStat.Update(v, 1)
	}
}

func (w *StringWriter) emitDirect(batch ValueBatch, i int, isNull, padding bool) {
	switch {
	case isNull && padding:
		w.starts = append(w.starts, int64(w.out.Position()))
		w.pixelStat.IncrementNull()
	case isNull:
		// not padded: no starts entry, position not random-accessible.
		w.pixelStat.IncrementNull()
	default:
		v, truncated := w.truncate(batch.Strings[i])
		if truncated {
			w.pixelStat.IncrementTruncated()
		}
		w.starts = append(w.starts, int64(w.out.Position()))
		w.out.Write([]byte(v))
		w.pixelStat.Update(v, 1)
	}
}

func (w *StringWriter) NewPixel() {
	start := w.pixelStartPos

	if w.dictionary {
		n := w.stagedLen
		if w.cfg.EncodingLevel() >= format.EL2 {
			enc := rle.NewIntEncoder(false, false)
			enc.Encode(w.codeStaged[:n], n)
			w.out.Write(enc.Bytes())
			enc.Close()
		} else {
			order := w.cfg.ByteOrder()
			for _, c := range w.codeStaged[:n] {
				var buf [4]byte
				order.PutUint32(buf[:], uint32(c)) //nolint:gosec
				w.out.Write(buf[:])
			}
		}
	}

	w.chunkStat.Merge(w.pixelStat)
	w.index.AddPixel(start, w.pixelStat.Serialize())

	w.recordNullBitmap()
	w.pixelStat.Reset()
	w.resetPixelCounters()
}

// flushDictionaryTail writes dictionary content in code order, then a
// size+1 offsets array locating each key within that content blob, then
// two absolute offsets: where the content blob starts and where the
// offsets array starts (spec.md §4.7's (a) dictionary-mode flush tail).
func (w *StringWriter) flushDictionaryTail() {
	order := w.cfg.ByteOrder()

	contentStart := w.out.Position()
	offsets := make([]int64, 0, w.dict.Size()+1)
	relPos := int64(0)
	w.dict.Visit(func(ctx dict.VisitCtx) {
		offsets = append(offsets, relPos)
		buf := pool.NewByteBuffer(ctx.Len())
		ctx.WriteBytes(buf)
		w.out.Write(buf.Bytes())
		relPos += int64(ctx.Len())
	})
	offsets = append(offsets, relPos)

	offsetsStart := w.out.Position()
	if w.cfg.EncodingLevel() >= format.EL2 {
		enc := rle.NewIntEncoder(false, false)
		enc.Encode(offsets, len(offsets))
		w.out.Write(enc.Bytes())
		enc.Close()
	} else {
		for _, o := range offsets {
			var buf [8]byte
			order.PutUint64(buf[:], uint64(o)) //nolint:gosec
			w.out.Write(buf[:])
		}
	}

	var a, b [8]byte
	order.PutUint64(a[:], uint64(contentStart)) //nolint:gosec
	order.PutUint64(b[:], uint64(offsetsStart)) //nolint:gosec
	w.out.Write(a[:])
	w.out.Write(b[:])
}

// flushDirectTail writes the accumulated per-value starts array plus a
// trailing content-length sentinel (the content section's end offset,
// captured before the null bitmap was appended), then its own absolute
// offset (spec.md §4.7's (b) direct-mode flush tail).
func (w *StringWriter) flushDirectTail(contentEnd int64) {
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

func (w *StringWriter) Flush() {
	if w.nulls.Index() > 0 {
		w.NewPixel()
	}

	contentEnd := int64(w.out.Position())

	w.finishFlush()

	if w.dictionary {
		w.flushDictionaryTail()
	} else {
		w.flushDirectTail(contentEnd)
	}
}

func (w *StringWriter) Close() {
	w.closeStreams()
	if w.codeCleanup != nil {
		w.codeCleanup()
		w.codeCleanup = nil
	}
	if w.dict != nil {
		w.dict.Clear()
	}
}

func (w *StringWriter) Reset() {
	w.resetStreams()
	w.pixelStat.Reset()
	w.chunkStat.Reset()
	w.starts = w.starts[:0]
	if w.dict != nil {
		w.dict.Clear()
	}
}

func (w *StringWriter) ChunkStat() stats.Recorder { return w.chunkStat }

func (w *StringWriter) ChunkEncoding() pixel.Encoding {
	if !w.dictionary {
		return pixel.None()
	}
	if w.cfg.EncodingLevel() >= format.EL2 {
		return pixel.RunLengthOverDictionary(w.dict.Size())
	}

	return pixel.Dictionary(w.dict.Size())
}

func (w *StringWriter) DecideNullsPadding(cfg pixel.Config) bool {
	if w.isChar {
		return defaultDecideNullsPadding(cfg)
	}

	return cascadingDecideNullsPadding(cfg)
}

var _ Writer = (*StringWriter)(nil)
