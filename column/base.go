package column

import (
	"github.com/gengdy1545/pixels/bitutil"
	"github.com/gengdy1545/pixels/errs"
	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/pixel"
)

// base holds the bookkeeping every category writer shares: the output
// stream pixel content is encoded into, the chunk index, the per-pixel
// null-flag staging buffer, the isNull tail stream, and the writer's own
// category and config.
type base struct {
	category format.Category
	cfg      pixel.Config

	out          *pixel.OutputStream
	nulls        *pixel.NullsBitmap
	index        *pixel.ChunkIndex
	isNullStream *pixel.IsNullStream

	// pixelStartPos is the output stream's write position at the start
	// of the pixel currently being accumulated, i.e. before any of its
	// values have been written. Writers that write values immediately
	// (Float, Decimal, LongDecimal) must use this instead of
	// out.Position() inside NewPixel, since by the time NewPixel runs
	// their pixel's bytes are already written and out.Position() points
	// past the end of the pixel, not its start.
	pixelStartPos int

	// stagedLen is how many slots of a category writer's staged buffer
	// are actually populated for the current pixel. It differs from
	// nulls.Index() whenever nullsPadding is false: a null position
	// still advances nulls.Index() (it is a logical element) but
	// contributes no byte to the staged buffer at all, per spec.md §3's
	// "null positions contribute nothing to the encoded byte stream but
	// are still recorded [in the isNull bitmap]".
	stagedLen int

	effectiveNullsPadding bool
	closed                bool
}

func newBase(category format.Category, cfg pixel.Config) base {
	return base{
		category:     category,
		cfg:          cfg,
		out:          pixel.NewOutputStream(),
		nulls:        pixel.NewNullsBitmap(cfg.PixelStride()),
		index:        pixel.NewChunkIndex(cfg),
		isNullStream: pixel.NewIsNullStream(),
	}
}

// setEffectiveNullsPadding records the writer's DecideNullsPadding
// result both locally and in the chunk index, so ColumnChunkIndex.
// NullsPadding reports the effective policy actually applied to the
// bytes (spec.md §6: "nullsPadding: bool (effective policy)") rather
// than the raw, possibly-overridden cfg.NullsPadding().
func (b *base) setEffectiveNullsPadding(v bool) {
	b.effectiveNullsPadding = v
	b.index.NullsPadding = v
}

func (b *base) checkKind(kind format.Category) error {
	if kind != b.category {
		return errs.ErrInvalidVectorKind
	}

	return nil
}

// checkNotClosed rejects a Write call made after Close: per spec.md
// §5, "close must be called on every writer to release encoder
// buffers" and the writer is not usable afterward.
func (b *base) checkNotClosed() error {
	if b.closed {
		return errs.ErrWriterClosed
	}

	return nil
}

func (b *base) checkRange(batchLen, n int) error {
	if n < 0 || n > batchLen {
		return errs.ErrPixelOverflow
	}

	return nil
}

func (b *base) ChunkContent() []byte {
	return b.out.Bytes()
}

func (b *base) ChunkSize() int {
	return b.out.Position()
}

func (b *base) ChunkIndex() *pixel.ChunkIndex {
	return b.index
}

// emitFn encodes (or skips) logical position i of the current batch,
// given whether it is null; it is responsible for updating pixel
// statistics itself, since only the concrete writer knows how to
// interpret the batch.
type emitFn func(i int, isNull bool)

// partition implements the shared per-value algorithm of spec.md §4.6:
// split [0,n) at pixel boundaries, calling emit and recording the null
// flag for every logical position, and newPixel exactly at every
// boundary crossed — never after a trailing partial pixel.
func (b *base) partition(n int, isNull func(i int) bool, emit emitFn, newPixel func()) {
	offset := 0
	remaining := n

	for {
		take := b.cfg.PixelStride() - b.nulls.Index()
		if take > remaining {
			break
		}

		b.emitRange(offset, take, isNull, emit)
		newPixel()
		b.pixelStartPos = b.out.Position()
		offset += take
		remaining -= take
	}

	b.emitRange(offset, remaining, isNull, emit)
}

func (b *base) emitRange(offset, count int, isNull func(i int) bool, emit emitFn) {
	for i := offset; i < offset+count; i++ {
		null := isNull(i)
		emit(i, null)
		b.nulls.Set(b.nulls.Index(), null)
		b.nulls.Advance(1)
	}
}

// closeStreams releases the output, null-flag, and isNull pooled
// buffers. Shared by every category's Close.
func (b *base) closeStreams() {
	if b.closed {
		return
	}
	b.out.Close()
	b.nulls.Close()
	b.isNullStream.Close()
	b.closed = true
}

// resetStreams clears accumulated state without returning pooled buffers
// (Reset, unlike Close, leaves the writer usable).
func (b *base) resetStreams() {
	b.out.Reset()
	b.nulls.Reset()
	b.index.Reset()
	b.isNullStream.Reset()
	b.pixelStartPos = 0
	b.stagedLen = 0
}

// resetPixelCounters resets the per-pixel null-flag index and staged
// length at the end of NewPixel, for writers that use a staged buffer.
func (b *base) resetPixelCounters() {
	b.nulls.Reset()
	b.stagedLen = 0
}

func bitOrderFor(cfg pixel.Config) bitutil.Order {
	if cfg.LittleEndian() {
		return bitutil.LE
	}

	return bitutil.BE
}

// recordNullBitmap appends the compacted null bitmap for the pixel just
// closed to the isNull tail stream, only if the pixel contained any
// null, per spec.md §4.6's newPixel step.
func (b *base) recordNullBitmap() {
	if !b.nulls.HasAny() {
		return
	}

	packed := bitutil.Pack(b.nulls.Flags(), b.nulls.Index(), bitOrderFor(b.cfg))
	b.isNullStream.Write(packed)
}

// finishFlush pads the output stream with zero bytes so that the null
// bitmap section begins at an IsNullAlignment-aligned offset, records
// that aligned offset as IsNullOffset, and appends the isNull tail
// stream's content to the output stream, per spec.md §4.6's flush step
// and §6's chunk byte layout (padding precedes the null bitmap section).
func (b *base) finishFlush() {
	align := b.index.IsNullAlignment
	if align > 0 {
		if rem := b.out.Position() % align; rem != 0 {
			b.out.Write(make([]byte, align-rem))
		}
	}

	b.index.IsNullOffset = b.out.Position()
	b.out.Write(b.isNullStream.Bytes())
}

// defaultDecideNullsPadding is the non-cascading policy: return
// cfg.NullsPadding() verbatim.
func defaultDecideNullsPadding(cfg pixel.Config) bool {
	return cfg.NullsPadding()
}

// cascadingDecideNullsPadding is the policy shared by Byte, Integer,
// Date, Time, Timestamp and non-Char string writers: once the encoding
// level reaches EL2, nulls padding is forced off regardless of
// cfg.NullsPadding(), since a run-length encoder produces undefined
// statistics in padded-zero mode.
func cascadingDecideNullsPadding(cfg pixel.Config) bool {
	if cfg.EncodingLevel() >= format.EL2 {
		return false
	}

	return cfg.NullsPadding()
}
