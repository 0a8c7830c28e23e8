// Package column implements one TypedColumnWriter per logical value
// category (spec.md §4.6–§4.8): the per-row dispatch loop that partitions
// a value batch across pixel boundaries, stages and encodes each pixel,
// collects per-pixel and per-chunk statistics, and records chunk index
// and encoding metadata.
package column

import (
	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/int128"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/gengdy1545/pixels/stats"
)

// ValueBatch is the typed input a Writer consumes. Kind identifies which
// field is populated; a Writer rejects a batch whose Kind does not match
// its own category. Nulls, if non-nil, must have the same length as the
// populated value slice; a nil Nulls means no value in the batch is null.
type ValueBatch struct {
	Kind format.Category

	Bools    []bool
	Bytes    []byte
	Int64s   []int64
	Float64s []float64
	Decimals []int128.Int128
	Strings  []string
	Binaries [][]byte
	Vectors  [][]float64

	Nulls []bool
}

// Len returns the number of logical values the populated slice for Kind
// holds.
func (b ValueBatch) Len() int {
	switch b.Kind {
	case format.BOOLEAN:
		return len(b.Bools)
	case format.BYTE:
		return len(b.Bytes)
	case format.SHORT, format.INT, format.LONG, format.DATE, format.TIME, format.TIMESTAMP, format.DECIMAL:
		return len(b.Int64s)
	case format.FLOAT, format.DOUBLE:
		return len(b.Float64s)
	case format.STRING, format.CHAR, format.VARCHAR:
		return len(b.Strings)
	case format.BINARY, format.VARBINARY:
		return len(b.Binaries)
	case format.VECTOR:
		return len(b.Vectors)
	default:
		return 0
	}
}

func (b ValueBatch) isNull(i int) bool {
	return b.Nulls != nil && b.Nulls[i]
}

// Writer is the contract every category-specific column writer
// implements, per spec.md §4.6's TypedColumnWriter.
type Writer interface {
	// Write consumes n logical values from batch, returning the output
	// stream's write position after encoding. It returns
	// errs.ErrWriterClosed if the writer was already Closed,
	// errs.ErrInvalidVectorKind if batch.Kind does not match the
	// writer's category, and errs.ErrPixelOverflow if n exceeds what
	// remains in the batch's populated slice.
	Write(batch ValueBatch, n int) (int, error)

	// NewPixel flushes the current pixel's staged state to the output
	// stream, merges pixel statistics into the chunk statistics, records
	// the pixel's start position and serialized stats in the chunk
	// index, and resets per-pixel counters.
	NewPixel()

	// Flush closes out any pending partial pixel, aligns and appends the
	// null bitmap tail to the output stream, and records IsNullOffset.
	Flush()

	// Close releases pooled encoder buffers. The writer must not be used
	// afterward.
	Close()

	// Reset zeroes counters and clears the index and streams, leaving
	// the writer ready to encode a fresh chunk.
	Reset()

	// ChunkContent returns the finished chunk's byte content. Only
	// meaningful after Flush.
	ChunkContent() []byte

	// ChunkSize returns len(ChunkContent()).
	ChunkSize() int

	// ChunkIndex returns the accumulated pixel index metadata.
	ChunkIndex() *pixel.ChunkIndex

	// ChunkStat returns the merged chunk-level statistics.
	ChunkStat() stats.Recorder

	// ChunkEncoding returns the encoding actually applied to this chunk.
	ChunkEncoding() pixel.Encoding

	// DecideNullsPadding is the policy hook of spec.md §4.6: categories
	// that cascade into run-length ignore cfg.NullsPadding() once
	// cfg.EncodingLevel() reaches EL2.
	DecideNullsPadding(cfg pixel.Config) bool
}
