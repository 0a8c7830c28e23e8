package pixel

// ChunkIndex accumulates the per-chunk index metadata a column writer
// builds incrementally and seals at flush, per spec.md §3's
// ColumnChunkIndex entity.
type ChunkIndex struct {
	// PixelPositions[i] is the output-stream write position at the start
	// of pixel i.
	PixelPositions []int

	// PixelStatistics[i] is the serialized per-pixel StatisticsRecorder
	// for pixel i.
	PixelStatistics [][]byte

	IsNullOffset int
	LittleEndian bool

	// NullsPadding is the effective nulls-padding policy actually applied
	// to the encoded bytes, per spec.md §6 ("nullsPadding: bool (effective
	// policy)") — not necessarily cfg.NullsPadding() verbatim, since
	// cascading writers override it at EL2. The writer overwrites this
	// with its DecideNullsPadding result once constructed.
	NullsPadding    bool
	IsNullAlignment int
}

// NewChunkIndex returns an empty ChunkIndex seeded with the writer's
// configuration; NullsPadding is provisionally cfg.NullsPadding() until
// the writer overwrites it with its effective policy, and IsNullOffset
// is filled in at Flush.
func NewChunkIndex(cfg Config) *ChunkIndex {
	return &ChunkIndex{
		LittleEndian:    cfg.LittleEndian(),
		NullsPadding:    cfg.NullsPadding(),
		IsNullAlignment: cfg.IsNullAlignment(),
	}
}

// AddPixel records the start position and serialized statistics of the
// pixel just closed by newPixel.
func (ci *ChunkIndex) AddPixel(position int, stat []byte) {
	ci.PixelPositions = append(ci.PixelPositions, position)
	ci.PixelStatistics = append(ci.PixelStatistics, stat)
}

// PixelCount returns the number of pixels recorded so far.
func (ci *ChunkIndex) PixelCount() int {
	return len(ci.PixelPositions)
}

// Reset clears the index back to empty, keeping the configuration fields.
func (ci *ChunkIndex) Reset() {
	ci.PixelPositions = ci.PixelPositions[:0]
	ci.PixelStatistics = ci.PixelStatistics[:0]
	ci.IsNullOffset = 0
}
