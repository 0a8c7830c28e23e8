package visibility

// patchChunkSize is the fixed size of each allocated patch block, per
// spec.md §4.10's "linked 4096-byte PatchChunk" layout.
const patchChunkSize = 4096

// patchChunk is one fixed-size block of a tile's patch byte stream. Chunks
// are linked in append order; baseOffset is this chunk's position in the
// logical (never-reset) global byte stream, so EpochInfo.PatchStart and
// PatchEnd can address bytes without caring which chunk currently holds
// them.
type patchChunk struct {
	data       [patchChunkSize]byte
	used       int
	baseOffset int
	next       *patchChunk
}

// patchLog is the append-only, chunk-linked byte stream a tile's
// EpochLog writes its snapshots and delete bytes into. Only the tail
// chunk is ever partially filled; every earlier chunk is exactly
// patchChunkSize bytes long, which lets read locate a global
// offset without scanning byte-by-byte.
type patchLog struct {
	head *patchChunk
	tail *patchChunk
	pos  int // total bytes ever appended, including reclaimed ones
}

func newPatchLog() *patchLog {
	c := &patchChunk{}
	return &patchLog{head: c, tail: c}
}

// append writes b to the tail of the stream, allocating new chunks as
// needed, and returns the [start, end) global offsets it now occupies.
func (l *patchLog) append(b []byte) (start, end int) {
	start = l.pos
	for len(b) > 0 {
		if l.tail.used == patchChunkSize {
			next := &patchChunk{baseOffset: l.pos}
			l.tail.next = next
			l.tail = next
		}
		room := patchChunkSize - l.tail.used
		n := len(b)
		if n > room {
			n = room
		}
		copy(l.tail.data[l.tail.used:], b[:n])
		l.tail.used += n
		l.pos += n
		b = b[n:]
	}

	return start, l.pos
}

// read returns a fresh copy of the bytes in the global range [start, end).
// The range must lie within chunks still held by the log.
func (l *patchLog) read(start, end int) []byte {
	out := make([]byte, 0, end-start)
	for c := l.head; c != nil && start < end; c = c.next {
		chunkEnd := c.baseOffset + c.used
		if chunkEnd <= start {
			continue
		}
		lo := start - c.baseOffset
		hi := chunkEnd - c.baseOffset
		if end-c.baseOffset < hi {
			hi = end - c.baseOffset
		}
		out = append(out, c.data[lo:hi]...)
		start = c.baseOffset + hi
	}

	return out
}

// reclaim drops every chunk fully before the global offset keep, freeing
// their memory. Chunks are only ever dropped whole: keep must not fall
// inside a chunk that a surviving epoch still addresses.
func (l *patchLog) reclaim(keep int) {
	for l.head != l.tail && l.head.baseOffset+l.head.used <= keep {
		l.head = l.head.next
	}
}
