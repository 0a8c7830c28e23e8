package visibility

// epochBlockCapacity bounds how many EpochInfo entries a single block
// holds before a new block is allocated, per spec.md §4.10's "blocks of
// up to 1024 EpochInfo".
const epochBlockCapacity = 1024

// epochInfo records one epoch's timestamp and the global byte range of
// its patch data: a 32-byte intend-delete-bitmap checkpoint followed by
// zero or more single-byte row-id deletes appended after it.
type epochInfo struct {
	epochTs    uint64
	patchStart int
	patchEnd   int
}

// epochBlock is a fixed-capacity, append-only run of epochInfo entries in
// non-decreasing timestamp order. Cleanup drops whole blocks at a time,
// so a block is the unit of both allocation and reclamation in the
// EpochLog.
type epochBlock struct {
	entries [epochBlockCapacity]epochInfo
	count   int
	maxTs   uint64
}

func (b *epochBlock) full() bool {
	return b.count == epochBlockCapacity
}

func (b *epochBlock) append(e epochInfo) {
	b.entries[b.count] = e
	b.count++
	b.maxTs = e.epochTs
}

// epochLog is the sequence of epochBlocks a tile keeps, in block order
// and, within each block, timestamp order.
type epochLog struct {
	blocks []*epochBlock
}

// record appends e to the tail block, allocating a new block first if
// the tail is absent or full.
func (l *epochLog) record(e epochInfo) {
	if len(l.blocks) == 0 || l.blocks[len(l.blocks)-1].full() {
		l.blocks = append(l.blocks, &epochBlock{})
	}
	l.blocks[len(l.blocks)-1].append(e)
}

// find locates the exact epoch recorded for ts, searching blocks by
// their max timestamp and then entries within the matching block. It
// reports ok=false if ts was never recorded or its block has since been
// dropped by cleanup.
func (l *epochLog) find(ts uint64) (epochInfo, bool) {
	lo, hi := 0, len(l.blocks)
	for lo < hi {
		mid := (lo + hi) / 2
		if l.blocks[mid].maxTs < ts {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == len(l.blocks) {
		return epochInfo{}, false
	}

	b := l.blocks[lo]
	elo, ehi := 0, b.count
	for elo < ehi {
		mid := (elo + ehi) / 2
		if b.entries[mid].epochTs < ts {
			elo = mid + 1
		} else {
			ehi = mid
		}
	}
	if elo == b.count || b.entries[elo].epochTs != ts {
		return epochInfo{}, false
	}

	return b.entries[elo], true
}

// last returns the most recently recorded epoch, if any.
func (l *epochLog) last() (epochInfo, bool) {
	if len(l.blocks) == 0 {
		return epochInfo{}, false
	}
	b := l.blocks[len(l.blocks)-1]
	if b.count == 0 {
		return epochInfo{}, false
	}

	return b.entries[b.count-1], true
}

// setLastPatchEnd extends the most recently recorded epoch's patch range
// in place. Callers must only call this right after appending bytes to
// the tail of the patch stream, so the extension stays contiguous.
func (l *epochLog) setLastPatchEnd(end int) {
	b := l.blocks[len(l.blocks)-1]
	b.entries[b.count-1].patchEnd = end
}

// dropExpired removes every leading block whose maxTs is below cutoff,
// reporting the minimum patchStart among the surviving entries (or -1 if
// every entry up to the log's current tail survives with nothing
// dropped) so the caller can reclaim patch chunks no surviving epoch
// still addresses. ok is false if this would drop every block.
func (l *epochLog) dropExpired(cutoff uint64) (minPatchStart int, ok bool) {
	drop := 0
	for drop < len(l.blocks) && l.blocks[drop].maxTs < cutoff {
		drop++
	}
	if drop == len(l.blocks) && drop > 0 {
		return 0, false
	}
	if drop == 0 {
		return -1, true
	}

	surviving := make([]*epochBlock, len(l.blocks)-drop)
	copy(surviving, l.blocks[drop:])
	l.blocks = surviving

	if len(l.blocks) == 0 || l.blocks[0].count == 0 {
		return -1, true
	}

	return l.blocks[0].entries[0].patchStart, true
}
