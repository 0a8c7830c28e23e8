package visibility

import (
	"fmt"
	"sync"

	"github.com/gengdy1545/pixels/errs"
)

// tile is the unit of MVCC delete-visibility tracking: a fixed 256-row
// span with its own base bitmap, its own delete bitmaps, and its own
// epoch log and patch stream. Every operation is guarded end to end by
// one mutex per tile, grounded on the teacher-adjacent MVCC store's
// single-lock-per-store design (scaled down to per-tile granularity
// since tiles must stay independent of one another for concurrent row
// groups to scale).
type tile struct {
	mu sync.Mutex

	base   tileBitmap // rows visible at row-group creation time, never mutated after
	intend tileBitmap // every row ever marked for delete in this tile, monotonic
	actual tileBitmap // rows whose delete has been committed into an epoch's patch

	log   epochLog
	patch patchLog
}

func newTile() *tile {
	return &tile{patch: *newPatchLog()}
}

// createEpoch opens a new epoch at ts: it snapshots the tile's current
// intend-delete bitmap as a checkpoint, appends that checkpoint to the
// patch stream, and records the epoch's timestamp and patch range in the
// tail EpochBlock, allocating a new block first if the current one is
// full.
func (t *tile) createEpoch(ts uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	start, end := t.patch.append(t.intend.encode())
	t.log.record(epochInfo{epochTs: ts, patchStart: start, patchEnd: end})
}

// delete marks row (tile-local, 0..tileCapacity-1) deleted as of the
// epoch most recently opened with createEpoch(ts). It returns
// errs.ErrRowIDOutOfRange if row is out of range, errs.ErrAlreadyDeleted
// if row was already marked in this tile, and errs.ErrEpochNotFound if
// ts does not name the tile's current epoch.
func (t *tile) delete(row int, ts uint64) error {
	if row < 0 || row >= tileCapacity {
		return fmt.Errorf("%w: tile row %d", errs.ErrRowIDOutOfRange, row)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.intend.test(row) {
		return fmt.Errorf("%w: tile row %d", errs.ErrAlreadyDeleted, row)
	}

	last, ok := t.log.last()
	if !ok || last.epochTs != ts {
		return fmt.Errorf("%w: ts %d", errs.ErrEpochNotFound, ts)
	}

	t.intend.set(row)
	t.actual.set(row)

	_, end := t.patch.append([]byte{byte(row)})
	t.log.setLastPatchEnd(end)

	return nil
}

// bitmapAt returns the set of deleted rows as of the epoch named by ts:
// the epoch's checkpoint with every delete byte recorded after it
// replayed on top. If ts names no surviving epoch (never created, or
// dropped by a prior cleanup), bitmapAt returns an all-clear bitmap and
// no error, matching a row group that has forgotten that point in time.
func (t *tile) bitmapAt(ts uint64) (tileBitmap, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.log.find(ts)
	if !ok {
		return tileBitmap{}, nil
	}
	if e.patchEnd-e.patchStart < checkpointSize {
		return tileBitmap{}, errs.ErrCorruptPatch
	}

	data := t.patch.read(e.patchStart, e.patchEnd)
	bm := decodeTileBitmap(data[:checkpointSize])
	for _, b := range data[checkpointSize:] {
		bm.set(int(b))
	}

	return bm, nil
}

// cleanup drops every EpochBlock entirely older than cutoff and reclaims
// the patch chunks no surviving epoch addresses anymore. It returns
// errs.ErrNoSurvivingBlock, leaving the tile untouched, if every block
// would be dropped.
func (t *tile) cleanup(cutoff uint64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	minPatchStart, ok := t.log.dropExpired(cutoff)
	if !ok {
		return errs.ErrNoSurvivingBlock
	}
	if minPatchStart >= 0 {
		t.patch.reclaim(minPatchStart)
	}

	return nil
}

// baseBitmap returns the tile's immutable base bitmap.
func (t *tile) baseBitmap() tileBitmap {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.base
}
