package visibility

// tsMask keeps a packed item's low 48 bits for the timestamp, per
// spec.md §6's packed deletion-block item layout.
const tsMask = 0x0000_FFFF_FFFF_FFFF

// RowGroupVisibility owns the MVCC delete-visibility state for one row
// group: a contiguous array of 256-row tiles, long enough to cover
// rgRecordNum rows. Every public method dispatches to the tile or tiles
// that own the rows it touches, or forwards to all of them.
type RowGroupVisibility struct {
	tiles []*tile
}

// NewRowGroupVisibility allocates a RowGroupVisibility covering
// recordNum rows: ceil(recordNum/256) tiles.
func NewRowGroupVisibility(recordNum int) *RowGroupVisibility {
	n := (recordNum + tileCapacity - 1) / tileCapacity
	if n == 0 {
		n = 1
	}

	rg := &RowGroupVisibility{tiles: make([]*tile, n)}
	for i := range rg.tiles {
		rg.tiles[i] = newTile()
	}

	return rg
}

// CreateEpoch opens epoch ts on every tile. A writer calls this once per
// epoch before issuing any Delete calls that name that ts, since a
// tile's Delete always targets its own most recently opened epoch.
func (rg *RowGroupVisibility) CreateEpoch(ts uint64) {
	for _, t := range rg.tiles {
		t.createEpoch(ts)
	}
}

// Delete marks globalRowId deleted as of epoch ts, dispatching to
// tile[globalRowId/256] with local row id globalRowId%256.
func (rg *RowGroupVisibility) Delete(globalRowID int, ts uint64) error {
	idx := globalRowID / tileCapacity
	local := globalRowID % tileCapacity
	if idx < 0 || idx >= len(rg.tiles) {
		return rg.tiles[0].delete(globalRowID, ts) // triggers ErrRowIDOutOfRange uniformly
	}

	return rg.tiles[idx].delete(local, ts)
}

// BitmapAt returns the deleted-row bitmap as of epoch ts across every
// tile, concatenated in tile order: tileCount*wordsPerTile uint64 words.
func (rg *RowGroupVisibility) BitmapAt(ts uint64) ([]uint64, error) {
	out := make([]uint64, 0, len(rg.tiles)*wordsPerTile)
	for _, t := range rg.tiles {
		bm, err := t.bitmapAt(ts)
		if err != nil {
			return nil, err
		}
		out = append(out, bm[:]...)
	}

	return out, nil
}

// CollectGarbage forwards cleanup(cutoffTs) to every tile.
func (rg *RowGroupVisibility) CollectGarbage(cutoffTs uint64) error {
	for _, t := range rg.tiles {
		if err := t.cleanup(cutoffTs); err != nil {
			return err
		}
	}

	return nil
}

// BaseBitmap aggregates every tile's base bitmap, concatenated in tile
// order, for checkpointing.
func (rg *RowGroupVisibility) BaseBitmap() []uint64 {
	out := make([]uint64, 0, len(rg.tiles)*wordsPerTile)
	for _, t := range rg.tiles {
		bm := t.baseBitmap()
		out = append(out, bm[:]...)
	}

	return out
}

// ExportDeletionBlocks walks every tile's epoch log in order and packs
// each recorded delete as one u64 item: (globalRowId:32 high bits,
// timestamp:48 low bits), per spec.md §6. Because the high field only
// occupies the top 16 of its 32 declared bits once shifted into a u64,
// globalRowId is carried modulo 65536; row groups wider than that lose
// the high bits of the row id on export, a limitation inherited
// directly from the packed item's bit layout.
func (rg *RowGroupVisibility) ExportDeletionBlocks() []uint64 {
	var items []uint64
	for tileIdx, t := range rg.tiles {
		t.mu.Lock()
		for _, b := range t.log.blocks {
			for i := 0; i < b.count; i++ {
				e := b.entries[i]
				data := t.patch.read(e.patchStart, e.patchEnd)
				for _, row := range data[checkpointSize:] {
					global := tileIdx*tileCapacity + int(row)
					items = append(items, packItem(uint64(global), e.epochTs))
				}
			}
		}
		t.mu.Unlock()
	}

	return items
}

// PrependDeletionBlocks is the inverse of ExportDeletionBlocks: it
// unpacks each item back to (globalRowId, ts), splits by tile, and
// replays the deletes into that tile, opening one epoch per distinct ts
// encountered (in the order items are given). It is intended to restore
// a freshly allocated RowGroupVisibility from a previously exported
// sequence, the round trip spec.md §8's export/restore scenario
// exercises; replaying onto a tile that already has epochs only extends
// its history, it does not splice new epochs before existing ones.
func (rg *RowGroupVisibility) PrependDeletionBlocks(items []uint64) error {
	openEpoch := make([]uint64, len(rg.tiles)) // last ts createEpoch'd per tile, for dedup
	opened := make([]bool, len(rg.tiles))

	for _, item := range items {
		global, ts := unpackItem(item)
		idx := int(global) / tileCapacity
		local := int(global) % tileCapacity
		if idx < 0 || idx >= len(rg.tiles) {
			continue
		}

		if !opened[idx] || openEpoch[idx] != ts {
			rg.tiles[idx].createEpoch(ts)
			openEpoch[idx] = ts
			opened[idx] = true
		}

		if err := rg.tiles[idx].delete(local, ts); err != nil {
			return err
		}
	}

	return nil
}

func packItem(rowID, ts uint64) uint64 {
	return (rowID << 48) | (ts & tsMask)
}

func unpackItem(item uint64) (rowID, ts uint64) {
	return item >> 48, item & tsMask
}
