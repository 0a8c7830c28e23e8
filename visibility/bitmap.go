package visibility

import "encoding/binary"

// tileCapacity is the number of rows one tile covers, per spec.md §4.10.
const tileCapacity = 256

// wordsPerTile is tileCapacity/64: the width of a tile's base, intend-
// delete, and actual-delete bitmaps, and of an epoch's checkpoint.
const wordsPerTile = tileCapacity / 64

// checkpointSize is the serialized byte width of a tileBitmap: the
// prefix every epoch's patch range carries before its delete bytes.
const checkpointSize = wordsPerTile * 8

// tileBitmap is a 256-bit, row-indexed bitmap local to one tile.
type tileBitmap [wordsPerTile]uint64

func (bm *tileBitmap) test(row int) bool {
	return bm[row/64]&(uint64(1)<<(row%64)) != 0
}

func (bm *tileBitmap) set(row int) {
	bm[row/64] |= uint64(1) << (row % 64)
}

// encode serializes bm as checkpointSize big-endian bytes, one word at a
// time, matching the checkpoint prefix spec.md §4.10 describes for every
// epoch's patch range.
func (bm tileBitmap) encode() []byte {
	buf := make([]byte, checkpointSize)
	for i, w := range bm {
		binary.BigEndian.PutUint64(buf[i*8:], w)
	}

	return buf
}

// decodeTileBitmap parses checkpointSize big-endian bytes written by
// encode back into a tileBitmap.
func decodeTileBitmap(b []byte) tileBitmap {
	var bm tileBitmap
	for i := range bm {
		bm[i] = binary.BigEndian.Uint64(b[i*8:])
	}

	return bm
}
