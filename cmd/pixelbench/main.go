// Command pixelbench builds a synthetic row group, runs it through an
// integer column writer and a string column writer, then runs the same
// row group through a visibility engine with a few deletes applied, and
// prints the resulting chunk sizes and bitmap cardinalities.
package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/gengdy1545/pixels/column"
	"github.com/gengdy1545/pixels/format"
	"github.com/gengdy1545/pixels/pixel"
	"github.com/gengdy1545/pixels/visibility"
)

const rowCount = 50_000

func main() {
	cfg, err := pixel.NewConfig(
		pixel.WithStride(2000),
		pixel.WithEncodingLevel(format.EL2),
	)
	if err != nil {
		log.Fatalf("failed to build pixel config: %v", err)
	}

	ints, err := encodeIntColumn(cfg)
	if err != nil {
		log.Fatalf("failed to encode integer column: %v", err)
	}
	fmt.Printf("integer column: %d rows -> %d bytes, %d pixels, encoding=%s\n",
		rowCount, ints.ChunkSize(), ints.ChunkIndex().PixelCount(), ints.ChunkEncoding().Kind)

	strs, err := encodeStringColumn(cfg)
	if err != nil {
		log.Fatalf("failed to encode string column: %v", err)
	}
	fmt.Printf("string column: %d rows -> %d bytes, %d pixels, encoding=%s\n",
		rowCount, strs.ChunkSize(), strs.ChunkIndex().PixelCount(), strs.ChunkEncoding().Kind)

	runVisibilityDemo()
}

func encodeIntColumn(cfg pixel.Config) (column.Writer, error) {
	w, err := column.NewWriter(format.TypeDescriptor{Category: format.LONG}, cfg)
	if err != nil {
		return nil, err
	}

	values := make([]int64, rowCount)
	for i := range values {
		values[i] = int64(i % 100) // heavy repetition, RLE-friendly
	}

	if _, err := w.Write(column.ValueBatch{Kind: format.LONG, Int64s: values}, rowCount); err != nil {
		return nil, err
	}
	w.Flush()

	return w, nil
}

func encodeStringColumn(cfg pixel.Config) (column.Writer, error) {
	w, err := column.NewWriter(format.TypeDescriptor{Category: format.STRING}, cfg)
	if err != nil {
		return nil, err
	}

	pool := []string{"alpha", "bravo", "charlie", "delta", "echo"}
	values := make([]string, rowCount)
	for i := range values {
		values[i] = pool[i%len(pool)]
	}

	if _, err := w.Write(column.ValueBatch{Kind: format.STRING, Strings: values}, rowCount); err != nil {
		return nil, err
	}
	w.Flush()

	return w, nil
}

func runVisibilityDemo() {
	rg := visibility.NewRowGroupVisibility(rowCount)

	rg.CreateEpoch(1)
	rnd := rand.New(rand.NewSource(1))
	deleted := 0
	for deleted < 500 {
		row := rnd.Intn(rowCount)
		if err := rg.Delete(row, 1); err == nil {
			deleted++
		}
	}

	bm, err := rg.BitmapAt(1)
	if err != nil {
		log.Fatalf("failed to read bitmap: %v", err)
	}

	set := 0
	for _, w := range bm {
		set += popcount(w)
	}
	fmt.Printf("visibility: row group of %d rows across %d tiles, %d rows deleted as of epoch 1\n",
		rowCount, len(bm)/4, set)

	items := rg.ExportDeletionBlocks()
	fmt.Printf("visibility: exported %d deletion items\n", len(items))
}

func popcount(w uint64) int {
	n := 0
	for w != 0 {
		w &= w - 1
		n++
	}

	return n
}
