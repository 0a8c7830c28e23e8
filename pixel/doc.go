// Package pixel holds the shared, category-independent pieces of the
// column encode pipeline: the pixel configuration a writer is built
// from, the per-chunk index and statistics bookkeeping a writer appends
// to at every pixel boundary, the cascade-capable encoding descriptor
// recorded for a finished chunk, and the pooled output/null-bitmap
// streams every category writer stages into.
package pixel
