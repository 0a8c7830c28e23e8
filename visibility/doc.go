// Package visibility implements the MVCC-style delete-visibility engine
// used alongside the columnar encode pipeline: a row group's delete
// state is tracked per 256-row tile, each with its own base bitmap,
// delete bitmaps, and an append-only epoch log recording which rows were
// deleted as of which timestamp.
package visibility
