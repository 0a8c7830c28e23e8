// Package dict implements the insertion-ordered byte-string dictionary
// used by string-family column writers under encoding levels EL1 and EL2.
package dict

import (
	"github.com/cespare/xxhash/v2"
	"github.com/gengdy1545/pixels/internal/pool"
)

// NumShards is the number of sub-maps the dictionary's key table is split
// across. Sharding by a hash modulus is the scheme spec.md §4.4 and §9
// describe for the teacher's sharded hash dictionary; this module keeps
// the shard count but — per Design Note §9 — drives Visit from a parallel
// code-indexed slice of key handles built during Add, rather than a
// linear scan over the shards.
const NumShards = 41

// Dictionary deduplicates byte-string keys, assigning each distinct key a
// dense integer code equal to its zero-based insertion rank.
//
// Dictionary is not safe for concurrent use. Per spec.md §5, a column
// writer (and the dictionary it owns) has a single producer; sharding
// exists to mirror the teacher's contention-reduction design, not to make
// Dictionary itself concurrency-safe.
type Dictionary struct {
	shards [NumShards]map[string]int
	keys   []string // code-indexed: keys[code] is the key inserted at that code
}

// New creates an empty Dictionary.
func New() *Dictionary {
	d := &Dictionary{}
	for i := range d.shards {
		d.shards[i] = make(map[string]int)
	}

	return d
}

func shardOf(key []byte) int {
	return int(xxhash.Sum64(key) % uint64(NumShards)) //nolint:gosec
}

// Add inserts the key formed by bytes[offset:offset+length] if not
// already present, and returns its code. If the key already exists, its
// existing code is returned unchanged.
func (d *Dictionary) Add(bytes []byte, offset int, length int) int {
	key := bytes[offset : offset+length]
	shard := d.shards[shardOf(key)]

	// Map lookups keyed by []byte copy the key once per miss under the
	// hood anyway; converting explicitly lets us reuse that copy as both
	// the map key and the code-indexed handle stored in d.keys.
	s := string(key)
	if code, ok := shard[s]; ok {
		return code
	}

	code := len(d.keys)
	shard[s] = code
	d.keys = append(d.keys, s)

	return code
}

// Size returns the number of distinct keys currently held.
func (d *Dictionary) Size() int {
	return len(d.keys)
}

// Clear resets the dictionary to empty.
func (d *Dictionary) Clear() {
	for i := range d.shards {
		d.shards[i] = make(map[string]int)
	}
	d.keys = d.keys[:0]
}

// VisitCtx is handed to the callback passed to Visit, once per key, in
// code order.
type VisitCtx struct {
	key string
}

// Len returns the byte length of the key this context wraps.
func (c VisitCtx) Len() int {
	return len(c.key)
}

// WriteBytes appends the key's bytes to out. This is the only way
// Dictionary content is emitted at flush time, per spec.md §4.4.
func (c VisitCtx) WriteBytes(out *pool.ByteBuffer) {
	out.MustWrite([]byte(c.key))
}

// Visit invokes fn exactly Size() times, once per key, in ascending code
// order (0, 1, 2, ...). Since Visit walks the same code-indexed slice Add
// maintains, the code-density invariant (P3) holds by construction; there
// is no decode-from-shards step that could come up short.
func (d *Dictionary) Visit(fn func(ctx VisitCtx)) {
	for _, key := range d.keys {
		fn(VisitCtx{key: key})
	}
}
