// Package fieldkey builds the stable 64-bit caller-side lookup key spec.md
// §4.5 describes for a dotted field path: a seed hash of the first segment,
// each subsequent name or array index folded in with the same
// associative-free mixer, so callers never need to branch on whether a
// path component is a name or an index.
package fieldkey

import "github.com/blukai/hasted/internal/fxhash"

// Builder accumulates a field path's segments into a single hash.
type Builder struct {
	hash    uint64
	started bool
}

// AddName folds a named segment (e.g. a struct field name) into the key.
func (b *Builder) AddName(name string) *Builder {
	h := fxhash.HashString(name)
	if !b.started {
		b.hash = h
		b.started = true
		return b
	}
	b.hash = fxhash.AddU64ToHash(b.hash, h)
	return b
}

// AddIndex folds a numeric array index into the key, treated identically
// to a name segment per spec.md §4.5's "index and name components so
// callers need not branch".
func (b *Builder) AddIndex(index uint64) *Builder {
	h := fxhash.AddU64ToHash(0, index)
	if !b.started {
		b.hash = h
		b.started = true
		return b
	}
	b.hash = fxhash.AddU64ToHash(b.hash, h)
	return b
}

// Hash returns the accumulated key.
func (b *Builder) Hash() uint64 {
	return b.hash
}

// Make is a convenience constructor for the common case of an
// all-name dotted path, e.g. Make("m_vecOrigin", "x").
func Make(names ...string) uint64 {
	var b Builder
	for _, n := range names {
		b.AddName(n)
	}
	return b.Hash()
}
