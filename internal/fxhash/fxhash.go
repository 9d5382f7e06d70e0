// Package fxhash implements the field-name hashing scheme spec.md §4.5
// describes: a per-segment seed hash combined across a dotted path with a
// deterministic, collision-resistant multiply-xor mixer.
//
// The per-segment seed uses github.com/cespare/xxhash/v2 (grounded in the
// retrieval pack: alex60217101990-opa and prysmaticlabs-prysm both carry
// it) rather than a hand-rolled FNV variant, since nothing about the
// per-segment hash's exact bit pattern is part of the tested contract in
// spec.md — only the combinator across segments is. The combinator itself
// is: (hash rotate-left 5) xor word, multiplied by a fixed odd seed. That
// specific shape is lifted from the rustc "FxHash" mixer the original
// source's fxhash module is named after, and spec §4.5 calls out as
// sufficient ("a Fx-style multiply-xor mixer").
package fxhash

import (
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// seed is the fixed odd multiplier used by FxHash-style mixers.
const seed = 0x51_7c_c1_b7_27_22_0a_95

// HashBytes returns the seed hash for a single path segment.
func HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// HashString is HashBytes for a string segment, avoiding an extra copy.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// AddU64ToHash folds word into hash, producing a new combined hash. It is
// intentionally not associative: add_u64_to_hash(add_u64_to_hash(0, a), b)
// differs from add_u64_to_hash(add_u64_to_hash(0, b), a), which is what
// lets index and name segments share one combinator without ambiguity.
func AddU64ToHash(hash, word uint64) uint64 {
	return (bits.RotateLeft64(hash, 5) ^ word) * seed
}
