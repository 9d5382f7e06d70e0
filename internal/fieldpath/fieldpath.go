// Package fieldpath implements FieldPath and the batch reader that decodes
// a run of them off the bit stream for one entity. spec.md §1 and §6 both
// name the real decoder ("field-path Huffman decoding") an external
// collaborator whose op-table this module does not reproduce — that table
// belongs to the wire format of a specific game build and isn't part of
// this pack. ReadFieldPaths here implements the batch-framing contract
// spec.md §3/§4.3 actually specifies (a run of bounded-depth integer
// sequences written into a reused scratch slice) using a small
// self-describing encoding, documented fully in DESIGN.md.
package fieldpath

import (
	"github.com/pkg/errors"

	"github.com/blukai/hasted/internal/bitreader"
)

// MaxDepth bounds a FieldPath's last valid index, per spec.md §3's guidance
// to size for at least 7 components and treat deeper paths as corruption.
// A path may therefore hold up to MaxDepth+1 components (indices 0..MaxDepth).
const MaxDepth = 7

// ErrScratchExhausted is returned by ReadFieldPaths when a batch contains
// more paths than the caller's scratch slice has room for.
var ErrScratchExhausted = errors.New("fieldpath: scratch buffer exhausted")

// FieldPath is an ordered, bounded-depth sequence of path components.
type FieldPath struct {
	data [MaxDepth + 1]int32
	last int
}

// Last returns the inclusive index of the last valid component.
func (fp *FieldPath) Last() int { return fp.last }

// Get returns the component at index i.
func (fp *FieldPath) Get(i int) int32 { return fp.data[i] }

// Reset clears fp back to a single zeroed component, mirroring the
// default FieldPath the Rust source pre-allocates scratch slots with.
func (fp *FieldPath) Reset() {
	fp.data = [MaxDepth + 1]int32{}
	fp.last = 0
}

// Append adds a component, growing Last by one. It panics if the path
// would exceed MaxDepth, which spec.md §9 treats as a corruption signal
// rather than a condition to handle gracefully mid-walk.
func (fp *FieldPath) Append(component int32) {
	fp.last++
	fp.data[fp.last] = component
}

// Set overwrites fp's components from a plain slice of ints, as tests
// constructing fixture paths want to do directly.
func Set(fp *FieldPath, components ...int32) {
	fp.Reset()
	fp.data[0] = components[0]
	fp.last = 0
	for _, c := range components[1:] {
		fp.Append(c)
	}
}

// ReadFieldPaths decodes a batch of field paths into scratch, returning how
// many were written. scratch must have capacity for at least as many paths
// as the batch contains; exceeding it is reported as an error rather than
// silently truncated.
//
// Encoding (one call per entity's delta record):
//
//	repeat:
//	  continuation bit: 1 = another path follows, 0 = batch is done
//	  if continuation:
//	    3-bit depth (component count - 1, 0..7)
//	    depth+1 uvarint32 components
func ReadFieldPaths(br *bitreader.BitReader, scratch []FieldPath) (int, error) {
	count := 0
	for {
		if !br.ReadBool() {
			return count, nil
		}
		if count >= len(scratch) {
			return count, ErrScratchExhausted
		}
		depth := int(br.ReadUBit64(3))
		fp := &scratch[count]
		fp.Reset()
		fp.data[0] = int32(br.ReadUVarint32())
		for i := 0; i < depth; i++ {
			fp.last++
			fp.data[fp.last] = int32(br.ReadUVarint32())
		}
		count++
	}
}

// WriteFieldPaths is the inverse of ReadFieldPaths, used by tests (and
// anything else building fixture streams) to append a compatible batch to w.
func WriteFieldPaths(w *bitreader.Writer, paths []FieldPath) {
	for _, fp := range paths {
		w.WriteBool(true)
		w.WriteUBit64(uint64(fp.last), 3)
		for i := 0; i <= fp.last; i++ {
			w.WriteUVarint32(uint32(fp.data[i]))
		}
	}
	w.WriteBool(false)
}
