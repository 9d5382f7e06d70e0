package entities

import (
	"github.com/blukai/hasted/internal/fieldpath"
	"github.com/blukai/hasted/internal/fieldvalue"
	"github.com/blukai/hasted/internal/rangealloc"
)

// minChildrenLen is the smallest children range FieldState.Set ever
// allocates, per spec.md §4.2: "allocate a range of length max(i+1, 8)".
const minChildrenLen = 8

// FieldState is one prefix-tree node: an optional value and an optional
// half-open range of child nodes inside a shared Arena. Per spec.md §3,
// value and children are independent — a node may hold either, both, or
// neither.
type FieldState struct {
	value    fieldvalue.Value
	hasValue bool

	children    rangealloc.Range
	hasChildren bool
}

// Value returns the node's stored value, if any.
func (fs *FieldState) Value() (fieldvalue.Value, bool) {
	return fs.value, fs.hasValue
}

// Children reports the node's child range, if any.
func (fs *FieldState) Children() (rangealloc.Range, bool) {
	return fs.children, fs.hasChildren
}

// Arena is the fixed-capacity backing store FieldState children ranges
// index into. It never grows: its length is the container's node-arena
// capacity, and ranges are handed out by an Allocator over the same span.
type Arena []FieldState

// Child returns the node at the i'th slot of fs's children range. The
// caller is responsible for having checked Children and bounds.
func (a Arena) Child(fs *FieldState, i int) *FieldState {
	return &a[fs.children.Start+i]
}

// Set writes value at the node reached by walking path from fs, allocating
// and growing child ranges out of arena/alloc as needed. This is
// spec.md §4.2's FieldState.set.
func Set(fs *FieldState, path *fieldpath.FieldPath, value fieldvalue.Value, arena Arena, alloc *rangealloc.Allocator) error {
	cur := fs
	for i := 0; i <= path.Last(); i++ {
		component := int(path.Get(i))

		if !cur.hasChildren {
			length := component + 1
			if length < minChildrenLen {
				length = minChildrenLen
			}
			r, err := alloc.Allocate(length)
			if err != nil {
				return err
			}
			zero(arena, r)
			cur.children = r
			cur.hasChildren = true
		} else if length := cur.children.Len(); component >= length {
			newLen := length * 2
			for component >= newLen {
				newLen *= 2
			}
			newRange, err := alloc.Allocate(newLen)
			if err != nil {
				return err
			}
			zero(arena, newRange)
			copy(arena[newRange.Start:newRange.Start+length], arena[cur.children.Start:cur.children.End])
			alloc.Deallocate(cur.children)
			cur.children = newRange
		}

		cur = arena.Child(cur, component)
	}
	cur.value = value
	cur.hasValue = true
	return nil
}

func zero(arena Arena, r rangealloc.Range) {
	for i := r.Start; i < r.End; i++ {
		arena[i] = FieldState{}
	}
}
