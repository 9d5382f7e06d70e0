package entities

import (
	"testing"

	"github.com/blukai/hasted/internal/fieldpath"
	"github.com/blukai/hasted/internal/fieldvalue"
	"github.com/blukai/hasted/internal/rangealloc"
)

func newTestArena(n int) (Arena, *rangealloc.Allocator) {
	return make(Arena, n), rangealloc.New(n)
}

func pathOf(components ...int32) fieldpath.FieldPath {
	var fp fieldpath.FieldPath
	fieldpath.Set(&fp, components...)
	return fp
}

// Invariant 5: setting [k] with k >= 8 on an empty node yields a children
// range of length >= k+1.
func TestSet_SingleDeepIndex_GrowsToFit(t *testing.T) {
	arena, alloc := newTestArena(1024)
	var root FieldState

	fp := pathOf(20)
	if err := Set(&root, &fp, fieldvalue.Uint64(1), arena, alloc); err != nil {
		t.Fatal(err)
	}

	children, ok := root.Children()
	if !ok {
		t.Fatal("expected children")
	}
	if children.Len() < 21 {
		t.Fatalf("got children len %d, want >= 21", children.Len())
	}
}

// Invariant 5: setting [0]..[31] in order ends with a single children range
// of length >= 32 and all 32 values set.
func TestSet_SequentialIndices_SingleFinalRange(t *testing.T) {
	arena, alloc := newTestArena(1024)
	var root FieldState

	for i := int32(0); i < 32; i++ {
		fp := pathOf(i)
		if err := Set(&root, &fp, fieldvalue.Uint64(uint64(i)), arena, alloc); err != nil {
			t.Fatal(err)
		}
	}

	children, ok := root.Children()
	if !ok {
		t.Fatal("expected children")
	}
	if children.Len() < 32 {
		t.Fatalf("got children len %d, want >= 32", children.Len())
	}
	for i := int32(0); i < 32; i++ {
		child := arena.Child(&root, int(i))
		v, ok := child.Value()
		if !ok {
			t.Fatalf("index %d: expected a value", i)
		}
		got, err := v.AsUint64()
		if err != nil {
			t.Fatal(err)
		}
		if got != uint64(i) {
			t.Fatalf("index %d: got %d", i, got)
		}
	}
}

// S4: set [0,0]=A then [0,15]=B; after the second set the first child's
// children range has length >= 16, slot 0 holds A and slot 15 holds B.
func TestSet_Growth_S4(t *testing.T) {
	arena, alloc := newTestArena(1024)
	var root FieldState

	pA := pathOf(0, 0)
	if err := Set(&root, &pA, fieldvalue.Uint64(0xA), arena, alloc); err != nil {
		t.Fatal(err)
	}
	pB := pathOf(0, 15)
	if err := Set(&root, &pB, fieldvalue.Uint64(0xB), arena, alloc); err != nil {
		t.Fatal(err)
	}

	firstChild := arena.Child(&root, 0)
	grandchildren, ok := firstChild.Children()
	if !ok {
		t.Fatal("expected grandchildren")
	}
	if grandchildren.Len() < 16 {
		t.Fatalf("got len %d, want >= 16", grandchildren.Len())
	}

	slot0 := arena.Child(firstChild, 0)
	v0, _ := slot0.Value()
	got0, _ := v0.AsUint64()
	if got0 != 0xA {
		t.Fatalf("slot 0: got %#x, want 0xA", got0)
	}

	slot15 := arena.Child(firstChild, 15)
	v15, _ := slot15.Value()
	got15, _ := v15.AsUint64()
	if got15 != 0xB {
		t.Fatalf("slot 15: got %#x, want 0xB", got15)
	}
}

func TestSet_Growth_NoLeak(t *testing.T) {
	arena, alloc := newTestArena(1024)
	var root FieldState
	before := alloc.FreeLen()

	for i := int32(0); i < 32; i++ {
		fp := pathOf(i)
		if err := Set(&root, &fp, fieldvalue.Uint64(0), arena, alloc); err != nil {
			t.Fatal(err)
		}
	}

	// Every intermediate range doubling deallocated its predecessor, so
	// free length should only have shrunk by the final range's size.
	children, _ := root.Children()
	after := alloc.FreeLen()
	if before-after != children.Len() {
		t.Fatalf("got %d indices consumed, want %d (no leak)", before-after, children.Len())
	}
}

func TestSet_AllocExhausted(t *testing.T) {
	arena, alloc := newTestArena(4)
	var root FieldState

	fp := pathOf(100)
	err := Set(&root, &fp, fieldvalue.Uint64(0), arena, alloc)
	if err != rangealloc.ErrExhausted {
		t.Fatalf("got %v, want ErrExhausted", err)
	}
}
