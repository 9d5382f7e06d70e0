package fxhash_test

import (
	"testing"

	"github.com/blukai/hasted/internal/fxhash"
)

func TestHashBytes_Deterministic(t *testing.T) {
	a := fxhash.HashBytes([]byte("health"))
	b := fxhash.HashBytes([]byte("health"))
	if a != b {
		t.Fatalf("hash not deterministic: %d != %d", a, b)
	}
	if a == fxhash.HashBytes([]byte("mana")) {
		t.Fatal("different inputs collided")
	}
}

func TestAddU64ToHash_OrderSensitive(t *testing.T) {
	a := fxhash.AddU64ToHash(fxhash.AddU64ToHash(0, 1), 2)
	b := fxhash.AddU64ToHash(fxhash.AddU64ToHash(0, 2), 1)
	if a == b {
		t.Fatal("combinator should be order sensitive")
	}
}

func TestAddU64ToHash_IndexAndNameShareCombinator(t *testing.T) {
	// Spec §4.5: a dynamic-array index is combined the same way a name
	// segment's hash would be, via add_u64_to_hash(0, index).
	seedHash := fxhash.HashString("items")
	withIndex := fxhash.AddU64ToHash(seedHash, fxhash.AddU64ToHash(0, 3))
	withName := fxhash.AddU64ToHash(seedHash, fxhash.HashString("id"))
	if withIndex == withName {
		t.Fatal("index-based and name-based combination should not collide here")
	}
}
