package fieldkey_test

import (
	"testing"

	"github.com/blukai/hasted/internal/fieldkey"
)

func TestMake_Deterministic(t *testing.T) {
	a := fieldkey.Make("m_vecOrigin", "x")
	b := fieldkey.Make("m_vecOrigin", "x")
	if a != b {
		t.Fatal("expected equal hashes for equal paths")
	}
}

func TestMake_OrderSensitive(t *testing.T) {
	a := fieldkey.Make("a", "b")
	b := fieldkey.Make("b", "a")
	if a == b {
		t.Fatal("expected different hashes for different segment order")
	}
}

func TestAddIndex_DistinctFromName(t *testing.T) {
	var withIndex fieldkey.Builder
	withIndex.AddName("m_items").AddIndex(0)

	var withName fieldkey.Builder
	withName.AddName("m_items").AddName("0")

	if withIndex.Hash() == withName.Hash() {
		t.Fatal("index and name segments should not collide for matching literal text")
	}
}

func TestAddIndex_AsFirstSegment(t *testing.T) {
	var b fieldkey.Builder
	b.AddIndex(3)
	if b.Hash() == 0 {
		t.Fatal("expected a non-zero hash")
	}
}
