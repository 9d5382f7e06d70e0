package bitreader_test

import (
	"testing"

	"github.com/blukai/hasted/internal/bitreader"
)

func TestReadUBit64_MSBFirst(t *testing.T) {
	// 0b10110000 -> read 4 bits should yield 0b1011 = 11.
	br := bitreader.New([]byte{0b10110000})
	if got := br.ReadUBit64(4); got != 0b1011 {
		t.Fatalf("got %b, want %b", got, 0b1011)
	}
	if got := br.ReadUBit64(4); got != 0b0000 {
		t.Fatalf("got %b, want 0", got)
	}
}

func TestReadUBit64_CrossesByteBoundary(t *testing.T) {
	br := bitreader.New([]byte{0b00000001, 0b10000000})
	// skip 7 bits, then read 2: bit7 of byte0 (1) then bit0 of byte1 (1) -> 0b11
	br.ReadUBit64(7)
	if got := br.ReadUBit64(2); got != 0b11 {
		t.Fatalf("got %b, want %b", got, 0b11)
	}
}

func TestReadBool(t *testing.T) {
	br := bitreader.New([]byte{0b10000000})
	if !br.ReadBool() {
		t.Fatal("expected true")
	}
	if br.ReadBool() {
		t.Fatal("expected false")
	}
}

func TestOverflow(t *testing.T) {
	br := bitreader.New([]byte{0xff})
	br.ReadUBit64(8)
	if err := br.IsOverflowed(); err != nil {
		t.Fatalf("unexpected overflow: %v", err)
	}
	br.ReadUBit64(1)
	if err := br.IsOverflowed(); err == nil {
		t.Fatal("expected overflow error")
	}
}

func TestReadUVarint32(t *testing.T) {
	// 300 encodes as 0xAC 0x02
	br := bitreader.New([]byte{0xAC, 0x02})
	if got := br.ReadUVarint32(); got != 300 {
		t.Fatalf("got %d, want 300", got)
	}
}

func TestReadCString(t *testing.T) {
	br := bitreader.New([]byte("hi\x00trailing"))
	if got := br.ReadCString(64); got != "hi" {
		t.Fatalf("got %q, want %q", got, "hi")
	}
}

func TestBitsRemaining(t *testing.T) {
	br := bitreader.New([]byte{0, 0})
	if br.BitsRemaining() != 16 {
		t.Fatalf("got %d, want 16", br.BitsRemaining())
	}
	br.ReadUBit64(10)
	if br.BitsRemaining() != 6 {
		t.Fatalf("got %d, want 6", br.BitsRemaining())
	}
}
