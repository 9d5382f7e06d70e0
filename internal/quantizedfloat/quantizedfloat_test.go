package quantizedfloat_test

import (
	"testing"

	"github.com/blukai/hasted/internal/bitreader"
	"github.com/blukai/hasted/internal/quantizedfloat"
)

func TestDecode_MaxRawDecodesToHigh(t *testing.T) {
	cfg := quantizedfloat.Config{Low: 0, High: 100, BitCount: 8}
	// max raw value (255) should decode to High.
	br := bitreader.New([]byte{0xff})
	got := cfg.Decode(br)
	if got != 100 {
		t.Fatalf("got %v, want 100", got)
	}
}

func TestDecode_Zero(t *testing.T) {
	cfg := quantizedfloat.Config{Low: -1, High: 1, BitCount: 8, EncodeZero: true}
	br := bitreader.New([]byte{0x00})
	if got := cfg.Decode(br); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
}

func TestDecode_WideBitCountFallsBackToRawFloat(t *testing.T) {
	cfg := quantizedfloat.Config{BitCount: 32}
	br := bitreader.New([]byte{0, 0, 0, 0})
	if got := cfg.Decode(br); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
}
