package entities

import "github.com/blukai/hasted/internal/bitreader"

// DeltaHeader is the 2-bit tag classifying each per-entity record in a
// packet-entities message, per spec.md §3.
type DeltaHeader uint8

const (
	DeltaHeaderUpdate DeltaHeader = 0b00
	DeltaHeaderCreate DeltaHeader = 0b10
	DeltaHeaderLeave  DeltaHeader = 0b01
	DeltaHeaderDelete DeltaHeader = 0b11
)

func (h DeltaHeader) String() string {
	switch h {
	case DeltaHeaderUpdate:
		return "UPDATE"
	case DeltaHeaderCreate:
		return "CREATE"
	case DeltaHeaderLeave:
		return "LEAVE"
	case DeltaHeaderDelete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

// ReadDeltaHeader reads the 2-bit tag off br.
func ReadDeltaHeader(br *bitreader.BitReader) DeltaHeader {
	return DeltaHeader(br.ReadUBit64(2))
}
