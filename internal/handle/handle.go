// Package handle implements the networked entity handle (EHandle) encoding
// pinned by spec.md §3 and §6: a 24-bit compound of a slot index and a
// serial number, packed into the low 24 bits of a uint32. Bit widths are
// carried over verbatim from original_source/crates/haste_core/src/entities.rs.
package handle

const (
	// MaxEdictBits is the width of the slot-index field.
	MaxEdictBits = 14
	// MaxEdicts is the exclusive upper bound on slot indices, 1<<14.
	MaxEdicts = 1 << MaxEdictBits

	// SerialNumberBits is the width of the serial-number field.
	SerialNumberBits = 10

	// Invalid is the sentinel handle value meaning "no entity".
	Invalid uint32 = (1 << 24) - 1
)

// Encode packs a slot index and serial number into a handle. Per spec.md
// §9's "Handle layout discrepancy" note, the low 14 bits are always the
// slot index and the high 10 bits are always the serial, regardless of
// what any external comments might claim.
func Encode(index int32, serial uint32) uint32 {
	return uint32(index)&(MaxEdicts-1) | (serial&((1<<SerialNumberBits)-1))<<MaxEdictBits
}

// IsValid reports whether h is not the sentinel "invalid" value.
func IsValid(h uint32) bool {
	return h != Invalid
}

// ToIndex extracts the slot index from a handle.
func ToIndex(h uint32) int32 {
	return int32(h & (MaxEdicts - 1))
}

// ToSerial extracts the serial number from a handle.
func ToSerial(h uint32) uint32 {
	return (h >> MaxEdictBits) & ((1 << SerialNumberBits) - 1)
}
