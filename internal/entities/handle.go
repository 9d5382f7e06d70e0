package entities

import "github.com/blukai/hasted/internal/handle"

// Handle bit-width and sentinel constants, re-exported from internal/handle
// for callers that only import internal/entities. spec.md §3 defines these
// at the core's boundary even though the encode/decode arithmetic lives in
// its own package, tested standalone there.
const (
	MaxEdicts     = handle.MaxEdicts
	InvalidHandle = handle.Invalid
)

// EncodeHandle packs a slot index and serial number into a handle.
func EncodeHandle(index int32, serial uint32) uint32 { return handle.Encode(index, serial) }

// IsHandleValid reports whether h is not the sentinel "invalid" value.
func IsHandleValid(h uint32) bool { return handle.IsValid(h) }

// HandleToIndex extracts the slot index from a handle.
func HandleToIndex(h uint32) int32 { return handle.ToIndex(h) }

// HandleToSerial extracts the serial number from a handle.
func HandleToSerial(h uint32) uint32 { return handle.ToSerial(h) }
