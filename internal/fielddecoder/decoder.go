// Package fielddecoder dispatches flattened-serializer var_types to the
// per-field decoder functions spec.md §3 describes as
// "metadata.decoder.decode(decode_ctx, bit_reader) -> FieldValue". It is
// one of the "individual field decoders" spec.md §1 explicitly scopes out
// of the core, implemented here only so the rest of the module has a
// concrete decoder to call.
package fielddecoder

import (
	"github.com/pkg/errors"

	"github.com/blukai/hasted/internal/bitreader"
	"github.com/blukai/hasted/internal/fieldvalue"
	"github.com/blukai/hasted/internal/quantizedfloat"
)

// ErrUnknownVarType is returned when no decoder is registered for a var_type.
var ErrUnknownVarType = errors.New("fielddecoder: unknown var_type")

// Context threads per-message decode state (currently unused, reserved for
// decoders that need cross-field state such as string-table references).
type Context struct{}

// Decoder decodes one FieldValue off a bit reader.
type Decoder interface {
	Decode(ctx *Context, br *bitreader.BitReader) (fieldvalue.Value, error)
}

// Func adapts a plain function to the Decoder interface.
type Func func(ctx *Context, br *bitreader.BitReader) (fieldvalue.Value, error)

// Decode implements Decoder.
func (f Func) Decode(ctx *Context, br *bitreader.BitReader) (fieldvalue.Value, error) {
	return f(ctx, br)
}

// Bool decodes a single-bit boolean.
var Bool Decoder = Func(func(_ *Context, br *bitreader.BitReader) (fieldvalue.Value, error) {
	return fieldvalue.Bool(br.ReadBool()), nil
})

// Uint32 decodes an unsigned varint into a KindUint64 value.
var Uint32 Decoder = Func(func(_ *Context, br *bitreader.BitReader) (fieldvalue.Value, error) {
	return fieldvalue.Uint64(uint64(br.ReadUVarint32())), nil
})

// Int32 decodes a zig-zag varint into a KindInt64 value.
var Int32 Decoder = Func(func(_ *Context, br *bitreader.BitReader) (fieldvalue.Value, error) {
	return fieldvalue.Int64(int64(br.ReadVarint32())), nil
})

// Uint64Fixed decodes a fixed 64-bit unsigned integer (8 byte-aligned reads).
var Uint64Fixed Decoder = Func(func(_ *Context, br *bitreader.BitReader) (fieldvalue.Value, error) {
	var u uint64
	for i := 0; i < 8; i++ {
		u |= uint64(br.ReadUBit64(8)) << uint(8*i)
	}
	return fieldvalue.Uint64(u), nil
})

// Float32 decodes a raw IEEE-754 float.
var Float32 Decoder = Func(func(_ *Context, br *bitreader.BitReader) (fieldvalue.Value, error) {
	return fieldvalue.Float32(br.ReadFloat32()), nil
})

// String decodes a NUL-terminated string, capped at maxLen bytes.
func String(maxLen int) Decoder {
	return Func(func(_ *Context, br *bitreader.BitReader) (fieldvalue.Value, error) {
		return fieldvalue.String(br.ReadCString(maxLen)), nil
	})
}

// QuantizedFloat decodes a range-quantized float per cfg.
func QuantizedFloat(cfg quantizedfloat.Config) Decoder {
	return Func(func(_ *Context, br *bitreader.BitReader) (fieldvalue.Value, error) {
		return fieldvalue.Float32(cfg.Decode(br)), nil
	})
}

// Vector3 decodes three consecutive floats.
var Vector3 Decoder = Func(func(ctx *Context, br *bitreader.BitReader) (fieldvalue.Value, error) {
	x := br.ReadFloat32()
	y := br.ReadFloat32()
	z := br.ReadFloat32()
	return fieldvalue.Vector3(x, y, z), nil
})

// Quaternion decodes four consecutive floats.
var Quaternion Decoder = Func(func(ctx *Context, br *bitreader.BitReader) (fieldvalue.Value, error) {
	x := br.ReadFloat32()
	y := br.ReadFloat32()
	z := br.ReadFloat32()
	w := br.ReadFloat32()
	return fieldvalue.Quaternion(x, y, z, w), nil
})

// Handle decodes a networked entity handle, wire-encoded as a uvarint32.
var Handle Decoder = Func(func(_ *Context, br *bitreader.BitReader) (fieldvalue.Value, error) {
	return fieldvalue.Handle(br.ReadUVarint32()), nil
})

// ForVarType resolves the decoder for a flattened-serializer var_type
// string. Unrecognized types resolve to Uint32, the most common wire shape
// for unmodeled scalar fields, rather than failing outright — spec.md §7
// treats decode errors as caller-visible, not as a reason for the core to
// refuse to build a schema it hasn't fully modeled.
func ForVarType(varType string) Decoder {
	switch varType {
	case "bool":
		return Bool
	case "int8", "int16", "int32":
		return Int32
	case "uint8", "uint16", "uint32":
		return Uint32
	case "int64", "uint64":
		return Uint64Fixed
	case "float32":
		return Float32
	case "Vector", "vector3":
		return Vector3
	case "QAngle", "quaternion":
		return Quaternion
	case "CHandle", "handle":
		return Handle
	case "char", "string", "CUtlString", "CUtlSymbolLarge":
		return String(1024)
	default:
		return Uint32
	}
}
