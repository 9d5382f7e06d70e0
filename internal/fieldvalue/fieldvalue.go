// Package fieldvalue defines FieldValue, the tagged sum over decoded
// primitive and domain types that spec.md §3 leaves opaque to the core: it
// is "produced by decoders, consumed by callers." This package is that
// boundary type.
package fieldvalue

// Kind discriminates the variant a Value holds.
type Kind uint8

// Variants of FieldValue, per spec.md §3.
const (
	KindInvalid Kind = iota
	KindBool
	KindInt64
	KindUint64
	KindFloat32
	KindString
	KindVector2
	KindVector3
	KindVector4
	KindQuaternion
	KindHandle
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindString:
		return "string"
	case KindVector2:
		return "vector2"
	case KindVector3:
		return "vector3"
	case KindVector4:
		return "vector4"
	case KindQuaternion:
		return "quaternion"
	case KindHandle:
		return "handle"
	default:
		return "invalid"
	}
}

// ErrInvalidConversion is returned when a caller requests a Value as a type
// other than the one it actually holds.
type ErrInvalidConversion struct {
	Have Kind
	Want Kind
}

func (e *ErrInvalidConversion) Error() string {
	return "fieldvalue: cannot read " + e.Have.String() + " as " + e.Want.String()
}

// Value is a tagged union over the decoded field types the core hands
// back to callers. The zero Value is KindInvalid.
type Value struct {
	kind Kind
	u    uint64
	f    [4]float32
	s    string
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// Bool constructs a KindBool value.
func Bool(b bool) Value {
	u := uint64(0)
	if b {
		u = 1
	}
	return Value{kind: KindBool, u: u}
}

// Int64 constructs a KindInt64 value.
func Int64(i int64) Value { return Value{kind: KindInt64, u: uint64(i)} }

// Uint64 constructs a KindUint64 value.
func Uint64(u uint64) Value { return Value{kind: KindUint64, u: u} }

// Float32 constructs a KindFloat32 value.
func Float32(f float32) Value { return Value{kind: KindFloat32, f: [4]float32{f}} }

// String constructs a KindString value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Vector2 constructs a KindVector2 value.
func Vector2(x, y float32) Value { return Value{kind: KindVector2, f: [4]float32{x, y}} }

// Vector3 constructs a KindVector3 value.
func Vector3(x, y, z float32) Value { return Value{kind: KindVector3, f: [4]float32{x, y, z}} }

// Vector4 constructs a KindVector4 value.
func Vector4(x, y, z, w float32) Value {
	return Value{kind: KindVector4, f: [4]float32{x, y, z, w}}
}

// Quaternion constructs a KindQuaternion value.
func Quaternion(x, y, z, w float32) Value {
	return Value{kind: KindQuaternion, f: [4]float32{x, y, z, w}}
}

// Handle constructs a KindHandle value wrapping a raw networked handle.
func Handle(h uint32) Value { return Value{kind: KindHandle, u: uint64(h)} }

// AsBool returns v as a bool, or ErrInvalidConversion if v is not KindBool.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, &ErrInvalidConversion{Have: v.kind, Want: KindBool}
	}
	return v.u != 0, nil
}

// AsInt64 returns v as an int64, or ErrInvalidConversion if v is not KindInt64.
func (v Value) AsInt64() (int64, error) {
	if v.kind != KindInt64 {
		return 0, &ErrInvalidConversion{Have: v.kind, Want: KindInt64}
	}
	return int64(v.u), nil
}

// AsUint64 returns v as a uint64, or ErrInvalidConversion if v is not KindUint64.
func (v Value) AsUint64() (uint64, error) {
	if v.kind != KindUint64 {
		return 0, &ErrInvalidConversion{Have: v.kind, Want: KindUint64}
	}
	return v.u, nil
}

// AsFloat32 returns v as a float32, or ErrInvalidConversion if v is not KindFloat32.
func (v Value) AsFloat32() (float32, error) {
	if v.kind != KindFloat32 {
		return 0, &ErrInvalidConversion{Have: v.kind, Want: KindFloat32}
	}
	return v.f[0], nil
}

// AsString returns v as a string, or ErrInvalidConversion if v is not KindString.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", &ErrInvalidConversion{Have: v.kind, Want: KindString}
	}
	return v.s, nil
}

// AsVector3 returns v as a [3]float32, or ErrInvalidConversion if v is not KindVector3.
func (v Value) AsVector3() ([3]float32, error) {
	if v.kind != KindVector3 {
		return [3]float32{}, &ErrInvalidConversion{Have: v.kind, Want: KindVector3}
	}
	return [3]float32{v.f[0], v.f[1], v.f[2]}, nil
}

// AsQuaternion returns v as a [4]float32, or ErrInvalidConversion if v is not KindQuaternion.
func (v Value) AsQuaternion() ([4]float32, error) {
	if v.kind != KindQuaternion {
		return [4]float32{}, &ErrInvalidConversion{Have: v.kind, Want: KindQuaternion}
	}
	return v.f, nil
}

// AsHandle returns v as a raw networked handle, or ErrInvalidConversion if v is not KindHandle.
func (v Value) AsHandle() (uint32, error) {
	if v.kind != KindHandle {
		return 0, &ErrInvalidConversion{Have: v.kind, Want: KindHandle}
	}
	return uint32(v.u), nil
}
