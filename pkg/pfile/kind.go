package pfile

import "fmt"

// Kind is the primitive type of a header field. All multi-byte kinds are
// stored little-endian.
type Kind uint8

const (
	KindInt8 Kind = iota + 1
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	// KindBytes is an opaque fixed-length byte array, typically padding.
	KindBytes
	// KindText is a fixed-length char array holding NUL-padded text.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindInt8:
		return "i8"
	case KindInt16:
		return "i16"
	case KindInt32:
		return "i32"
	case KindInt64:
		return "i64"
	case KindUint8:
		return "u8"
	case KindUint16:
		return "u16"
	case KindUint32:
		return "u32"
	case KindUint64:
		return "u64"
	case KindFloat32:
		return "f32"
	case KindBytes:
		return "bytes"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Size returns the natural width of a scalar kind in bytes, or 0 for the
// variable-width array kinds.
func (k Kind) Size() int {
	switch k {
	case KindInt8, KindUint8:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	case KindInt64, KindUint64:
		return 8
	default:
		return 0
	}
}

func (k Kind) Signed() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
	return false
}

func (k Kind) Unsigned() bool {
	switch k {
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
	return false
}

// Array reports whether values of this kind are byte sequences.
func (k Kind) Array() bool {
	return k == KindBytes || k == KindText
}

func (k Kind) valid() bool {
	return k >= KindInt8 && k <= KindText
}
