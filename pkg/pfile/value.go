package pfile

import (
	"bytes"
	"encoding/hex"
	"math"
	"strconv"
)

// Value is one decoded header field.
type Value struct {
	Kind Kind
	bits uint64
	raw  []byte
}

// Int returns integer values as int64. Unsigned values above math.MaxInt64
// report false.
func (v Value) Int() (int64, bool) {
	switch {
	case v.Kind.Signed():
		return int64(v.bits), true
	case v.Kind.Unsigned():
		if v.bits > math.MaxInt64 {
			return 0, false
		}
		return int64(v.bits), true
	}
	return 0, false
}

// Uint returns unsigned values, and signed values that are not negative.
func (v Value) Uint() (uint64, bool) {
	switch {
	case v.Kind.Unsigned():
		return v.bits, true
	case v.Kind.Signed():
		if int64(v.bits) < 0 {
			return 0, false
		}
		return v.bits, true
	}
	return 0, false
}

func (v Value) Float() (float32, bool) {
	if v.Kind != KindFloat32 {
		return 0, false
	}
	return math.Float32frombits(uint32(v.bits)), true
}

// Bytes returns the undecoded bytes of an array field, including any NULs.
// The slice must not be modified.
func (v Value) Bytes() []byte {
	if !v.Kind.Array() {
		return nil
	}
	return v.raw
}

// Text returns a text field with trailing NUL bytes removed. Embedded NULs
// before the last non-NUL byte are kept.
func (v Value) Text() (string, bool) {
	if v.Kind != KindText {
		return "", false
	}
	return string(bytes.TrimRight(v.raw, "\x00")), true
}

// Any returns the value as a plain Go value: int64, uint64, float32,
// string for text and []byte for opaque arrays.
func (v Value) Any() any {
	switch {
	case v.Kind.Signed():
		n, _ := v.Int()
		return n
	case v.Kind.Unsigned():
		return v.bits
	case v.Kind == KindFloat32:
		f, _ := v.Float()
		return f
	case v.Kind == KindText:
		s, _ := v.Text()
		return s
	case v.Kind == KindBytes:
		return v.raw
	}
	return nil
}

func (v Value) String() string {
	switch {
	case v.Kind.Signed():
		n, _ := v.Int()
		return strconv.FormatInt(n, 10)
	case v.Kind.Unsigned():
		return strconv.FormatUint(v.bits, 10)
	case v.Kind == KindFloat32:
		f, _ := v.Float()
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	case v.Kind == KindText:
		s, _ := v.Text()
		return s
	case v.Kind == KindBytes:
		return hex.EncodeToString(v.raw)
	}
	return ""
}

// Fields maps field names to decoded values.
type Fields map[string]Value
