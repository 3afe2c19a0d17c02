// Package pfiletest builds synthetic P-file headers for tests.
package pfiletest

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/samcharles93/pfile/pkg/pfile"
)

// Builder fills a zeroed header record field by field.
type Builder struct {
	schema *pfile.Schema
	buf    []byte
	tail   int
}

// New returns a builder for schema with the revision tag left zero.
func New(schema *pfile.Schema) *Builder {
	return &Builder{schema: schema, buf: make([]byte, schema.Size())}
}

// ForRevision returns a builder for the layout registered under key with the
// revision tag set to key parsed as a float.
func ForRevision(key string) (*Builder, error) {
	s, err := pfile.Lookup(key)
	if err != nil {
		return nil, err
	}
	tag, err := strconv.ParseFloat(key, 32)
	if err != nil {
		return nil, fmt.Errorf("revision %q is not numeric: %w", key, err)
	}
	return New(s).Set("revision", float32(tag)), nil
}

// MustForRevision is ForRevision that panics on error.
func MustForRevision(key string) *Builder {
	b, err := ForRevision(key)
	if err != nil {
		panic(err)
	}
	return b
}

// Set encodes v into the named field. Integers are truncated to the field
// width; strings and byte slices are copied and NUL padded. It panics on
// unknown names or unsupported value types.
func (b *Builder) Set(name string, v any) *Builder {
	f, ok := b.schema.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("pfiletest: revision %s has no field %q", b.schema.Key(), name))
	}
	off, _ := b.schema.Offset(name)
	dst := b.buf[off : off+f.Width]

	switch x := v.(type) {
	case string:
		clear(dst)
		copy(dst, x)
	case []byte:
		clear(dst)
		copy(dst, x)
	case float32:
		binary.LittleEndian.PutUint32(dst, math.Float32bits(x))
	case float64:
		binary.LittleEndian.PutUint32(dst, math.Float32bits(float32(x)))
	default:
		n, ok := asUint64(v)
		if !ok {
			panic(fmt.Sprintf("pfiletest: unsupported value %T for %q", v, name))
		}
		putUint(dst, n)
	}
	return b
}

// Tail appends n bytes of trailing data after the record, standing in for
// image data.
func (b *Builder) Tail(n int) *Builder {
	b.tail = n
	return b
}

// Bytes returns the encoded record followed by any tail.
func (b *Builder) Bytes() []byte {
	out := make([]byte, len(b.buf)+b.tail)
	copy(out, b.buf)
	for i := len(b.buf); i < len(out); i++ {
		out[i] = 0xA5
	}
	return out
}

func putUint(dst []byte, n uint64) {
	switch len(dst) {
	case 1:
		dst[0] = byte(n)
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(n))
	case 4:
		binary.LittleEndian.PutUint32(dst, uint32(n))
	case 8:
		binary.LittleEndian.PutUint64(dst, n)
	default:
		panic(fmt.Sprintf("pfiletest: cannot store integer in %d bytes", len(dst)))
	}
}

func asUint64(v any) (uint64, bool) {
	switch t := v.(type) {
	case int:
		return uint64(t), true
	case int8:
		return uint64(t), true
	case int16:
		return uint64(t), true
	case int32:
		return uint64(t), true
	case int64:
		return uint64(t), true
	case uint:
		return uint64(t), true
	case uint8:
		return uint64(t), true
	case uint16:
		return uint64(t), true
	case uint32:
		return uint64(t), true
	case uint64:
		return t, true
	default:
		return 0, false
	}
}
