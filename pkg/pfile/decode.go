package pfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Decode reads the fixed header record described by schema from the start of
// src and decodes every field.
//
// src is rewound to offset 0 and exactly schema.Size() bytes are read in one
// go; anything after the record is left unread. Array values share the single
// backing buffer.
func Decode(schema *Schema, src io.ReadSeeker) (Fields, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	buf := make([]byte, schema.Size())
	n, err := io.ReadFull(src, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, truncated(len(buf), n)
		}
		return nil, err
	}
	return decodeRecord(schema, buf)
}

func decodeRecord(schema *Schema, buf []byte) (Fields, error) {
	out := make(Fields, len(schema.fields))
	off := 0
	for _, f := range schema.fields {
		end := off + f.Width
		if end > len(buf) {
			return nil, &SchemaError{Key: schema.key, Field: f.Name, Offset: off,
				Reason: fmt.Sprintf("field runs past record end %d", len(buf))}
		}
		v, err := decodeValue(f, buf[off:end:end])
		if err != nil {
			return nil, &SchemaError{Key: schema.key, Field: f.Name, Offset: off, Reason: err.Error()}
		}
		out[f.Name] = v
		off = end
	}
	if off != len(buf) {
		return nil, &SchemaError{Key: schema.key, Offset: off,
			Reason: fmt.Sprintf("fields cover %d bytes, record size is %d", off, len(buf))}
	}
	return out, nil
}

func decodeValue(f Field, b []byte) (Value, error) {
	if n := f.Kind.Size(); n != 0 && n != len(b) {
		return Value{}, fmt.Errorf("%s field declared %d bytes wide", f.Kind, len(b))
	}
	v := Value{Kind: f.Kind}
	switch f.Kind {
	case KindInt8:
		v.bits = uint64(int64(int8(b[0])))
	case KindInt16:
		v.bits = uint64(int64(int16(binary.LittleEndian.Uint16(b))))
	case KindInt32:
		v.bits = uint64(int64(int32(binary.LittleEndian.Uint32(b))))
	case KindInt64:
		v.bits = binary.LittleEndian.Uint64(b)
	case KindUint8:
		v.bits = uint64(b[0])
	case KindUint16:
		v.bits = uint64(binary.LittleEndian.Uint16(b))
	case KindUint32, KindFloat32:
		v.bits = uint64(binary.LittleEndian.Uint32(b))
	case KindUint64:
		v.bits = binary.LittleEndian.Uint64(b)
	case KindBytes, KindText:
		v.raw = b
	default:
		return Value{}, fmt.Errorf("unsupported kind %s", f.Kind)
	}
	return v, nil
}
