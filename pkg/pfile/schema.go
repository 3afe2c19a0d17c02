package pfile

import (
	"fmt"
	"strings"
)

// Field describes one entry of a header layout. Offsets are not stored: a
// field starts where the previous one ends.
type Field struct {
	Name  string
	Kind  Kind
	Width int
}

// Padding reports whether the field only exists to keep later offsets right.
func (f Field) Padding() bool {
	return strings.HasPrefix(f.Name, "pad_")
}

// Slot is a field together with its computed byte offset.
type Slot struct {
	Field
	Offset int
}

// Schema is the ordered field layout of one header revision.
type Schema struct {
	key    string
	size   int
	fields []Field
	index  map[string]int
}

// NewSchema builds a layout of the given declared record size. Field names
// must be unique and widths positive. Whether the widths tile size exactly is
// checked by Validate and, independently, by every Decode.
func NewSchema(key string, size int, fields []Field) (*Schema, error) {
	if size <= 0 {
		return nil, fmt.Errorf("revision %s: invalid record size %d", key, size)
	}
	s := &Schema{
		key:    key,
		size:   size,
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	copy(s.fields, fields)
	for i, f := range s.fields {
		if f.Name == "" {
			return nil, fmt.Errorf("revision %s: field %d has no name", key, i)
		}
		if f.Width <= 0 {
			return nil, fmt.Errorf("revision %s: field %q has width %d", key, f.Name, f.Width)
		}
		if !f.Kind.valid() {
			return nil, fmt.Errorf("revision %s: field %q has invalid kind %s", key, f.Name, f.Kind)
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, fmt.Errorf("revision %s: duplicate field %q", key, f.Name)
		}
		s.index[f.Name] = i
	}
	return s, nil
}

func mustSchema(key string, size int, fields []Field) *Schema {
	s, err := NewSchema(key, size, fields)
	if err != nil {
		panic(err)
	}
	return s
}

// Key is the canonical revision key the layout was registered under.
func (s *Schema) Key() string { return s.key }

// Size is the fixed record size in bytes.
func (s *Schema) Size() int { return s.size }

func (s *Schema) Len() int { return len(s.fields) }

// Fields returns a copy of the field list in decode order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

func (s *Schema) Lookup(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Layout returns every field with its byte offset.
func (s *Schema) Layout() []Slot {
	out := make([]Slot, len(s.fields))
	off := 0
	for i, f := range s.fields {
		out[i] = Slot{Field: f, Offset: off}
		off += f.Width
	}
	return out
}

// Offset returns the byte offset of the named field.
func (s *Schema) Offset(name string) (int, bool) {
	i, ok := s.index[name]
	if !ok {
		return 0, false
	}
	off := 0
	for _, f := range s.fields[:i] {
		off += f.Width
	}
	return off, true
}

// Validate checks that scalar widths match their kinds and that the fields
// tile the declared size exactly.
func (s *Schema) Validate() error {
	off := 0
	for _, f := range s.fields {
		if n := f.Kind.Size(); n != 0 && n != f.Width {
			return &SchemaError{Key: s.key, Field: f.Name, Offset: off,
				Reason: fmt.Sprintf("%s field declared %d bytes wide", f.Kind, f.Width)}
		}
		off += f.Width
	}
	if off != s.size {
		return &SchemaError{Key: s.key, Offset: off,
			Reason: fmt.Sprintf("fields cover %d bytes, record size is %d", off, s.size)}
	}
	return nil
}

// Layout table helpers.

func i16(name string) Field { return Field{Name: name, Kind: KindInt16, Width: 2} }
func u16(name string) Field { return Field{Name: name, Kind: KindUint16, Width: 2} }
func i32(name string) Field { return Field{Name: name, Kind: KindInt32, Width: 4} }
func u32(name string) Field { return Field{Name: name, Kind: KindUint32, Width: 4} }
func u64(name string) Field { return Field{Name: name, Kind: KindUint64, Width: 8} }
func f32(name string) Field { return Field{Name: name, Kind: KindFloat32, Width: 4} }

func text(name string, n int) Field { return Field{Name: name, Kind: KindText, Width: n} }
func pad(name string, n int) Field  { return Field{Name: name, Kind: KindBytes, Width: n} }

// floats expands to f32 fields named prefix+"_"+i for i in [from, to].
func floats(prefix string, from, to int) []Field {
	out := make([]Field, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, f32(fmt.Sprintf("%s_%d", prefix, i)))
	}
	return out
}

func concat(groups ...[]Field) []Field {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	out := make([]Field, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
