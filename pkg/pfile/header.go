package pfile

import (
	"time"
)

const (
	fieldExamTimestamp   = "exam_timestamp"
	fieldSeriesTimestamp = "series_timestamp"
)

// Header is a decoded P-file header. It is not modified after construction
// and is safe for concurrent use.
type Header struct {
	revision string
	schema   *Schema
	fields   Fields
}

// NewHeader wraps decoded fields. revision is the key the header was resolved
// under, which differs from schema.Key() for aliased revisions.
func NewHeader(revision string, schema *Schema, fields Fields) *Header {
	return &Header{revision: revision, schema: schema, fields: fields}
}

func (h *Header) Revision() string { return h.revision }

func (h *Header) Schema() *Schema { return h.schema }

// Has reports whether the revision's layout includes name.
func (h *Header) Has(name string) bool {
	_, ok := h.fields[name]
	return ok
}

// Field returns the decoded value of name. Layouts differ between
// revisions, so a name valid for one file may be unknown for another.
func (h *Header) Field(name string) (Value, error) {
	v, ok := h.fields[name]
	if !ok {
		return Value{}, &FieldError{Revision: h.revision, Name: name, Err: ErrUnknownField}
	}
	return v, nil
}

// Names returns field names in layout order. Padding is omitted unless
// withPadding is set.
func (h *Header) Names(withPadding bool) []string {
	out := make([]string, 0, len(h.schema.fields))
	for _, f := range h.schema.fields {
		if f.Padding() && !withPadding {
			continue
		}
		out = append(out, f.Name)
	}
	return out
}

func (h *Header) Int(name string) (int64, error) {
	v, err := h.Field(name)
	if err != nil {
		return 0, err
	}
	n, ok := v.Int()
	if !ok {
		return 0, h.kindError(name)
	}
	return n, nil
}

func (h *Header) Uint(name string) (uint64, error) {
	v, err := h.Field(name)
	if err != nil {
		return 0, err
	}
	n, ok := v.Uint()
	if !ok {
		return 0, h.kindError(name)
	}
	return n, nil
}

func (h *Header) Float(name string) (float32, error) {
	v, err := h.Field(name)
	if err != nil {
		return 0, err
	}
	f, ok := v.Float()
	if !ok {
		return 0, h.kindError(name)
	}
	return f, nil
}

// Text returns a text field with trailing NULs removed.
func (h *Header) Text(name string) (string, error) {
	v, err := h.Field(name)
	if err != nil {
		return "", err
	}
	s, ok := v.Text()
	if !ok {
		return "", h.kindError(name)
	}
	return s, nil
}

// Bytes returns the raw bytes of an array field.
func (h *Header) Bytes(name string) ([]byte, error) {
	v, err := h.Field(name)
	if err != nil {
		return nil, err
	}
	if !v.Kind.Array() {
		return nil, h.kindError(name)
	}
	return v.Bytes(), nil
}

// ExamTime converts exam_timestamp (Unix seconds) to a UTC time.
func (h *Header) ExamTime() (time.Time, error) {
	return h.unixTime(fieldExamTimestamp)
}

// SeriesTime converts series_timestamp (Unix seconds) to a UTC time.
// Revision 16 headers carry no series timestamp.
func (h *Header) SeriesTime() (time.Time, error) {
	return h.unixTime(fieldSeriesTimestamp)
}

func (h *Header) unixTime(name string) (time.Time, error) {
	v, ok := h.fields[name]
	if !ok {
		return time.Time{}, &FieldError{Revision: h.revision, Name: name, Err: ErrMissingField}
	}
	sec, ok := v.Int()
	if !ok {
		return time.Time{}, h.kindError(name)
	}
	return time.Unix(sec, 0).UTC(), nil
}

func (h *Header) kindError(name string) error {
	return &FieldError{Revision: h.revision, Name: name, Err: ErrFieldKind}
}
