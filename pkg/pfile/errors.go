package pfile

import (
	"errors"
	"fmt"
)

var (
	ErrTruncatedInput  = errors.New("truncated P-file header")
	ErrUnknownRevision = errors.New("unknown P-file revision")
	ErrUnknownField    = errors.New("unknown header field")
	ErrMissingField    = errors.New("header field not present in revision")
	ErrFieldKind       = errors.New("header field kind mismatch")
	ErrSchemaInvariant = errors.New("header layout invariant violated")
)

// UnknownRevisionError reports a revision key with no registered layout.
// It matches ErrUnknownRevision with errors.Is.
type UnknownRevisionError struct {
	Key string
}

func (e *UnknownRevisionError) Error() string {
	return fmt.Sprintf("%s: no header layout for revision %q", ErrUnknownRevision, e.Key)
}

func (e *UnknownRevisionError) Is(target error) bool {
	return target == ErrUnknownRevision
}

// FieldError reports a lookup of a field by name. Err is one of
// ErrUnknownField, ErrMissingField or ErrFieldKind.
type FieldError struct {
	Revision string
	Name     string
	Err      error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %q (revision %s)", e.Err, e.Name, e.Revision)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// SchemaError reports a layout whose descriptors do not tile its declared
// record size. It indicates a bug in a layout table, never bad input.
type SchemaError struct {
	Key    string
	Field  string
	Offset int
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: revision %s at offset %d: %s", ErrSchemaInvariant, e.Key, e.Offset, e.Reason)
	}
	return fmt.Sprintf("%s: revision %s field %q at offset %d: %s", ErrSchemaInvariant, e.Key, e.Field, e.Offset, e.Reason)
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrSchemaInvariant
}

func truncated(want, got int) error {
	return fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedInput, want, got)
}
