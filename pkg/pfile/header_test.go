package pfile_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/samcharles93/pfile/internal/pfiletest"
	"github.com/samcharles93/pfile/pkg/pfile"
)

func decodeFixture(t *testing.T, b *pfiletest.Builder) *pfile.Header {
	t.Helper()
	h, err := pfile.Read(bytes.NewReader(b.Bytes()), "")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return h
}

func TestHeaderFieldLookup(t *testing.T) {
	t.Parallel()

	h := decodeFixture(t, pfiletest.MustForRevision("26.002").
		Set("series_timestamp", int32(1700000000)).
		Set("series_number", int32(7)).
		Set("coil_name", "8HRBRAIN").
		Set("bandwidth", float32(62.5)))

	if _, err := h.Field("no_such_field"); !errors.Is(err, pfile.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	var fe *pfile.FieldError
	_, err := h.Int("no_such_field")
	if !errors.As(err, &fe) || fe.Name != "no_such_field" || fe.Revision != "26.002" {
		t.Fatalf("expected FieldError naming the field, got %v", err)
	}

	if _, err := h.Text("series_number"); !errors.Is(err, pfile.ErrFieldKind) {
		t.Fatalf("expected ErrFieldKind for text on integer, got %v", err)
	}
	if _, err := h.Float("coil_name"); !errors.Is(err, pfile.ErrFieldKind) {
		t.Fatalf("expected ErrFieldKind for float on text, got %v", err)
	}

	if n, err := h.Int("series_number"); err != nil || n != 7 {
		t.Fatalf("series_number: got %d, %v", n, err)
	}
	if s, err := h.Text("coil_name"); err != nil || s != "8HRBRAIN" {
		t.Fatalf("coil_name: got %q, %v", s, err)
	}
	raw, err := h.Bytes("coil_name")
	if err != nil || len(raw) != 17 {
		t.Fatalf("coil_name raw: got %d bytes, %v", len(raw), err)
	}
	if f, err := h.Float("bandwidth"); err != nil || f != 62.5 {
		t.Fatalf("bandwidth: got %v, %v", f, err)
	}

	st, err := h.SeriesTime()
	if err != nil {
		t.Fatalf("series time: %v", err)
	}
	if want := time.Unix(1700000000, 0).UTC(); !st.Equal(want) {
		t.Fatalf("series time: got %v want %v", st, want)
	}
}

func TestHeaderExamTimeEpochZeroIsNotMissing(t *testing.T) {
	t.Parallel()

	h := decodeFixture(t, pfiletest.MustForRevision("20.006"))
	got, err := h.ExamTime()
	if err != nil {
		t.Fatalf("exam time: %v", err)
	}
	if !got.Equal(time.Unix(0, 0)) {
		t.Fatalf("exam time: got %v", got)
	}
}

func TestHeaderNames(t *testing.T) {
	t.Parallel()

	h := decodeFixture(t, pfiletest.MustForRevision("16"))
	all := h.Names(true)
	if len(all) != h.Schema().Len() {
		t.Fatalf("names with padding: got %d want %d", len(all), h.Schema().Len())
	}
	visible := h.Names(false)
	if slices.ContainsFunc(visible, func(n string) bool { return len(n) > 4 && n[:4] == "pad_" }) {
		t.Fatalf("padding leaked into names: %v", visible)
	}
	if visible[0] != "revision" || !slices.Contains(visible, "exam_timestamp") {
		t.Fatalf("unexpected names: %v", visible[:5])
	}
	if slices.Contains(visible, "series_timestamp") {
		t.Fatalf("revision 16 should not list series_timestamp")
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "P12345.7")
	data := pfiletest.MustForRevision("20.007").
		Set("exam_timestamp", int32(1356998400)).
		Set("psd_name", "spiral").
		Tail(8192).
		Bytes()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	h, err := pfile.Open(path, "")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if h.Revision() != "20.007" {
		t.Fatalf("revision: got %q", h.Revision())
	}
	// Values must outlive the mapping released by Open.
	if s, _ := h.Text("psd_name"); s != "spiral" {
		t.Fatalf("psd_name: got %q", s)
	}
}

func TestOpenEmptyAndMissing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.7")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := pfile.Open(empty, ""); !errors.Is(err, pfile.ErrTruncatedInput) {
		t.Fatalf("empty file: expected ErrTruncatedInput, got %v", err)
	}
	if _, err := pfile.Open(filepath.Join(dir, "missing.7"), ""); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: expected ErrNotExist, got %v", err)
	}
}
