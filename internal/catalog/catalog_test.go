package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samcharles93/pfile/internal/pfiletest"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestExpand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "P00002.7", nil)
	writeFile(t, dir, "P00001.7", nil)
	writeFile(t, dir, "notes.txt", nil)
	if err := os.Mkdir(filepath.Join(dir, "P99999.7"), 0o755); err != nil {
		t.Fatal(err)
	}
	single := writeFile(t, t.TempDir(), "scan.dat", nil)

	got, err := Expand([]string{dir, single, "s3://bucket/P1.7"}, "")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	want := []string{
		filepath.Join(dir, "P00001.7"),
		filepath.Join(dir, "P00002.7"),
		single,
		"s3://bucket/P1.7",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("Expand = %v, want %v", got, want)
	}

	if _, err := Expand([]string{dir}, "[bad"); err == nil {
		t.Fatal("expected error for malformed pattern")
	}
}

func TestCollectAndWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "P00001.7", pfiletest.MustForRevision("20.007").
		Set("exam_number", uint16(4242)).
		Set("series_number", int16(3)).
		Set("exam_timestamp", int32(1356998400)).
		Set("patient_id", "PID-1").
		Set("psd_name", "probe-p").
		Set("magnet_strength", int32(30000)).
		Set("tr", int32(2000)).
		Tail(64).
		Bytes())
	writeFile(t, dir, "P00002.7", []byte{1, 2, 3})

	rows, err := Collect(context.Background(), []string{dir}, Options{})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	ok := rows[0]
	if ok.Error != "" || ok.Revision != "20.007" || ok.ExamNumber != 4242 || ok.SeriesNumber != 3 {
		t.Fatalf("unexpected row: %+v", ok)
	}
	if ok.PatientID != "PID-1" || ok.PSDName != "probe-p" || ok.MagnetStrength != 30000 || ok.TR != 2000 {
		t.Fatalf("unexpected row: %+v", ok)
	}
	if ok.ExamTime != "2013-01-01T00:00:00Z" {
		t.Fatalf("exam time: %q", ok.ExamTime)
	}
	if bad := rows[1]; bad.Error == "" || bad.Revision != "" {
		t.Fatalf("expected error row, got %+v", bad)
	}

	out := filepath.Join(t.TempDir(), "catalog.parquet")
	if err := Write(out, rows); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := Read(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(back) != 2 || back[0] != rows[0] || back[1] != rows[1] {
		t.Fatalf("parquet rows differ:\n got %+v\nwant %+v", back, rows)
	}
}

func TestCollectOverrideAndCancel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := writeFile(t, dir, "P00001.7", pfiletest.MustForRevision("16").Bytes())

	rows, err := Collect(context.Background(), []string{p}, Options{Override: "24"})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	// A rev 16 file is shorter than the rev 24 layout.
	if rows[0].Error == "" {
		t.Fatalf("expected truncation error with override, got %+v", rows[0])
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Collect(ctx, []string{p}, Options{}); err == nil {
		t.Fatal("expected context error")
	}
}
