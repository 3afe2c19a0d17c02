// Package catalog summarises many P-file headers into one Parquet table.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/samcharles93/pfile/internal/logger"
	"github.com/samcharles93/pfile/pkg/pfile"
)

// DefaultPattern matches GE raw data files inside a directory.
const DefaultPattern = "P*.7"

// Row is one catalogued file. Files that fail to decode still produce a row,
// with Error set and the header columns left zero.
type Row struct {
	Path           string `parquet:"path"`
	Revision       string `parquet:"revision"`
	Layout         string `parquet:"layout"`
	ExamNumber     int64  `parquet:"exam_number"`
	SeriesNumber   int64  `parquet:"series_number"`
	ExamTime       string `parquet:"exam_time"`
	SeriesTime     string `parquet:"series_time"`
	PatientID      string `parquet:"patient_id"`
	PSDName        string `parquet:"psd_name"`
	CoilName       string `parquet:"coil_name"`
	MagnetStrength int64  `parquet:"magnet_strength"`
	TR             int64  `parquet:"tr"`
	TE             int64  `parquet:"te"`
	TI             int64  `parquet:"ti"`
	Error          string `parquet:"error"`
}

// DecodeFunc produces the header for one input.
type DecodeFunc func(ctx context.Context, path string) (*pfile.Header, error)

type Options struct {
	// Pattern selects files inside directory inputs. Defaults to DefaultPattern.
	Pattern string
	// Decode opens one input. Defaults to pfile.Open with Override.
	Decode   DecodeFunc
	Override string
}

// Expand replaces every directory in inputs with the files directly inside
// it that match pattern, in name order. Other inputs pass through untouched,
// so remote URIs and missing paths reach the decoder and fail there.
func Expand(inputs []string, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("pattern %q: %w", pattern, err)
	}
	var out []string
	for _, in := range inputs {
		info, err := os.Stat(in)
		if err != nil || !info.IsDir() {
			out = append(out, in)
			continue
		}
		entries, err := os.ReadDir(in)
		if err != nil {
			return nil, fmt.Errorf("read dir %s: %w", in, err)
		}
		var matched []string
		for _, e := range entries {
			if !e.Type().IsRegular() {
				continue
			}
			if ok, _ := filepath.Match(pattern, e.Name()); ok {
				matched = append(matched, filepath.Join(in, e.Name()))
			}
		}
		slices.Sort(matched)
		out = append(out, matched...)
	}
	return out, nil
}

// Collect decodes every input and returns one row per file. It stops early
// only when ctx is cancelled.
func Collect(ctx context.Context, inputs []string, opts Options) ([]Row, error) {
	log := logger.FromContext(ctx)
	decode := opts.Decode
	if decode == nil {
		decode = func(_ context.Context, path string) (*pfile.Header, error) {
			return pfile.Open(path, opts.Override)
		}
	}

	paths, err := Expand(inputs, opts.Pattern)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return rows, err
		}
		h, err := decode(ctx, p)
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				log.Warn("skipping unreadable file", "path", p, "error", err)
			} else {
				log.Debug("decode failed", "path", p, "error", err)
			}
			rows = append(rows, Row{Path: p, Error: err.Error()})
			continue
		}
		rows = append(rows, NewRow(p, h))
	}
	return rows, nil
}

// NewRow extracts the catalogue columns from h. Columns the revision lacks
// stay zero.
func NewRow(path string, h *pfile.Header) Row {
	r := Row{
		Path:           path,
		Revision:       h.Revision(),
		Layout:         h.Schema().Key(),
		ExamNumber:     intField(h, "exam_number"),
		SeriesNumber:   intField(h, "series_number"),
		PatientID:      textField(h, "patient_id"),
		PSDName:        textField(h, "psd_name"),
		CoilName:       textField(h, "coil_name"),
		MagnetStrength: intField(h, "magnet_strength"),
		TR:             intField(h, "tr"),
		TE:             intField(h, "te"),
		TI:             intField(h, "ti"),
	}
	if t, err := h.ExamTime(); err == nil {
		r.ExamTime = t.Format(time.RFC3339)
	}
	if t, err := h.SeriesTime(); err == nil {
		r.SeriesTime = t.Format(time.RFC3339)
	}
	return r
}

// Write stores rows as a Parquet file at path.
func Write(path string, rows []Row) error {
	if err := parquet.WriteFile(path, rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Read loads a catalogue written by Write.
func Read(path string) ([]Row, error) {
	rows, err := parquet.ReadFile[Row](path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

func intField(h *pfile.Header, name string) int64 {
	n, _ := h.Int(name)
	return n
}

func textField(h *pfile.Header, name string) string {
	s, _ := h.Text(name)
	return s
}
