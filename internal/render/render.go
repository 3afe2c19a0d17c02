// Package render turns decoded headers and layouts into text, JSON or YAML.
package render

import (
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/samcharles93/pfile/pkg/pfile"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "", "table":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Options selects what Build includes.
type Options struct {
	// Padding includes the pad_* fields.
	Padding bool
	// Raw adds the hex encoding of every array field.
	Raw bool
}

type Entry struct {
	Name   string `json:"name" yaml:"name"`
	Kind   string `json:"kind" yaml:"kind"`
	Offset int    `json:"offset" yaml:"offset"`
	Width  int    `json:"width" yaml:"width"`
	Value  any    `json:"value,omitempty" yaml:"value,omitempty"`
	Raw    string `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// Document is the rendered form of one decoded header.
type Document struct {
	Source     string  `json:"source,omitempty" yaml:"source,omitempty"`
	Revision   string  `json:"revision" yaml:"revision"`
	Layout     string  `json:"layout" yaml:"layout"`
	Size       int     `json:"size" yaml:"size"`
	ExamTime   string  `json:"exam_time,omitempty" yaml:"exam_time,omitempty"`
	SeriesTime string  `json:"series_time,omitempty" yaml:"series_time,omitempty"`
	Fields     []Entry `json:"fields" yaml:"fields"`
}

// Build renders h. Derived times are omitted when the revision lacks the
// underlying timestamp field.
func Build(source string, h *pfile.Header, opts Options) Document {
	s := h.Schema()
	doc := Document{
		Source:   source,
		Revision: h.Revision(),
		Layout:   s.Key(),
		Size:     s.Size(),
	}
	if t, err := h.ExamTime(); err == nil {
		doc.ExamTime = t.Format(time.RFC3339)
	}
	if t, err := h.SeriesTime(); err == nil {
		doc.SeriesTime = t.Format(time.RFC3339)
	}

	for _, slot := range s.Layout() {
		if slot.Padding() && !opts.Padding {
			continue
		}
		v, err := h.Field(slot.Name)
		if err != nil {
			continue
		}
		e := Entry{
			Name:   slot.Name,
			Kind:   slot.Kind.String(),
			Offset: slot.Offset,
			Width:  slot.Width,
			Value:  plainValue(v),
		}
		if opts.Raw && v.Kind.Array() {
			e.Raw = hex.EncodeToString(v.Bytes())
		}
		doc.Fields = append(doc.Fields, e)
	}
	return doc
}

// plainValue converts v to something every encoder accepts. Opaque arrays
// have no value of their own; they are only shown through Raw.
func plainValue(v pfile.Value) any {
	switch v.Kind {
	case pfile.KindBytes:
		return nil
	case pfile.KindFloat32:
		f, _ := v.Float()
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			return strconv.FormatFloat(float64(f), 'g', -1, 32)
		}
		return f
	}
	return v.Any()
}

// Write encodes docs. JSON output is a single object for one document and
// an array otherwise; YAML output is a document stream.
func Write(w io.Writer, format Format, docs []Document) error {
	switch format {
	case FormatJSON:
		var v any = docs
		if len(docs) == 1 {
			v = docs[0]
		}
		return writeJSON(w, v)
	case FormatYAML:
		return writeYAML(w, docs)
	case FormatText:
		for i, d := range docs {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if err := writeDocumentText(w, d); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeDocumentText(w io.Writer, d Document) error {
	var sb strings.Builder
	if d.Source != "" {
		fmt.Fprintf(&sb, "File: %s\n", d.Source)
	}
	fmt.Fprintf(&sb, "Revision: %s", d.Revision)
	if d.Layout != d.Revision {
		fmt.Fprintf(&sb, " (layout %s)", d.Layout)
	}
	fmt.Fprintf(&sb, " | header=%d bytes | fields=%d\n", d.Size, len(d.Fields))
	if d.ExamTime != "" {
		fmt.Fprintf(&sb, "Exam time:   %s\n", d.ExamTime)
	}
	if d.SeriesTime != "" {
		fmt.Fprintf(&sb, "Series time: %s\n", d.SeriesTime)
	}
	sb.WriteString("\n")
	for _, e := range d.Fields {
		fmt.Fprintf(&sb, "  %-28s %-5s %s\n", e.Name+":", e.Kind, entryText(e))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func entryText(e Entry) string {
	var s string
	switch v := e.Value.(type) {
	case nil:
		s = fmt.Sprintf("<%d bytes>", e.Width)
	case string:
		s = strconv.Quote(v)
	default:
		s = fmt.Sprint(v)
	}
	if e.Raw != "" {
		s += " raw=" + e.Raw
	}
	return s
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func writeYAML[T any](w io.Writer, docs []T) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, d := range docs {
		if err := enc.Encode(d); err != nil {
			return err
		}
	}
	return enc.Close()
}
