package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/samcharles93/pfile/pkg/pfile"
)

// RevisionInfo summarises one registered revision.
type RevisionInfo struct {
	Key    string `json:"key" yaml:"key"`
	Layout string `json:"layout" yaml:"layout"`
	Size   int    `json:"size" yaml:"size"`
	Fields int    `json:"fields" yaml:"fields"`
}

// Revisions lists every registered revision in key order.
func Revisions() []RevisionInfo {
	keys := pfile.KnownRevisions()
	out := make([]RevisionInfo, 0, len(keys))
	for _, k := range keys {
		s, err := pfile.Lookup(k)
		if err != nil {
			continue
		}
		out = append(out, RevisionInfo{Key: k, Layout: s.Key(), Size: s.Size(), Fields: s.Len()})
	}
	return out
}

// LayoutDocument describes a revision layout with offsets.
type LayoutDocument struct {
	Revision string  `json:"revision" yaml:"revision"`
	Layout   string  `json:"layout" yaml:"layout"`
	Size     int     `json:"size" yaml:"size"`
	Fields   []Entry `json:"fields" yaml:"fields"`
}

func BuildLayout(key string, s *pfile.Schema, padding bool) LayoutDocument {
	doc := LayoutDocument{Revision: key, Layout: s.Key(), Size: s.Size()}
	for _, slot := range s.Layout() {
		if slot.Padding() && !padding {
			continue
		}
		doc.Fields = append(doc.Fields, Entry{
			Name:   slot.Name,
			Kind:   slot.Kind.String(),
			Offset: slot.Offset,
			Width:  slot.Width,
		})
	}
	return doc
}

func WriteRevisions(w io.Writer, format Format, revs []RevisionInfo) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, revs)
	case FormatYAML:
		return writeYAML(w, []any{revs})
	case FormatText:
		var sb strings.Builder
		fmt.Fprintf(&sb, "%-10s %-10s %10s %7s\n", "REVISION", "LAYOUT", "BYTES", "FIELDS")
		for _, r := range revs {
			fmt.Fprintf(&sb, "%-10s %-10s %10d %7d\n", r.Key, r.Layout, r.Size, r.Fields)
		}
		_, err := io.WriteString(w, sb.String())
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func WriteLayout(w io.Writer, format Format, doc LayoutDocument) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatYAML:
		return writeYAML(w, []LayoutDocument{doc})
	case FormatText:
		var sb strings.Builder
		fmt.Fprintf(&sb, "Revision %s", doc.Revision)
		if doc.Layout != doc.Revision {
			fmt.Fprintf(&sb, " (layout %s)", doc.Layout)
		}
		fmt.Fprintf(&sb, ": %d bytes\n\n", doc.Size)
		fmt.Fprintf(&sb, "  %8s %7s  %-5s %s\n", "OFFSET", "WIDTH", "KIND", "NAME")
		for _, e := range doc.Fields {
			fmt.Fprintf(&sb, "  %8d %7d  %-5s %s\n", e.Offset, e.Width, e.Kind, e.Name)
		}
		_, err := io.WriteString(w, sb.String())
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
