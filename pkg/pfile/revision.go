package pfile

import (
	"encoding/binary"
	"errors"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

const revisionTagSize = 4

// revisions maps revision keys to layouts. Several keys may share a layout.
// It is never written after package initialisation.
//
// "24" reuses the 20.007 layout as pfile-tools did. That alias has not been
// checked field by field against revision 24 files.
var revisions = map[string]*Schema{
	"16":     rev16,
	"20.006": rev20_006,
	"20.007": rev20_007,
	"24":     rev20_007,
	"26.002": rev26_002,
}

// KnownRevisions returns the registered revision keys in sorted order.
func KnownRevisions() []string {
	return slices.Sorted(maps.Keys(revisions))
}

// Lookup returns the layout registered for key.
func Lookup(key string) (*Schema, error) {
	s, ok := revisions[key]
	if !ok {
		return nil, &UnknownRevisionError{Key: key}
	}
	return s, nil
}

// FormatRevision renders a raw revision tag as a revision key: five decimal
// places with trailing zeros and then a trailing point removed, so 16.0
// becomes "16" and 20.006 becomes "20.006".
func FormatRevision(tag float32) string {
	s := strconv.FormatFloat(float64(tag), 'f', 5, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// ProbeRevision reads the raw revision tag from the first four bytes of src.
//
// src is rewound to offset 0 first, so repeated probes agree. On return the
// cursor sits just past the tag: callers that go on to read the header
// themselves must seek back to 0. Decode does this on its own.
func ProbeRevision(src io.ReadSeeker) (float32, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	var buf [revisionTagSize]byte
	n, err := io.ReadFull(src, buf[:])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, truncated(revisionTagSize, n)
		}
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[:])), nil
}

// Resolve maps a raw revision tag to its key and layout. A non-empty
// override is used verbatim as the key and tag is ignored.
// Matching is exact on the key string.
func Resolve(tag float32, override string) (string, *Schema, error) {
	key := override
	if key == "" {
		key = FormatRevision(tag)
	}
	s, err := Lookup(key)
	if err != nil {
		return "", nil, err
	}
	return key, s, nil
}
