// Package pfile decodes the fixed-size binary header at the start of GE MR
// scanner raw data files ("P-files").
//
// The header layout changes between scanner software revisions. A file is
// decoded in three steps: the revision tag stored in the first four bytes is
// probed, the tag is resolved to one of the registered layouts, and the layout
// is walked in a single forward pass over one bulk read of the header region.
// Layouts are plain data (see layouts.go); the decoder knows nothing about
// individual fields.
//
// The package is read-only. Image data following the header is never read.
package pfile

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Read probes, resolves and decodes the header from src.
//
// If override is non-empty it is used as the revision key and the revision
// tag is not probed at all, so files with a damaged tag can still be decoded
// with a known layout.
func Read(src io.ReadSeeker, override string) (*Header, error) {
	var raw float32
	if override == "" {
		var err error
		raw, err = ProbeRevision(src)
		if err != nil {
			return nil, err
		}
	}

	key, schema, err := Resolve(raw, override)
	if err != nil {
		return nil, err
	}

	// Decode repositions src itself; the probe left the cursor at offset 4.
	fields, err := Decode(schema, src)
	if err != nil {
		return nil, err
	}
	return NewHeader(key, schema, fields), nil
}

// Open maps the file at path read-only and decodes its header.
// If mmap is unavailable it falls back to reading through the file handle.
// The mapping is released before Open returns; decoded values never alias it.
func Open(path string, override string) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size64 := stat.Size()
	if size64 > 0 && size64 <= int64(int(^uint(0)>>1)) {
		data, err := unix.Mmap(int(f.Fd()), 0, int(size64), unix.PROT_READ, unix.MAP_SHARED)
		if err == nil {
			defer func() { _ = unix.Munmap(data) }()
			return Read(bytes.NewReader(data), override)
		}
	}

	// Empty files and filesystems without mmap support land here.
	return Read(f, override)
}
