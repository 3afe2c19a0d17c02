package main

import (
	"context"
	"io"
	"os"

	"github.com/samcharles93/pfile/internal/s3source"
	"github.com/samcharles93/pfile/pkg/pfile"
)

// decodeSource decodes a local path or an s3:// URI.
func (g *globals) decodeSource(ctx context.Context, src, override string) (*pfile.Header, error) {
	if !s3source.IsURI(src) {
		return pfile.Open(src, override)
	}
	r, err := g.openS3(ctx, src)
	if err != nil {
		return nil, err
	}
	return pfile.Read(r, override)
}

// openSource returns a seekable reader over src and a func releasing it.
func (g *globals) openSource(ctx context.Context, src string) (io.ReadSeeker, func(), error) {
	if s3source.IsURI(src) {
		r, err := g.openS3(ctx, src)
		return r, func() {}, err
	}
	f, err := os.Open(src)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func (g *globals) openS3(ctx context.Context, uri string) (*s3source.Reader, error) {
	api, err := g.s3(ctx)
	if err != nil {
		return nil, err
	}
	return s3source.OpenURI(ctx, api, uri)
}
