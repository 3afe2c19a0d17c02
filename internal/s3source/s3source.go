// Package s3source reads P-file headers straight out of S3 without
// downloading the image data that follows them.
package s3source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// API is the subset of the S3 client the reader needs.
type API interface {
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// NewClient builds an S3 client from the default AWS configuration chain.
// An empty region leaves region resolution to that chain.
func NewClient(ctx context.Context, region string) (*s3.Client, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// IsURI reports whether s names an S3 object.
func IsURI(s string) bool {
	return strings.HasPrefix(s, "s3://")
}

// ParseURI splits s3://bucket/key into its parts. The key is required.
func ParseURI(uri string) (bucket, key string, err error) {
	if !IsURI(uri) {
		return "", "", errors.New("invalid S3 URI: must start with s3://")
	}
	bucket, key, _ = strings.Cut(strings.TrimPrefix(uri, "s3://"), "/")
	if bucket == "" {
		return "", "", errors.New("invalid S3 URI: missing bucket name")
	}
	if key == "" {
		return "", "", fmt.Errorf("invalid S3 URI %q: missing object key", uri)
	}
	return bucket, key, nil
}

// Reader is an io.ReadSeeker over one S3 object. Every Read is served by a
// ranged GetObject, so only the bytes asked for leave the bucket.
type Reader struct {
	ctx    context.Context
	api    API
	bucket string
	key    string
	size   int64
	off    int64
}

// Open stats the object and returns a reader positioned at its start. ctx
// bounds every request the reader makes.
func Open(ctx context.Context, api API, bucket, key string) (*Reader, error) {
	out, err := api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("head object s3://%s/%s: %w", bucket, key, err)
	}
	return &Reader{
		ctx:    ctx,
		api:    api,
		bucket: bucket,
		key:    key,
		size:   aws.ToInt64(out.ContentLength),
	}, nil
}

// OpenURI is Open for an s3:// URI.
func OpenURI(ctx context.Context, api API, uri string) (*Reader, error) {
	bucket, key, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}
	return Open(ctx, api, bucket, key)
}

// Size is the object length reported by HeadObject.
func (r *Reader) Size() int64 { return r.size }

func (r *Reader) String() string { return "s3://" + r.bucket + "/" + r.key }

func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.off >= r.size {
		return 0, io.EOF
	}
	n := min(int64(len(p)), r.size-r.off)
	out, err := r.api.GetObject(r.ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key),
		Range:  aws.String(fmt.Sprintf("bytes=%d-%d", r.off, r.off+n-1)),
	})
	if err != nil {
		return 0, fmt.Errorf("get object %s range %d+%d: %w", r, r.off, n, err)
	}
	defer out.Body.Close()

	got, err := io.ReadFull(out.Body, p[:n])
	r.off += int64(got)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			// The object shrank under us; report what arrived.
			if got > 0 {
				return got, nil
			}
			return 0, io.EOF
		}
		return got, fmt.Errorf("read %s: %w", r, err)
	}
	return got, nil
}

func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = r.off + offset
	case io.SeekEnd:
		abs = r.size + offset
	default:
		return 0, fmt.Errorf("s3source: invalid whence %d", whence)
	}
	if abs < 0 {
		return 0, errors.New("s3source: negative position")
	}
	r.off = abs
	return abs, nil
}
