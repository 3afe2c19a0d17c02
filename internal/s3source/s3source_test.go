package s3source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/samcharles93/pfile/internal/pfiletest"
	"github.com/samcharles93/pfile/pkg/pfile"
)

type fakeS3 struct {
	objects map[string][]byte
	ranges  []string
}

func (f *fakeS3) object(bucket, key *string) ([]byte, error) {
	data, ok := f.objects[aws.ToString(bucket)+"/"+aws.ToString(key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return data, nil
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	data, err := f.object(in.Bucket, in.Key)
	if err != nil {
		return nil, err
	}
	return &s3.HeadObjectOutput{ContentLength: aws.Int64(int64(len(data)))}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, err := f.object(in.Bucket, in.Key)
	if err != nil {
		return nil, err
	}
	rng := aws.ToString(in.Range)
	f.ranges = append(f.ranges, rng)
	var start, end int
	if _, err := fmt.Sscanf(rng, "bytes=%d-%d", &start, &end); err != nil {
		return nil, fmt.Errorf("bad range %q: %w", rng, err)
	}
	end = min(end, len(data)-1)
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data[start : end+1]))}, nil
}

func TestParseURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in          string
		bucket, key string
		wantErr     bool
	}{
		{"s3://scans/exam1/P00001.7", "scans", "exam1/P00001.7", false},
		{"s3://scans/P1.7", "scans", "P1.7", false},
		{"s3://scans", "", "", true},
		{"s3://scans/", "", "", true},
		{"s3:///key", "", "", true},
		{"/data/P00001.7", "", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			bucket, key, err := ParseURI(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q %q", bucket, key)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseURI: %v", err)
			}
			if bucket != tc.bucket || key != tc.key {
				t.Fatalf("got %q %q", bucket, key)
			}
		})
	}
}

func TestReaderRangedReads(t *testing.T) {
	t.Parallel()

	data := []byte("0123456789")
	api := &fakeS3{objects: map[string][]byte{"b/k": data}}
	r, err := Open(context.Background(), api, "b", "k")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if r.Size() != 10 {
		t.Fatalf("size: %d", r.Size())
	}

	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil || string(buf) != "0123" {
		t.Fatalf("first read: %q %v", buf, err)
	}
	if _, err := r.Seek(-3, io.SeekEnd); err != nil {
		t.Fatalf("seek: %v", err)
	}
	n, err := r.Read(buf)
	if err != nil || string(buf[:n]) != "789" {
		t.Fatalf("tail read: %q %v", buf[:n], err)
	}
	if _, err := r.Read(buf); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
	want := []string{"bytes=0-3", "bytes=7-9"}
	if len(api.ranges) != len(want) || api.ranges[0] != want[0] || api.ranges[1] != want[1] {
		t.Fatalf("ranges requested: %v", api.ranges)
	}
}

func TestReaderDecodesHeaderOnly(t *testing.T) {
	t.Parallel()

	data := pfiletest.MustForRevision("16").
		Set("patient_id", "PID-7").
		Tail(1 << 20).
		Bytes()
	api := &fakeS3{objects: map[string][]byte{"scans/P00001.7": data}}

	r, err := OpenURI(context.Background(), api, "s3://scans/P00001.7")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	h, err := pfile.Read(r, "")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got, _ := h.Text("patient_id"); got != "PID-7" {
		t.Fatalf("patient_id: %q", got)
	}
	if last := api.ranges[len(api.ranges)-1]; last != fmt.Sprintf("bytes=0-%d", h.Schema().Size()-1) {
		t.Fatalf("header fetch went past the header: %s", last)
	}
}

func TestOpenMissingObject(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), &fakeS3{}, "b", "missing")
	if err == nil {
		t.Fatal("expected error for missing object")
	}
}
