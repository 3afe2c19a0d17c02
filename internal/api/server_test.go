package api

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/pfile/internal/pfiletest"
)

func newTestEcho(opts Options) (*echo.Echo, *Server) {
	server := NewServer(opts)
	server.newID = func() string { return "req-1" }
	e := echo.New()
	server.Register(e)
	return e, server
}

func do(t *testing.T, e *echo.Echo, method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ResponseError {
	t.Helper()
	var env errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, rec.Body.String())
	}
	return env.Error
}

func TestListRevisions(t *testing.T) {
	t.Parallel()

	e, _ := newTestEcho(Options{})
	rec := do(t, e, http.MethodGet, "/v1/revisions", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
	var list RevisionList
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Revisions) != 5 || list.Revisions[0].Key != "16" || list.Revisions[0].Size != 145453 {
		t.Fatalf("unexpected revisions: %+v", list.Revisions)
	}
}

func TestGetRevision(t *testing.T) {
	t.Parallel()

	e, _ := newTestEcho(Options{})
	rec := do(t, e, http.MethodGet, "/v1/revisions/26.002", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"name":"psd_name"`) {
		t.Fatalf("layout missing psd_name: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), `"pad_0"`) {
		t.Fatalf("padding listed without padding=true")
	}

	rec = do(t, e, http.MethodGet, "/v1/revisions/26.002?padding=true", "", nil)
	if !strings.Contains(rec.Body.String(), `"pad_0"`) {
		t.Fatalf("padding missing with padding=true")
	}

	rec = do(t, e, http.MethodGet, "/v1/revisions/99.999", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if got := decodeError(t, rec); got.Type != "not_found_error" {
		t.Fatalf("unexpected error: %+v", got)
	}
}

func TestDecodeRawBody(t *testing.T) {
	t.Parallel()

	data := pfiletest.MustForRevision("20.006").
		Set("exam_timestamp", int32(1356998400)).
		Set("patient_id", "PID-42").
		Tail(512).
		Bytes()

	e, _ := newTestEcho(Options{})
	rec := do(t, e, http.MethodPost, "/v1/headers", "application/octet-stream", bytes.NewReader(data))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get(headerRequestID) != "req-1" {
		t.Fatalf("missing request id header")
	}

	var resp DecodeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.RequestID != "req-1" || resp.Revision != "20.006" || resp.ExamTime != "2013-01-01T00:00:00Z" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	found := false
	for _, f := range resp.Fields {
		if f.Name == "patient_id" {
			found = f.Value == "PID-42"
		}
	}
	if !found {
		t.Fatalf("patient_id not decoded")
	}
}

func TestDecodeMultipart(t *testing.T) {
	t.Parallel()

	data := pfiletest.MustForRevision("16").Bytes()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "P12345.7")
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	e, _ := newTestEcho(Options{})
	rec := do(t, e, http.MethodPost, "/v1/headers?revision=16", mw.FormDataContentType(), &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body=%s", rec.Code, rec.Body.String())
	}
	var resp DecodeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Source != "P12345.7" || resp.Revision != "16" {
		t.Fatalf("unexpected response: %+v", resp.Document.Source)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	full := pfiletest.MustForRevision("16").Bytes()
	unknown := pfiletest.MustForRevision("16").Set("revision", float32(99.999)).Bytes()

	tests := []struct {
		name   string
		path   string
		body   []byte
		status int
		code   string
		param  string
	}{
		{"empty", "/v1/headers", nil, http.StatusBadRequest, "", ""},
		{"truncated", "/v1/headers", full[:1000], http.StatusUnprocessableEntity, "truncated_input", ""},
		{"unknown tag", "/v1/headers", unknown, http.StatusUnprocessableEntity, "unknown_revision", "revision"},
		{"unknown override", "/v1/headers?revision=17", full, http.StatusUnprocessableEntity, "unknown_revision", "revision"},
		{"bad flag", "/v1/headers?raw=maybe", full, http.StatusBadRequest, "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, _ := newTestEcho(Options{})
			rec := do(t, e, http.MethodPost, tc.path, "application/octet-stream", bytes.NewReader(tc.body))
			if rec.Code != tc.status {
				t.Fatalf("status: got %d want %d body=%s", rec.Code, tc.status, rec.Body.String())
			}
			got := decodeError(t, rec)
			if got.Code != tc.code || got.Param != tc.param {
				t.Fatalf("unexpected error: %+v", got)
			}
		})
	}
}

func TestDecodeUploadLimit(t *testing.T) {
	t.Parallel()

	e, _ := newTestEcho(Options{MaxUploadBytes: 1024})
	data := pfiletest.MustForRevision("16").Bytes()
	rec := do(t, e, http.MethodPost, "/v1/headers", "application/octet-stream", bytes.NewReader(data))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestMetrics(t *testing.T) {
	t.Parallel()

	e, _ := newTestEcho(Options{})
	data := pfiletest.MustForRevision("16").Bytes()
	do(t, e, http.MethodPost, "/v1/headers", "application/octet-stream", bytes.NewReader(data))
	do(t, e, http.MethodPost, "/v1/headers?revision=bogus", "application/octet-stream", bytes.NewReader(data))

	rec := do(t, e, http.MethodGet, "/metrics", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`pfile_decodes_total{revision="16",status="success"} 1`,
		`pfile_decodes_total{revision="unknown",status="error"} 1`,
		"pfile_decode_bytes_total 290906",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q:\n%s", want, body)
		}
	}
}
