// Package api serves header decoding over HTTP.
package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/samcharles93/pfile/internal/logger"
	"github.com/samcharles93/pfile/internal/render"
	"github.com/samcharles93/pfile/pkg/pfile"
)

// DefaultMaxUploadBytes bounds a decode request body when Options leaves it
// unset. Headers are at most a few hundred KiB; callers may send whole files.
const DefaultMaxUploadBytes = 64 << 20

const headerRequestID = "X-Request-ID"

type Options struct {
	// MaxUploadBytes caps the request body accepted by POST /v1/headers.
	MaxUploadBytes int64
	Logger         logger.Logger
	// Registry receives the API metrics. A fresh registry is used when nil.
	Registry *prometheus.Registry
}

type Server struct {
	maxUpload int64
	log       logger.Logger
	metrics   *Metrics
	newID     func() string
}

func NewServer(opts Options) *Server {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	return &Server{
		maxUpload: opts.MaxUploadBytes,
		log:       opts.Logger,
		metrics:   NewMetrics(opts.Registry),
		newID:     uuid.NewString,
	}
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/v1/revisions", s.handleListRevisions)
	e.GET("/v1/revisions/:key", s.handleGetRevision)
	e.POST("/v1/headers", s.handleDecodeHeader)
	e.GET("/metrics", s.handleMetrics)
}

// RevisionList is the body of GET /v1/revisions.
type RevisionList struct {
	Revisions []render.RevisionInfo `json:"revisions"`
}

// DecodeResponse is the body of a successful POST /v1/headers.
type DecodeResponse struct {
	RequestID string `json:"request_id"`
	render.Document
}

func (s *Server) handleListRevisions(c *echo.Context) error {
	return writeJSON(c, http.StatusOK, RevisionList{Revisions: render.Revisions()})
}

func (s *Server) handleGetRevision(c *echo.Context) error {
	key := c.Param("key")
	schema, err := pfile.Lookup(key)
	if err != nil {
		return writeNotFound(c, fmt.Sprintf("unknown revision %q", key))
	}
	padding, err := queryBool(c, "padding")
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	return writeJSON(c, http.StatusOK, render.BuildLayout(key, schema, padding))
}

func (s *Server) handleDecodeHeader(c *echo.Context) error {
	id := s.newID()
	c.Response().Header().Set(headerRequestID, id)
	log := s.log.With("request_id", id)

	var opts render.Options
	var err error
	if opts.Padding, err = queryBool(c, "padding"); err != nil {
		return writeBadRequest(c, err.Error())
	}
	if opts.Raw, err = queryBool(c, "raw"); err != nil {
		return writeBadRequest(c, err.Error())
	}
	override := c.QueryParam("revision")

	data, name, err := s.readUpload(c)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return writeError(c, http.StatusRequestEntityTooLarge, "invalid_request_error",
				fmt.Sprintf("upload exceeds %d bytes", s.maxUpload), "", "body_too_large")
		}
		return writeBadRequest(c, err.Error())
	}
	if len(data) == 0 {
		return writeBadRequest(c, "empty request body")
	}

	h, err := pfile.Read(bytes.NewReader(data), override)
	if err != nil {
		s.metrics.RecordDecode(failureLabel(override), false, len(data))
		log.Warn("decode failed", "source", name, "bytes", len(data), "error", err)
		return writeDecodeError(c, err)
	}
	s.metrics.RecordDecode(h.Revision(), true, len(data))
	log.Debug("decoded header", "source", name, "revision", h.Revision(), "bytes", len(data))

	return writeJSON(c, http.StatusOK, DecodeResponse{
		RequestID: id,
		Document:  render.Build(name, h, opts),
	})
}

func (s *Server) handleMetrics(c *echo.Context) error {
	s.metrics.handler.ServeHTTP(c.Response(), c.Request())
	return nil
}

// readUpload returns the P-file bytes from either a raw body or the "file"
// part of a multipart form, plus the client-supplied file name if any.
func (s *Server) readUpload(c *echo.Context) ([]byte, string, error) {
	req := c.Request()
	req.Body = http.MaxBytesReader(c.Response(), req.Body, s.maxUpload)

	mediaType, _, _ := mime.ParseMediaType(req.Header.Get(echo.HeaderContentType))
	if mediaType != "multipart/form-data" {
		data, err := io.ReadAll(req.Body)
		return data, "", err
	}

	if err := req.ParseMultipartForm(s.maxUpload); err != nil {
		return nil, "", err
	}
	defer req.MultipartForm.RemoveAll()
	f, fh, err := req.FormFile("file")
	if err != nil {
		return nil, "", fmt.Errorf("multipart form: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	return data, fh.Filename, err
}

func writeDecodeError(c *echo.Context, err error) error {
	var ure *pfile.UnknownRevisionError
	switch {
	case errors.As(err, &ure):
		return writeError(c, http.StatusUnprocessableEntity, "invalid_request_error",
			err.Error(), "revision", "unknown_revision")
	case errors.Is(err, pfile.ErrTruncatedInput):
		return writeError(c, http.StatusUnprocessableEntity, "invalid_request_error",
			err.Error(), "", "truncated_input")
	default:
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error(), "", "")
	}
}

// failureLabel keeps client-supplied revision strings out of metric labels
// unless they name a registered revision.
func failureLabel(override string) string {
	if _, err := pfile.Lookup(override); err != nil {
		return revisionUnknown
	}
	return override
}

func queryBool(c *echo.Context, name string) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: expected a boolean, got %q", name, raw)
	}
	return v, nil
}

func writeJSON(c *echo.Context, status int, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w.WriteHeader(status)
	_, err = w.Write(append(b, '\n'))
	return err
}
