package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	statusSuccess = "success"
	statusError   = "error"

	// revisionUnknown labels decodes that never resolved a revision.
	revisionUnknown = "unknown"
)

// Metrics holds the Prometheus collectors for the decode API.
type Metrics struct {
	decodesTotal     *prometheus.CounterVec
	decodeBytesTotal prometheus.Counter
	handler          http.Handler
}

// NewMetrics registers the collectors on reg and serves exactly what reg
// gathers.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		decodesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pfile_decodes_total",
				Help: "Total number of header decode requests",
			},
			[]string{"revision", "status"},
		),
		decodeBytesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pfile_decode_bytes_total",
				Help: "Total number of uploaded bytes submitted for decoding",
			},
		),
		handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}
}

// RecordDecode counts one decode attempt of n uploaded bytes.
func (m *Metrics) RecordDecode(revision string, success bool, n int) {
	if revision == "" {
		revision = revisionUnknown
	}
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.decodesTotal.WithLabelValues(revision, status).Inc()
	m.decodeBytesTotal.Add(float64(n))
}
