// Package metrics expone los contadores Prometheus del servicio (registro por defecto, /metrics).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecordMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventar_record_mutations_total",
		Help: "Mutaciones de la lista de productos por operación (insert, update, delete, clear)",
	}, []string{"operation"})

	ExportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventar_exports_total",
		Help: "Exports generados por formato (html, pdf, xml)",
	}, []string{"format"})

	SeedFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventar_seed_fetch_total",
		Help: "Intentos de descarga de la semilla por resultado",
	}, []string{"result"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
