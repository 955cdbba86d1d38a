// Package metrics exposes Prometheus counters for price list processing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upload results.
const (
	ResultSuccess    = "success"
	ResultRejected   = "rejected"
	ResultNoProducts = "no_products"
	ResultError      = "error"
)

// Metrics owns a private registry so tests and multiple servers in one
// process do not collide on the global default registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry          *prometheus.Registry
	uploads           *prometheus.CounterVec
	productsExtracted prometheus.Counter
	rowsSkipped       *prometheus.CounterVec
	quotes            prometheus.Counter
}

// New registers the application collectors plus the Go runtime and process
// collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		uploads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pricelist",
			Name:      "uploads_total",
			Help:      "Price list uploads by result.",
		}, []string{"result"}),
		productsExtracted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "pricelist",
			Name:      "products_extracted_total",
			Help:      "Unique product records extracted from uploads.",
		}),
		rowsSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pricelist",
			Name:      "rows_skipped_total",
			Help:      "Tables and rows that produced no product, by reason.",
		}, []string{"reason"}),
		quotes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "pricelist",
			Name:      "quotes_total",
			Help:      "Quotes built.",
		}),
	}
}

// ObserveUpload counts one upload with the given result.
func (m *Metrics) ObserveUpload(result string) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(result).Inc()
}

// ObserveExtraction records the outcome of one extraction run.
func (m *Metrics) ObserveExtraction(products int, skipped map[string]int) {
	if m == nil {
		return
	}
	m.productsExtracted.Add(float64(products))
	for reason, n := range skipped {
		m.rowsSkipped.WithLabelValues(reason).Add(float64(n))
	}
}

// ObserveQuote counts one built quote.
func (m *Metrics) ObserveQuote() {
	if m == nil {
		return
	}
	m.quotes.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}
