package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveUpload(ResultSuccess)
	m.ObserveUpload(ResultSuccess)
	m.ObserveUpload(ResultRejected)
	m.ObserveExtraction(12, map[string]int{"header_row": 2, "missing_price": 1})
	m.ObserveExtraction(3, map[string]int{"header_row": 1})
	m.ObserveQuote()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.uploads.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.uploads.WithLabelValues(ResultRejected)))
	assert.Equal(t, 15.0, testutil.ToFloat64(m.productsExtracted))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.rowsSkipped.WithLabelValues("header_row")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rowsSkipped.WithLabelValues("missing_price")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quotes))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveUpload(ResultError)
		m.ObserveExtraction(1, map[string]int{"x": 1})
		m.ObserveQuote()
	})
	assert.Nil(t, m.Registry())

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveUpload(ResultNoProducts)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `pricelist_uploads_total{result="no_products"} 1`)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	a, b := New(), New()
	a.ObserveQuote()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.quotes))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.quotes))
}
