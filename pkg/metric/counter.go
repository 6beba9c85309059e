package metric

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// Add adds v, which must not be negative.
func (c *Counter) Add(v float64, val ...string) {
	c.vec.WithLabelValues(val...).Add(v)
}

// Vec returns the underlying collector.
func (c *Counter) Vec() *prometheus.CounterVec {
	return c.vec
}

func NewCounter(reg prometheus.Registerer, name, help string, labels ...string) *Counter {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	reg.MustRegister(vec)

	return &Counter{
		Name: name,
		Help: help,
		vec:  vec,
	}
}

type Histogram struct {
	Name string
	Help string

	vec *prometheus.HistogramVec
}

// Observe records d in seconds.
func (h *Histogram) Observe(d time.Duration, val ...string) {
	h.vec.WithLabelValues(val...).Observe(d.Seconds())
}

// NewHistogram registers a duration histogram. Nil buckets use the
// Prometheus defaults.
func NewHistogram(reg prometheus.Registerer, name, help string, buckets []float64, labels ...string) *Histogram {
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}

	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    name,
		Help:    help,
		Buckets: buckets,
	}, labels)

	reg.MustRegister(vec)

	return &Histogram{
		Name: name,
		Help: help,
		vec:  vec,
	}
}

// GetHandlerForRegistry returns an HTTP handler serving the metrics of reg.
func GetHandlerForRegistry(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
