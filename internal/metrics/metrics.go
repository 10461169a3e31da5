// Package metrics collects and exposes Prometheus metrics for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface the service and middleware layers use to
// report measurements.
type Recorder interface {
	RecordLoginSuccess()
	RecordLoginFailure()
	RecordTokenIssued()
	RecordTokenRejected(reason string)
	RecordHTTPStatus(statusCode int)
	RecordRequestDuration(d time.Duration)
}

// Collector is the Prometheus-backed Recorder implementation.
type Collector struct {
	loginSuccess    prometheus.Counter
	loginFailure    prometheus.Counter
	tokensIssued    prometheus.Counter
	tokensRejected  *prometheus.CounterVec
	httpStatus      *prometheus.CounterVec
	requestDuration prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		loginSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "todoapi_login_success_total",
			Help: "Total number of successful logins.",
		}),
		loginFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "todoapi_login_failure_total",
			Help: "Total number of failed login attempts.",
		}),
		tokensIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "todoapi_tokens_issued_total",
			Help: "Total number of access tokens issued.",
		}),
		tokensRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "todoapi_tokens_rejected_total",
			Help: "Total number of rejected bearer tokens by reason.",
		}, []string{"reason"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "todoapi_http_status_total",
			Help: "Total number of HTTP responses by status code.",
		}, []string{"status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "todoapi_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.loginSuccess,
		c.loginFailure,
		c.tokensIssued,
		c.tokensRejected,
		c.httpStatus,
		c.requestDuration,
	)

	return c
}

func (c *Collector) RecordLoginSuccess() {
	c.loginSuccess.Inc()
}

func (c *Collector) RecordLoginFailure() {
	c.loginFailure.Inc()
}

func (c *Collector) RecordTokenIssued() {
	c.tokensIssued.Inc()
}

func (c *Collector) RecordTokenRejected(reason string) {
	c.tokensRejected.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordRequestDuration(d time.Duration) {
	c.requestDuration.Observe(d.Seconds())
}

// Handler returns the HTTP handler serving the Prometheus scrape
// endpoint for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
