// Package metrics exposes Prometheus metrics for the gateway.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultNamespace prefixes every metric name when none is configured.
const DefaultNamespace = "bizspeak"

// Collector owns the gateway's Prometheus metrics.
//
// Metrics:
//   - <ns>_http_requests_total: requests by route and status code
//   - <ns>_http_request_duration_seconds: end-to-end request latency by route
//   - <ns>_model_invocations_total: model calls by provider, model and outcome
//   - <ns>_model_invocation_duration_seconds: model call latency
//   - <ns>_translation_errors_total: gateway failures by error kind
//   - <ns>_estimated_tokens_total: estimated tokens by direction (input, output)
type Collector struct {
	registry *prometheus.Registry

	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	invocationsTotal   *prometheus.CounterVec
	invocationDuration *prometheus.HistogramVec
	errorsTotal        *prometheus.CounterVec
	tokensTotal        *prometheus.CounterVec
}

// NewCollector creates the gateway metrics and registers them with registry.
// A nil registry gets a fresh one so tests never share global state.
func NewCollector(namespace string, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	// Model latencies range from sub-second to tens of seconds.
	latencyBuckets := []float64{0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0, 60.0}

	c := &Collector{
		registry: registry,
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests handled",
			},
			[]string{"route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   latencyBuckets,
			},
			[]string{"route"},
		),
		invocationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "model_invocations_total",
				Help:      "Total number of model invocations by outcome",
			},
			[]string{"provider", "model", "outcome"},
		),
		invocationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "model_invocation_duration_seconds",
				Help:      "Duration of model invocations in seconds",
				Buckets:   latencyBuckets,
			},
			[]string{"provider", "model"},
		),
		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "translation_errors_total",
				Help:      "Total number of failed translations by error kind",
			},
			[]string{"kind"},
		),
		tokensTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "estimated_tokens_total",
				Help:      "Estimated number of tokens sent to and received from the model",
			},
			[]string{"direction"},
		),
	}

	registry.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.invocationsTotal,
		c.invocationDuration,
		c.errorsTotal,
		c.tokensTotal,
	)

	return c
}

// RecordRequest records a completed HTTP request.
func (c *Collector) RecordRequest(route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	c.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// ObserveInvocation records the outcome and latency of a model call.
func (c *Collector) ObserveInvocation(provider, model, outcome string, duration time.Duration) {
	c.invocationsTotal.WithLabelValues(provider, model, outcome).Inc()
	c.invocationDuration.WithLabelValues(provider, model).Observe(duration.Seconds())
}

// RecordError counts a failed translation.
func (c *Collector) RecordError(kind string) {
	c.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordTokens adds estimated token counts for a successful translation.
func (c *Collector) RecordTokens(input, output int) {
	c.tokensTotal.WithLabelValues("input").Add(float64(input))
	c.tokensTotal.WithLabelValues("output").Add(float64(output))
}

// Handler returns an HTTP handler for the Prometheus exposition endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}
