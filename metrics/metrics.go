// metrics/metrics.go
// Package metrics instruments the client's HTTP transport with Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "magento_client"

// InstrumentedTransport counts and times every round trip made through it. Responses and errors
// from the wrapped transport are returned untouched.
type InstrumentedTransport struct {
	next     http.RoundTripper
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewInstrumentedTransport wraps next (http.DefaultTransport when nil) and registers its collectors
// with reg. Collectors already registered by another client on the same registry are shared.
func NewInstrumentedTransport(next http.RoundTripper, reg prometheus.Registerer) (*InstrumentedTransport, error) {
	if next == nil {
		next = http.DefaultTransport
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of store REST API requests.",
	}, []string{"method", "status"}))
	if err != nil {
		return nil, err
	}

	duration, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of store REST API requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "status"}))
	if err != nil {
		return nil, err
	}

	return &InstrumentedTransport{next: next, requests: requests, duration: duration}, nil
}

// RoundTrip implements http.RoundTripper.
func (t *InstrumentedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	statusLabel := "error"
	if err == nil && resp != nil {
		statusLabel = strconv.Itoa(resp.StatusCode)
	}
	t.requests.WithLabelValues(req.Method, statusLabel).Inc()
	t.duration.WithLabelValues(req.Method, statusLabel).Observe(time.Since(start).Seconds())

	return resp, err
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, errors.Wrap(err, "register metrics collector")
	}
	return c, nil
}
