package rest

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "okx_web3_requests_total",
			Help: "Requests sent to the OKX Web3 API by method and result code",
		},
		[]string{"method", "code"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "okx_web3_request_duration_seconds",
			Help:    "Round trip latency of OKX Web3 API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	requests, err := register(reg, requests)
	if err != nil {
		return nil, err
	}
	duration, err = register(reg, duration)
	if err != nil {
		return nil, err
	}

	return &metrics{requests: requests, duration: duration}, nil
}

// register returns the collector already registered under the same
// descriptor, so several clients can share one registry.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if prev, ok := are.ExistingCollector.(T); ok {
				return prev, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *metrics) observe(method string, code string, elapsed time.Duration) {
	m.requests.WithLabelValues(method, code).Inc()
	m.duration.WithLabelValues(method).Observe(elapsed.Seconds())
}
