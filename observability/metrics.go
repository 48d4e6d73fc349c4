// Package observability exposes store server activity as Prometheus metrics.
package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

const namespace = "lostfound"

type StoreMetrics struct {
	calls   *prometheus.CounterVec
	latency *prometheus.HistogramVec
	watches prometheus.Gauge
}

// NewStoreMetrics registers the store collectors on reg.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	m := &StoreMetrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_calls_total",
			Help:      "Store RPCs handled, by method and status code.",
		}, []string{"method", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_call_duration_seconds",
			Help:      "Time spent answering store RPCs.",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		}, []string{"method"}),
		watches: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_active_watches",
			Help:      "Continuous listeners currently streaming.",
		}),
	}
	reg.MustRegister(m.calls, m.latency, m.watches)
	return m
}

func (m *StoreMetrics) ObserveCall(method string, err error, elapsed time.Duration) {
	m.calls.WithLabelValues(method, status.Code(err).String()).Inc()
	m.latency.WithLabelValues(method).Observe(elapsed.Seconds())
}

func (m *StoreMetrics) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		m.ObserveCall(info.FullMethod, err, time.Since(start))
		return resp, err
	}
}

func (m *StoreMetrics) StreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, stream grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		m.watches.Inc()
		defer m.watches.Dec()
		start := time.Now()
		err := handler(srv, stream)
		m.ObserveCall(info.FullMethod, err, time.Since(start))
		return err
	}
}
