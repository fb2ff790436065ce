package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "http_requests_total",
			Help:      "HTTP requests by tier, endpoint and status.",
		},
		[]string{"tier", "endpoint", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shareit",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by tier and endpoint.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"tier", "endpoint"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration)
	})
}

// ObserveHTTP records one finished request.
func ObserveHTTP(tier, endpoint string, status int, dur time.Duration) {
	httpRequests.WithLabelValues(tier, endpoint, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(tier, endpoint).Observe(dur.Seconds())
}
