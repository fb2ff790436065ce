package gateway

import (
	"net/http"
	"sync"
	"time"

	"shareit/internal/config"
	"shareit/internal/metrics"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const headerRequestID = "X-Request-Id"

// requestIDMiddleware присваивает запросу идентификатор, если клиент его
// не принес, и возвращает его в ответе.
func (g *Gateway) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
			r.Header.Set(headerRequestID, requestID)
		}
		w.Header().Set(headerRequestID, requestID)
		next.ServeHTTP(w, r)
	})
}

func (g *Gateway) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		dur := time.Since(start)

		metrics.ObserveHTTP("gateway", r.URL.Path, recorder.status, dur)
		g.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", r.Header.Get(headerRequestID)).
			Int("status", recorder.status).
			Dur("duration", dur).
			Msg("http request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// clientBuckets держит token-bucket на клиента поверх оконного лимита:
// сглаживает всплески даже внутри разрешенного окна.
type clientBuckets struct {
	cfg      config.RateLimitConfig
	limiters sync.Map // map[string]*rate.Limiter
}

func newClientBuckets(cfg config.RateLimitConfig) *clientBuckets {
	return &clientBuckets{cfg: cfg}
}

func (b *clientBuckets) allow(key string) bool {
	if b.cfg.RPS <= 0 {
		return true
	}
	return b.getLimiter(key).Allow()
}

func (b *clientBuckets) getLimiter(key string) *rate.Limiter {
	if v, ok := b.limiters.Load(key); ok {
		return v.(*rate.Limiter)
	}

	burst := b.cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	lim := rate.NewLimiter(rate.Limit(b.cfg.RPS), burst)
	actual, loaded := b.limiters.LoadOrStore(key, lim)
	if loaded {
		return actual.(*rate.Limiter)
	}
	return lim
}
