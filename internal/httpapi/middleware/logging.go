package middleware

import (
	"net/http"
	"strconv"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/numbox/random-number-service/internal/metrics"
)

// RequestLogger logs every request with zap and records its duration
// in the request-latency histogram.
func RequestLogger(log *zap.Logger, m *metrics.Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			start := time.Now()
			defer func() {
				elapsed := time.Since(start)
				log.Info("request completed",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
					zap.String("request_id", chimiddleware.GetReqID(r.Context())),
					zap.Int("status", ww.Status()),
					zap.Int("response_bytes", ww.BytesWritten()),
					zap.Duration("duration", elapsed),
				)
				m.RequestDuration.
					WithLabelValues(r.URL.Path, strconv.Itoa(ww.Status())).
					Observe(elapsed.Seconds())
			}()

			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}
