package metrics

import (
	"net/http"
	"strconv"
	"time"

	"link-shortener/internal/http-server/route"
	"link-shortener/internal/lib/metrics"

	"github.com/go-chi/chi/v5/middleware"
)

func New() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			metrics.HTTPRequestsInFlight.Inc()
			defer metrics.HTTPRequestsInFlight.Dec()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				duration := time.Since(start).Seconds()

				class := route.Classify(r.Method, r.URL.Path).String()
				statusCode := strconv.Itoa(ww.Status())

				metrics.HTTPRequestsTotal.WithLabelValues(
					r.Method,
					class,
					statusCode,
				).Inc()

				metrics.HTTPRequestDuration.WithLabelValues(
					r.Method,
					class,
				).Observe(duration)
			}()

			next.ServeHTTP(ww, r)
		}

		return http.HandlerFunc(fn)
	}
}
