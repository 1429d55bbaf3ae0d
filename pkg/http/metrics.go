package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/klwxsrx/docscan-portal/pkg/metric"
)

func WithMetrics(metrics metric.Metrics) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			handler.ServeHTTP(w, r)
			meta := getHandlerMetadata(r.Context())

			route := meta.RouteName
			if route == "" {
				route = "unknown"
			}

			if meta.Panic != nil {
				metrics.With(metric.Labels{
					"method": r.Method,
					"route":  route,
				}).Increment("http_api_request_panics_total")
			}

			metrics.With(metric.Labels{
				"method": r.Method,
				"route":  route,
				"code":   strconv.Itoa(meta.Code),
			}).Duration("http_api_request_duration_seconds", time.Since(started))
		})
	})
}
