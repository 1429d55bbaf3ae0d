package http

import (
	"net/http"

	"github.com/klwxsrx/docscan-portal/pkg/log"
)

func WithLogging(logger log.Logger, excludedPaths ...string) ServerOption {
	excluded := make(map[string]struct{}, len(excludedPaths)+2)
	for _, path := range append(excludedPaths, HealthPath, MetricsPath) {
		excluded[path] = struct{}{}
	}

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := excluded[r.URL.Path]; ok {
				handler.ServeHTTP(w, r)
				return
			}

			handler.ServeHTTP(w, r)

			meta := getHandlerMetadata(r.Context())
			requestLogger := logger.With(log.Fields{
				"route":        meta.RouteName,
				"method":       r.Method,
				"path":         r.URL.Path,
				"responseCode": meta.Code,
			})

			switch {
			case meta.Panic != nil:
				requestLogger.
					WithField("panic", meta.Panic.Message).
					WithField("stacktrace", string(meta.Panic.Stacktrace)).
					Error(r.Context(), "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				requestLogger.WithError(meta.Error).Error(r.Context(), "request handled with internal error")
			case meta.Error != nil:
				requestLogger.WithError(meta.Error).Warn(r.Context(), "request handled with error")
			default:
				requestLogger.Info(r.Context(), "request handled")
			}
		})
	})
}
