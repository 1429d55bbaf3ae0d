package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

const (
	HealthPath  = "/healthz"
	MetricsPath = "/metrics"
)

func WithMW(mw ServerMiddleware) ServerOption {
	return func(srv *server) {
		srv.router.Use(mux.MiddlewareFunc(mw))
	}
}

func WithHealthCheck(customHandler http.HandlerFunc) ServerOption {
	defaultHandler := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(struct {
			Status string `json:"status"`
		}{
			Status: "OK",
		})
	}

	return func(srv *server) {
		handler := defaultHandler
		if customHandler != nil {
			handler = customHandler
		}

		srv.router.
			Name(getRouteName(http.MethodGet, HealthPath)).
			Methods(http.MethodGet).
			Path(HealthPath).
			HandlerFunc(handler)
	}
}

func WithMetricsHandler(handler http.Handler) ServerOption {
	return func(srv *server) {
		srv.router.
			Name(getRouteName(http.MethodGet, MetricsPath)).
			Methods(http.MethodGet).
			Path(MetricsPath).
			Handler(handler)
	}
}

// WithCORS echoes allowed origins back with credentials allowed and answers preflight requests
func WithCORS(allowedOrigins []string) ServerOption {
	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Request-ID"}),
		handlers.AllowCredentials(),
	)

	return func(srv *server) {
		if len(allowedOrigins) == 0 {
			return
		}
		srv.outer = append(srv.outer, cors)
	}
}
