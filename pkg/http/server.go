package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gorilla/mux"
)

const (
	DefaultServerAddress = ":8080"

	defaultReadTimeout       = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

type (
	ServerOption     func(*server)
	ServerMiddleware func(http.Handler) http.Handler

	HandlerRegistry interface {
		Register(handler Handler, opts ...ServerOption)
	}

	Server interface {
		HandlerRegistry
		Listener(context.Context) error
		http.Handler
	}
)

type server struct {
	srv    *http.Server
	router *mux.Router

	// outer middlewares wrap the router itself, so they also see unmatched requests like CORS preflights
	outer []ServerMiddleware
}

func NewServer(address string, opts ...ServerOption) Server {
	router := mux.NewRouter()
	s := &server{
		srv: &http.Server{
			Addr:              address,
			ReadTimeout:       defaultReadTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		router: router,
		outer:  nil,
	}

	router.Use(withHandlerMetadata)
	for _, opt := range opts {
		opt(s)
	}

	var handler http.Handler = router
	for i := len(s.outer) - 1; i >= 0; i-- {
		handler = s.outer[i](handler)
	}
	s.srv.Handler = handler

	return s
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.srv.Handler.ServeHTTP(w, r)
}

func (s *server) Listener(ctx context.Context) error {
	serverDone := make(chan error, 1)
	go func() {
		err := s.srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serverDone <- err
	}()

	var err error
	select {
	case err = <-serverDone:
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()

		err = s.srv.Shutdown(shutdownCtx)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
	}
	if err != nil {
		return fmt.Errorf("http listener %s: %w", s.srv.Addr, err)
	}

	return nil
}

func (s *server) Register(handler Handler, opts ...ServerOption) {
	router := s.router
	if len(opts) > 0 {
		sub := &server{
			srv:    s.srv,
			router: s.router.NewRoute().Subrouter(),
			outer:  nil,
		}
		for _, opt := range opts {
			opt(sub)
		}
		router = sub.router
	}

	routeName := getRouteName(handler.Method(), handler.Path())
	router.
		Name(routeName).
		Methods(handler.Method()).
		Path(handler.Path()).
		Handler(withRouteName(routeName, httpHandlerWrapper(handler.Handle)))
}

func withRouteName(name string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		getHandlerMetadata(r.Context()).RouteName = name
		handler.ServeHTTP(w, r)
	})
}

func getRouteName(method, path string) string {
	path = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Latin, r) || unicode.IsDigit(r) {
			return r
		}
		if r == '{' || r == '}' {
			return -1
		}
		return '_'
	}, strings.Trim(path, "/"))
	return strings.ToLower(fmt.Sprintf("%s_%s", method, path))
}
