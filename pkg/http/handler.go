package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

type (
	Handler interface {
		Method() string
		Path() string
		Handle(w ResponseWriter, r *http.Request) error
	}

	ResponseWriter interface {
		SetHeader(key, value string) ResponseWriter
		SetStatusCode(httpCode int) ResponseWriter
		SetCookie(cookie *http.Cookie) ResponseWriter
		SetJSONBody(data any) ResponseWriter
	}

	HandlerFunc func(w ResponseWriter, r *http.Request) error
)

type responseWriter struct {
	impl     http.ResponseWriter
	httpCode int
	body     any
	hasBody  bool
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetCookie(cookie *http.Cookie) ResponseWriter {
	http.SetCookie(w.impl, cookie)
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	w.hasBody = true
	return w
}

func (w *responseWriter) write(r *http.Request, handlerErr error) {
	meta := getHandlerMetadata(r.Context())
	if handlerErr != nil {
		meta.Error = handlerErr
	}

	httpCode := w.httpCode
	switch {
	case errors.Is(handlerErr, ErrParsingError) && httpCode < http.StatusBadRequest:
		httpCode = http.StatusBadRequest
	case handlerErr != nil && httpCode < http.StatusBadRequest:
		httpCode = http.StatusInternalServerError
	}

	var encodedBody []byte
	if w.hasBody {
		var err error
		encodedBody, err = json.Marshal(w.body)
		if err != nil {
			meta.Error = fmt.Errorf("encode response body: %w", err)
			httpCode = http.StatusInternalServerError
			encodedBody = nil
		}
	}

	meta.Code = httpCode
	if encodedBody != nil {
		w.impl.Header().Set("Content-Type", "application/json")
	}
	w.impl.WriteHeader(httpCode)
	if encodedBody != nil {
		_, _ = w.impl.Write(encodedBody)
	}
}

func httpHandlerWrapper(handler HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			httpCode: http.StatusOK,
			body:     nil,
			hasBody:  false,
		}

		defer func() {
			msg := recover()
			if msg == nil {
				return
			}

			meta := getHandlerMetadata(r.Context())
			meta.Code = http.StatusInternalServerError
			meta.Panic = &Panic{
				Message:    fmt.Sprintf("%v", msg),
				Stacktrace: debug.Stack(),
			}
			w.WriteHeader(http.StatusInternalServerError)
		}()

		err := handler(respWriter, r)
		respWriter.write(r, err)
	}
}
