package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/klwxsrx/docscan-portal/pkg/strings"
)

type (
	DataExtractor[T any] func(*http.Request) (T, error)

	supportedParsingTypes interface {
		strings.SupportedValueParsingTypes | strings.SupportedPointerParsingTypes
	}
)

var ErrParsingError = errors.New("parsing error")

// maxBodySize bounds the request bodies read by RawBody and JSONBody
const maxBodySize = 1 << 20

func ParseRequest[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	result, err := extractor(r)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrParsingError, err)
	}

	return result, nil
}

func ParseRequestOptional[T any](r *http.Request, extractor DataExtractor[T], lastErr error) *T {
	if lastErr != nil {
		return nil
	}

	result, err := extractor(r)
	if err != nil {
		return nil
	}

	return &result
}

func PathParameter[T supportedParsingTypes](name string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		value, ok := mux.Vars(r)[name]
		if !ok {
			var result T
			return result, fmt.Errorf("path parameter %s not found", name)
		}
		return strings.ParseTypedValue[T](value)
	}
}

func QueryParameter[T supportedParsingTypes](name string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		value := r.URL.Query().Get(name)
		if value == "" {
			var result T
			return result, fmt.Errorf("query parameter %s not found", name)
		}
		return strings.ParseTypedValue[T](value)
	}
}

func Header[T supportedParsingTypes](key string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		value := r.Header.Get(key)
		if value == "" {
			var result T
			return result, fmt.Errorf("header %s not found", key)
		}
		return strings.ParseTypedValue[T](value)
	}
}

func CookieValue[T supportedParsingTypes](name string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		cookie, err := r.Cookie(name)
		if err != nil || cookie.Value == "" {
			var result T
			return result, fmt.Errorf("cookie %s not found", name)
		}
		return strings.ParseTypedValue[T](cookie.Value)
	}
}

func RawBody() DataExtractor[[]byte] {
	return func(r *http.Request) ([]byte, error) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}
		return body, nil
	}
}

func JSONBody[T any]() DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		var body T
		err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&body)
		if err != nil {
			return body, fmt.Errorf("decode json body: %w", err)
		}
		return body, nil
	}
}
