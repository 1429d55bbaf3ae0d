package observability

import (
	"context"

	"github.com/klwxsrx/docscan-portal/pkg/log"
)

const LogFieldRequestID = "requestID"

const requestIDContextKey contextKey = iota

type (
	Observer interface {
		RequestID(context.Context) (string, bool)
		WithRequestID(context.Context, string) context.Context
	}

	ObserverOption func(*observer)

	contextKey int
)

type observer struct {
	logger log.Logger
}

func New(opts ...ObserverOption) Observer {
	o := observer{logger: nil}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithRequestIDLogging puts the request id into the log fields of the returned contexts
func WithRequestIDLogging(logger log.Logger) ObserverOption {
	return func(o *observer) {
		o.logger = logger
	}
}

func (o observer) RequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDContextKey).(string)
	if !ok || requestID == "" {
		return "", false
	}

	return requestID, true
}

func (o observer) WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDContextKey, id)
	if o.logger != nil {
		ctx = o.logger.WithContext(ctx, log.Fields{LogFieldRequestID: id})
	}

	return ctx
}
