package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/klwxsrx/docscan-portal/pkg/log"
	"github.com/klwxsrx/docscan-portal/pkg/metric"
	"github.com/klwxsrx/docscan-portal/pkg/observability"
)

type (
	Destination string

	ClientOption func(*client)

	Client interface {
		NewRequest(ctx context.Context) *resty.Request
	}

	client struct {
		destination Destination
		impl        *resty.Client
	}

	ClientFactory struct {
		baseOpts []ClientOption
	}
)

func NewClient(opts ...ClientOption) Client {
	c := &client{
		destination: "",
		impl:        resty.New(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *client) NewRequest(ctx context.Context) *resty.Request {
	return c.impl.NewRequest().SetContext(ctx)
}

func NewClientFactory(opts ...ClientOption) ClientFactory {
	return ClientFactory{baseOpts: opts}
}

func (f ClientFactory) InitClient(destination Destination, baseURL string, extraOpts ...ClientOption) Client {
	opts := make([]ClientOption, 0, len(f.baseOpts)+len(extraOpts)+1)
	opts = append(opts, WithClientDestination(destination, baseURL))
	opts = append(opts, f.baseOpts...)
	opts = append(opts, extraOpts...)

	return NewClient(opts...)
}

func WithClientDestination(destination Destination, baseURL string) ClientOption {
	return func(c *client) {
		c.destination = destination
		c.impl.SetBaseURL(baseURL)
	}
}

// WithAuthToken sends the token as a bearer authorization header with every request
func WithAuthToken(token string) ClientOption {
	return func(c *client) {
		c.impl.SetAuthToken(token)
	}
}

func WithRequestObservability(observer observability.Observer) ClientOption {
	return func(c *client) {
		c.impl.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if id, ok := observer.RequestID(req.Context()); ok {
				req.SetHeader(RequestIDHeader, id)
			}
			return nil
		})
	}
}

func WithRequestLogging(logger log.Logger, infoLevel, errorLevel log.Level) ClientOption {
	return func(c *client) {
		destination := c.destinationName()
		c.impl.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			requestLogger := logger.With(log.Fields{
				"destination":  destination,
				"method":       resp.Request.Method,
				"url":          resp.Request.URL,
				"responseCode": resp.StatusCode(),
			})

			if resp.StatusCode() >= http.StatusInternalServerError {
				requestLogger.Log(resp.Request.Context(), errorLevel, "http call completed with internal error")
			} else {
				requestLogger.Log(resp.Request.Context(), infoLevel, "http call completed")
			}
			return nil
		})

		c.impl.OnError(func(req *resty.Request, err error) {
			logger.
				With(log.Fields{
					"destination": destination,
					"method":      req.Method,
					"url":         req.URL,
				}).
				WithError(err).
				Log(req.Context(), errorLevel, "http call completed with error")
		})
	}
}

func WithRequestMetrics(metrics metric.Metrics) ClientOption {
	return func(c *client) {
		destination := c.destinationName()
		c.impl.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			metrics.With(metric.Labels{
				"destination": destination,
				"method":      resp.Request.Method,
				"code":        strconv.Itoa(resp.StatusCode()),
			}).Duration("http_client_request_duration_seconds", resp.Time())
			return nil
		})
	}
}

func (c *client) destinationName() string {
	if c.destination == "" {
		return "none"
	}
	return string(c.destination)
}
