package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/klwxsrx/docscan-portal/internal/billing/app/service"
	pkghttp "github.com/klwxsrx/docscan-portal/pkg/http"
)

const SignatureHeader = "X-Signature"

type (
	WebhookProcessor interface {
		Handle(ctx context.Context, body []byte, signature string) error
	}

	webhookHandler struct {
		processor WebhookProcessor
	}
)

func NewWebhookHandler(processor WebhookProcessor) pkghttp.Handler {
	return webhookHandler{processor: processor}
}

func (h webhookHandler) Method() string {
	return http.MethodPost
}

func (h webhookHandler) Path() string {
	return "/api/billing/webhook"
}

func (h webhookHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	signature := pkghttp.ParseRequestOptional(r, pkghttp.Header[string](SignatureHeader), nil)
	if signature == nil {
		w.SetStatusCode(http.StatusUnauthorized)
		return nil
	}

	body, err := pkghttp.ParseRequest(r, pkghttp.RawBody(), nil)
	if err != nil {
		return err
	}

	err = h.processor.Handle(r.Context(), body, *signature)
	if errors.Is(err, service.ErrInvalidSignature) {
		w.SetStatusCode(http.StatusUnauthorized)
		return nil
	}
	if errors.Is(err, service.ErrMalformedEvent) {
		w.SetStatusCode(http.StatusBadRequest)
		return err
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(webhookOut{Received: true})
	return nil
}

type webhookOut struct {
	Received bool `json:"received"`
}
