package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/klwxsrx/docscan-portal/internal/bridge/app/service"
	pkghttp "github.com/klwxsrx/docscan-portal/pkg/http"
)

type validateSessionHandler struct {
	validator service.Validator
}

func NewValidateSessionHandler(validator service.Validator) pkghttp.Handler {
	return validateSessionHandler{validator: validator}
}

func (h validateSessionHandler) Method() string {
	return http.MethodPost
}

func (h validateSessionHandler) Path() string {
	return "/api/bridge/sessions/validation"
}

func (h validateSessionHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[validateSessionIn](), nil)
	if errors.Is(err, io.EOF) {
		in, err = validateSessionIn{}, nil // empty body carries no token
	}
	if err != nil {
		w.SetStatusCode(http.StatusBadRequest).SetJSONBody(errorOut{Error: errorCodeMalformedRequest})
		return err
	}

	data, err := h.validator.Validate(r.Context(), in.Token)
	if errors.Is(err, service.ErrMissingToken) {
		w.SetStatusCode(http.StatusBadRequest).SetJSONBody(errorOut{Error: errorCodeMissingToken})
		return nil
	}
	if errors.Is(err, service.ErrInvalidOrExpiredToken) {
		w.SetStatusCode(http.StatusUnauthorized).SetJSONBody(errorOut{Error: errorCodeInvalidOrExpired})
		return nil
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(validateSessionOut{Session: toSessionOut(*data)})
	return nil
}

type (
	validateSessionIn struct {
		Token string `json:"token"`
	}

	validateSessionOut struct {
		Session sessionOut `json:"session"`
	}
)
