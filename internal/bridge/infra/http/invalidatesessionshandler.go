package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/docscan-portal/internal/bridge/app/service"
	pkghttp "github.com/klwxsrx/docscan-portal/pkg/http"
)

type invalidateSessionsHandler struct {
	invalidator service.Invalidator
}

func NewInvalidateSessionsHandler(invalidator service.Invalidator) pkghttp.Handler {
	return invalidateSessionsHandler{invalidator: invalidator}
}

func (h invalidateSessionsHandler) Method() string {
	return http.MethodPost
}

func (h invalidateSessionsHandler) Path() string {
	return "/api/bridge/sessions/invalidation"
}

func (h invalidateSessionsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	err := h.invalidator.InvalidateCurrent(r.Context())
	if errors.Is(err, service.ErrUnauthenticated) {
		w.SetStatusCode(http.StatusUnauthorized).SetJSONBody(errorOut{Error: errorCodeUnauthenticated})
		return nil
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(invalidateSessionsOut{Success: true})
	return nil
}

type invalidateSessionsOut struct {
	Success bool `json:"success"`
}
