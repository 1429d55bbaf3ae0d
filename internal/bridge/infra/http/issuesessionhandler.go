package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/docscan-portal/internal/bridge/app/service"
	pkghttp "github.com/klwxsrx/docscan-portal/pkg/http"
)

type issueSessionHandler struct {
	issuer service.Issuer
}

func NewIssueSessionHandler(issuer service.Issuer) pkghttp.Handler {
	return issueSessionHandler{issuer: issuer}
}

func (h issueSessionHandler) Method() string {
	return http.MethodPost
}

func (h issueSessionHandler) Path() string {
	return "/api/bridge/sessions"
}

func (h issueSessionHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	issued, err := h.issuer.Issue(r.Context())
	if errors.Is(err, service.ErrUnauthenticated) {
		w.SetStatusCode(http.StatusUnauthorized).SetJSONBody(errorOut{Error: errorCodeUnauthenticated})
		return nil
	}
	if errors.Is(err, service.ErrProfileNotFound) {
		w.SetStatusCode(http.StatusNotFound).SetJSONBody(errorOut{Error: errorCodeProfileNotFound})
		return nil
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(issueSessionOut{
		Token:   string(issued.Token),
		AppURL:  issued.AppURL,
		Session: toSessionOut(issued.Session),
	})
	return nil
}

type issueSessionOut struct {
	Token   string     `json:"token"`
	AppURL  string     `json:"appUrl"`
	Session sessionOut `json:"session"`
}
