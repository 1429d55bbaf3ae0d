package http

import (
	"net/http"
	"time"

	"github.com/klwxsrx/docscan-portal/internal/bridge/app/service"
	pkghttp "github.com/klwxsrx/docscan-portal/pkg/http"
)

type listSessionsHandler struct {
	issuer service.Issuer
}

func NewListSessionsHandler(issuer service.Issuer) pkghttp.Handler {
	return listSessionsHandler{issuer: issuer}
}

func (h listSessionsHandler) Method() string {
	return http.MethodGet
}

func (h listSessionsHandler) Path() string {
	return "/api/bridge/sessions"
}

func (h listSessionsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	list, err := h.issuer.List(r.Context())
	if err != nil {
		return err
	}

	result := listSessionsOut{
		ActiveCount: list.ActiveCount,
		Sessions:    make([]sessionSummaryOut, 0, len(list.Sessions)),
	}
	for _, session := range list.Sessions {
		result.Sessions = append(result.Sessions, sessionSummaryOut{
			TokenPrefix:      session.TokenPrefix,
			Email:            session.Email,
			SubscriptionTier: string(session.SubscriptionTier),
			ExpiresAt:        session.ExpiresAt.UTC(),
			SubjectID:        string(session.SubjectID),
		})
	}

	w.SetJSONBody(result)
	return nil
}

type (
	listSessionsOut struct {
		ActiveCount int                 `json:"activeCount"`
		Sessions    []sessionSummaryOut `json:"sessions"`
	}

	sessionSummaryOut struct {
		TokenPrefix      string    `json:"tokenPrefix"`
		Email            string    `json:"email"`
		SubscriptionTier string    `json:"subscriptionTier"`
		ExpiresAt        time.Time `json:"expiresAt"`
		SubjectID        string    `json:"subjectId"`
	}
)
