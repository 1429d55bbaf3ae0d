package http

import (
	"time"

	"github.com/klwxsrx/docscan-portal/internal/bridge/app/service"
)

type (
	sessionOut struct {
		SubjectID        string    `json:"subjectId"`
		Email            string    `json:"email"`
		FirstName        *string   `json:"firstName,omitempty"`
		LastName         *string   `json:"lastName,omitempty"`
		SubscriptionTier string    `json:"subscriptionTier"`
		DashboardURL     string    `json:"dashboardUrl"`
		ExpiresAt        time.Time `json:"expiresAt"`
	}

	errorOut struct {
		Error string `json:"error"`
	}
)

const (
	errorCodeUnauthenticated  = "unauthenticated"
	errorCodeProfileNotFound  = "profile_not_found"
	errorCodeMissingToken     = "missing_token"
	errorCodeInvalidOrExpired = "invalid_or_expired_token"
	errorCodeMalformedRequest = "malformed_request"
)

func toSessionOut(data service.SessionData) sessionOut {
	return sessionOut{
		SubjectID:        string(data.SubjectID),
		Email:            data.Email,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		SubscriptionTier: string(data.SubscriptionTier),
		DashboardURL:     data.DashboardURL,
		ExpiresAt:        data.ExpiresAt.UTC(),
	}
}
