package service

import (
	"time"

	"github.com/klwxsrx/docscan-portal/internal/bridge/domain"
)

const tokenPrefixLength = 10

type (
	Links struct {
		AppURL       string
		DashboardURL string
	}

	SessionData struct {
		SubjectID        domain.SubjectID
		Email            string
		FirstName        *string
		LastName         *string
		SubscriptionTier domain.SubscriptionTier
		DashboardURL     string
		ExpiresAt        time.Time
	}

	IssuedSession struct {
		Token   domain.Token
		AppURL  string
		Session SessionData
	}

	SessionSummary struct {
		TokenPrefix      string
		SubjectID        domain.SubjectID
		Email            string
		SubscriptionTier domain.SubscriptionTier
		ExpiresAt        time.Time
	}

	SessionList struct {
		ActiveCount int
		Sessions    []SessionSummary
	}
)

func toSessionData(session *domain.Session, links Links) SessionData {
	return SessionData{
		SubjectID:        session.SubjectID,
		Email:            session.Email,
		FirstName:        session.FirstName,
		LastName:         session.LastName,
		SubscriptionTier: session.SubscriptionTier,
		DashboardURL:     links.DashboardURL,
		ExpiresAt:        session.ExpiresAt,
	}
}

func toSessionSummary(session *domain.Session) SessionSummary {
	return SessionSummary{
		TokenPrefix:      redactToken(session.Token),
		SubjectID:        session.SubjectID,
		Email:            session.Email,
		SubscriptionTier: session.SubscriptionTier,
		ExpiresAt:        session.ExpiresAt,
	}
}

func redactToken(token domain.Token) string {
	if len(token) <= tokenPrefixLength {
		return "..."
	}
	return string(token[:tokenPrefixLength]) + "..."
}
