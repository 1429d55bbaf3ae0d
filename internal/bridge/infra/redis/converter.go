package redis

import (
	"time"

	"github.com/klwxsrx/docscan-portal/internal/bridge/domain"
)

type storedSession struct {
	Token            string    `json:"token"`
	SubjectID        string    `json:"subjectId"`
	Email            string    `json:"email"`
	FirstName        *string   `json:"firstName,omitempty"`
	LastName         *string   `json:"lastName,omitempty"`
	SubscriptionTier string    `json:"subscriptionTier"`
	CreatedAt        time.Time `json:"createdAt"`
	ExpiresAt        time.Time `json:"expiresAt"`
}

func toStoredSession(session *domain.Session) storedSession {
	return storedSession{
		Token:            string(session.Token),
		SubjectID:        string(session.SubjectID),
		Email:            session.Email,
		FirstName:        session.FirstName,
		LastName:         session.LastName,
		SubscriptionTier: string(session.SubscriptionTier),
		CreatedAt:        session.CreatedAt,
		ExpiresAt:        session.ExpiresAt,
	}
}

func (s storedSession) toDomain() *domain.Session {
	return &domain.Session{
		Token:            domain.Token(s.Token),
		SubjectID:        domain.SubjectID(s.SubjectID),
		Email:            s.Email,
		FirstName:        s.FirstName,
		LastName:         s.LastName,
		SubscriptionTier: domain.SubscriptionTier(s.SubscriptionTier),
		CreatedAt:        s.CreatedAt,
		ExpiresAt:        s.ExpiresAt,
	}
}
