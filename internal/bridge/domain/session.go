//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "SessionStore=SessionStore"
package domain

import (
	"context"
	"errors"
	"time"
)

const (
	Name = "bridge"

	// SessionTTL is the fixed lifetime of every bridge session
	SessionTTL = 4 * time.Hour
)

var ErrSessionNotFound = errors.New("session not found")

type (
	Token            string
	SubjectID        string
	SubscriptionTier string

	// Session is an immutable snapshot of the subject profile taken at issue time
	Session struct {
		Token            Token
		SubjectID        SubjectID
		Email            string
		FirstName        *string
		LastName         *string
		SubscriptionTier SubscriptionTier
		CreatedAt        time.Time
		ExpiresAt        time.Time
	}

	SessionStore interface {
		Put(context.Context, *Session) error
		// Get returns ErrSessionNotFound for absent tokens, it does not check expiration
		Get(context.Context, Token) (*Session, error)
		Delete(context.Context, Token) error
		DeleteBySubject(context.Context, SubjectID) (int, error)
		// SweepExpired removes sessions with ExpiresAt before now
		SweepExpired(ctx context.Context, now time.Time) (int, error)
		List(context.Context) ([]Session, error)
	}

	Profile struct {
		SubjectID        SubjectID
		Email            string
		FirstName        *string
		LastName         *string
		SubscriptionTier SubscriptionTier
	}
)

func NewSession(token Token, profile Profile, now time.Time) *Session {
	return &Session{
		Token:            token,
		SubjectID:        profile.SubjectID,
		Email:            profile.Email,
		FirstName:        profile.FirstName,
		LastName:         profile.LastName,
		SubscriptionTier: profile.SubscriptionTier,
		CreatedAt:        now,
		ExpiresAt:        now.Add(SessionTTL),
	}
}

// IsExpired reports whether now is past the session expiry, the expiry moment itself is still valid
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
