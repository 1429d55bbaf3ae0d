//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "API=API"
package api

import (
	"context"
	"errors"
	"time"

	pkgauth "github.com/klwxsrx/docscan-portal/pkg/auth"
)

var (
	ErrUnauthenticated     = pkgauth.ErrUnauthenticated
	ErrProfileLookupFailed = errors.New("profile lookup failed")
)

type (
	Profile struct {
		SubjectID          string
		Email              string
		FirstName          *string
		LastName           *string
		SubscriptionTier   string
		SubscriptionStatus string
		RenewsAt           *time.Time
		EndsAt             *time.Time
	}

	SubscriptionChange struct {
		SubjectID      string
		Email          string
		SubscriptionID string
		Tier           string
		Status         string
		CustomerID     *string
		RenewsAt       *time.Time
		EndsAt         *time.Time
	}

	API interface {
		FindProfilesBySubject(ctx context.Context, subjectID string) ([]Profile, error)
		// ApplySubscription updates the subject profile or creates it from the change email
		ApplySubscription(ctx context.Context, change SubscriptionChange) error
	}
)
