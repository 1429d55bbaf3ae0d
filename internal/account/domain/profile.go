//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "ProfileRepo=ProfileRepo"
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	Name = "account"

	TierFree = "free"

	SubscriptionStatusNone = "none"
)

type (
	Profile struct {
		ID                 uuid.UUID
		SubjectID          string
		Email              string
		FirstName          *string
		LastName           *string
		SubscriptionTier   string
		SubscriptionStatus string
		SubscriptionID     *string
		CustomerID         *string
		RenewsAt           *time.Time
		EndsAt             *time.Time
		CreatedAt          time.Time
		UpdatedAt          time.Time
	}

	Subscription struct {
		ID         string
		Tier       string
		Status     string
		CustomerID *string
		RenewsAt   *time.Time
		EndsAt     *time.Time
	}

	ProfileRepo interface {
		// FindBySubject returns profiles ordered by creation time, then by id
		FindBySubject(ctx context.Context, subjectID string) ([]Profile, error)
		Store(ctx context.Context, profile *Profile) error
	}
)

// NewProfile creates a free tier profile for a subject seen for the first time
func NewProfile(subjectID, email string, firstName, lastName *string, now time.Time) *Profile {
	return &Profile{
		ID:                 uuid.New(),
		SubjectID:          subjectID,
		Email:              email,
		FirstName:          firstName,
		LastName:           lastName,
		SubscriptionTier:   TierFree,
		SubscriptionStatus: SubscriptionStatusNone,
		SubscriptionID:     nil,
		CustomerID:         nil,
		RenewsAt:           nil,
		EndsAt:             nil,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (p *Profile) ApplySubscription(subscription Subscription, now time.Time) {
	subscriptionID := subscription.ID
	p.SubscriptionID = &subscriptionID
	p.SubscriptionTier = subscription.Tier
	p.SubscriptionStatus = subscription.Status
	if subscription.CustomerID != nil {
		p.CustomerID = subscription.CustomerID
	}
	p.RenewsAt = subscription.RenewsAt
	p.EndsAt = subscription.EndsAt
	p.UpdatedAt = now
}
