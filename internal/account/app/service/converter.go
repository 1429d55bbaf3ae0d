package service

import (
	"github.com/klwxsrx/docscan-portal/internal/account/api"
	"github.com/klwxsrx/docscan-portal/internal/account/domain"
)

func toAPIProfile(profile domain.Profile) api.Profile {
	return api.Profile{
		SubjectID:          profile.SubjectID,
		Email:              profile.Email,
		FirstName:          profile.FirstName,
		LastName:           profile.LastName,
		SubscriptionTier:   profile.SubscriptionTier,
		SubscriptionStatus: profile.SubscriptionStatus,
		RenewsAt:           profile.RenewsAt,
		EndsAt:             profile.EndsAt,
	}
}
