package account

import (
	"context"

	accountapi "github.com/klwxsrx/docscan-portal/internal/account/api"
	"github.com/klwxsrx/docscan-portal/internal/bridge/app/account"
	"github.com/klwxsrx/docscan-portal/internal/bridge/domain"
)

type profileProvider struct {
	accountAPI accountapi.API
}

func NewProfileProvider(accountAPI accountapi.API) account.ProfileProvider {
	return profileProvider{accountAPI: accountAPI}
}

func (p profileProvider) FindBySubject(ctx context.Context, subjectID domain.SubjectID) ([]domain.Profile, error) {
	profiles, err := p.accountAPI.FindProfilesBySubject(ctx, string(subjectID))
	if err != nil {
		return nil, err
	}

	result := make([]domain.Profile, 0, len(profiles))
	for _, profile := range profiles {
		result = append(result, domain.Profile{
			SubjectID:        domain.SubjectID(profile.SubjectID),
			Email:            profile.Email,
			FirstName:        profile.FirstName,
			LastName:         profile.LastName,
			SubscriptionTier: domain.SubscriptionTier(profile.SubscriptionTier),
		})
	}
	return result, nil
}
