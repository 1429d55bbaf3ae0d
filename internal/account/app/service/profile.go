package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/klwxsrx/docscan-portal/internal/account/api"
	"github.com/klwxsrx/docscan-portal/internal/account/app/identity"
	"github.com/klwxsrx/docscan-portal/internal/account/domain"
	"github.com/klwxsrx/docscan-portal/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/docscan-portal/pkg/auth"
	"github.com/klwxsrx/docscan-portal/pkg/persistence"
	pkgtime "github.com/klwxsrx/docscan-portal/pkg/time"
)

const profileLockPrefix = "account_profile_"

type ProfileService struct {
	identity    identity.Service
	transaction persistence.Transaction
	profileRepo domain.ProfileRepo
	clock       pkgtime.Clock
}

func NewProfileService(
	identity identity.Service,
	transaction persistence.Transaction,
	profileRepo domain.ProfileRepo,
	clock pkgtime.Clock,
) *ProfileService {
	return &ProfileService{
		identity:    identity,
		transaction: transaction,
		profileRepo: profileRepo,
		clock:       clock,
	}
}

// GetCurrent returns the authenticated subject profile, the first visit creates it from the identity provider data
func (s *ProfileService) GetCurrent(ctx context.Context) (*api.Profile, error) {
	principal, err := pkgauth.GetPrincipal[auth.Principal](ctx)
	if err != nil || principal.SubjectID() == "" {
		return nil, api.ErrUnauthenticated
	}
	subjectID := principal.SubjectID()

	profiles, err := s.profileRepo.FindBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", api.ErrProfileLookupFailed, err)
	}
	if len(profiles) > 0 {
		result := toAPIProfile(profiles[0])
		return &result, nil
	}

	user, err := s.identity.GetUser(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("%w: get identity user: %w", api.ErrProfileLookupFailed, err)
	}

	var profile *domain.Profile
	err = s.transaction.Execute(ctx, func(ctx context.Context) error {
		profiles, err := s.profileRepo.FindBySubject(ctx, subjectID)
		if err != nil {
			return err
		}
		if len(profiles) > 0 {
			profile = &profiles[0]
			return nil
		}

		profile = domain.NewProfile(subjectID, user.Email, user.FirstName, user.LastName, s.clock.Now(ctx))
		return s.profileRepo.Store(ctx, profile)
	}, profileLockPrefix+subjectID)
	if err != nil {
		return nil, fmt.Errorf("%w: sync profile: %w", api.ErrProfileLookupFailed, err)
	}

	result := toAPIProfile(*profile)
	return &result, nil
}

func (s *ProfileService) FindProfilesBySubject(ctx context.Context, subjectID string) ([]api.Profile, error) {
	profiles, err := s.profileRepo.FindBySubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	result := make([]api.Profile, 0, len(profiles))
	for _, profile := range profiles {
		result = append(result, toAPIProfile(profile))
	}
	return result, nil
}

func (s *ProfileService) ApplySubscription(ctx context.Context, change api.SubscriptionChange) error {
	if change.SubjectID == "" {
		return errors.New("subscription change without subject")
	}

	return s.transaction.Execute(ctx, func(ctx context.Context) error {
		now := s.clock.Now(ctx)
		profiles, err := s.profileRepo.FindBySubject(ctx, change.SubjectID)
		if err != nil {
			return err
		}

		var profile *domain.Profile
		if len(profiles) > 0 {
			profile = &profiles[0]
		} else {
			profile = domain.NewProfile(change.SubjectID, change.Email, nil, nil, now)
		}

		profile.ApplySubscription(domain.Subscription{
			ID:         change.SubscriptionID,
			Tier:       change.Tier,
			Status:     change.Status,
			CustomerID: change.CustomerID,
			RenewsAt:   change.RenewsAt,
			EndsAt:     change.EndsAt,
		}, now)
		return s.profileRepo.Store(ctx, profile)
	}, profileLockPrefix+change.SubjectID)
}
