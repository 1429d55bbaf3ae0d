package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/docscan-portal/internal/account/api"
	"github.com/klwxsrx/docscan-portal/internal/account/app/identity"
	identitymock "github.com/klwxsrx/docscan-portal/internal/account/app/identity/mock"
	"github.com/klwxsrx/docscan-portal/internal/account/app/service"
	"github.com/klwxsrx/docscan-portal/internal/account/domain"
	domainmock "github.com/klwxsrx/docscan-portal/internal/account/domain/mock"
	"github.com/klwxsrx/docscan-portal/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/docscan-portal/pkg/auth"
	pkgpersistencemock "github.com/klwxsrx/docscan-portal/pkg/persistence/mock"
	pkgtime "github.com/klwxsrx/docscan-portal/pkg/time"
)

var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func authenticated(subject string) context.Context {
	return pkgauth.WithAuthentication(context.Background(), pkgauth.Authenticated(auth.Principal{Subject: subject}))
}

func passingTransaction(ctrl *gomock.Controller) *pkgpersistencemock.Transaction {
	testFunc := func(ctx context.Context, fn func(context.Context) error, _ ...string) error {
		return fn(ctx)
	}

	mock := pkgpersistencemock.NewTransaction(ctrl)
	mock.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(testFunc).AnyTimes()
	return mock
}

func TestProfileService_GetCurrent_Returns(t *testing.T) {
	firstName := "Ann"
	tests := []struct {
		name        string
		ctx         context.Context
		identity    func(ctrl *gomock.Controller) *identitymock.Service
		profileRepo func(t *testing.T, ctrl *gomock.Controller) *domainmock.ProfileRepo
		expect      func(t *testing.T, profile *api.Profile, err error)
	}{
		{
			name:     "unauthenticated_without_principal",
			ctx:      context.Background(),
			identity: identitymock.NewService,
			profileRepo: func(_ *testing.T, ctrl *gomock.Controller) *domainmock.ProfileRepo {
				return domainmock.NewProfileRepo(ctrl)
			},
			expect: func(t *testing.T, _ *api.Profile, err error) {
				assert.ErrorIs(t, err, api.ErrUnauthenticated)
			},
		},
		{
			name:     "existing_profile",
			ctx:      authenticated("user_abc"),
			identity: identitymock.NewService,
			profileRepo: func(_ *testing.T, ctrl *gomock.Controller) *domainmock.ProfileRepo {
				mock := domainmock.NewProfileRepo(ctrl)
				mock.EXPECT().FindBySubject(gomock.Any(), "user_abc").Return([]domain.Profile{
					{SubjectID: "user_abc", Email: "a@b.com", SubscriptionTier: "plus"},
				}, nil)
				return mock
			},
			expect: func(t *testing.T, profile *api.Profile, err error) {
				require.NoError(t, err)
				assert.Equal(t, "plus", profile.SubscriptionTier)
			},
		},
		{
			name: "synced_profile_on_first_visit",
			ctx:  authenticated("user_abc"),
			identity: func(ctrl *gomock.Controller) *identitymock.Service {
				mock := identitymock.NewService(ctrl)
				mock.EXPECT().GetUser(gomock.Any(), "user_abc").Return(&identity.User{
					SubjectID: "user_abc",
					Email:     "a@b.com",
					FirstName: &firstName,
				}, nil)
				return mock
			},
			profileRepo: func(t *testing.T, ctrl *gomock.Controller) *domainmock.ProfileRepo {
				mock := domainmock.NewProfileRepo(ctrl)
				mock.EXPECT().FindBySubject(gomock.Any(), "user_abc").Return(nil, nil).Times(2)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, profile *domain.Profile) {
						assert.Equal(t, "user_abc", profile.SubjectID)
						assert.Equal(t, "a@b.com", profile.Email)
						assert.Equal(t, domain.TierFree, profile.SubscriptionTier)
						assert.Equal(t, testNow, profile.CreatedAt)
					}).
					Return(nil)
				return mock
			},
			expect: func(t *testing.T, profile *api.Profile, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.TierFree, profile.SubscriptionTier)
				assert.Equal(t, &firstName, profile.FirstName)
			},
		},
		{
			name: "lookup_failed_for_identity_error",
			ctx:  authenticated("user_abc"),
			identity: func(ctrl *gomock.Controller) *identitymock.Service {
				mock := identitymock.NewService(ctrl)
				mock.EXPECT().GetUser(gomock.Any(), "user_abc").Return(nil, identity.ErrUserNotFound)
				return mock
			},
			profileRepo: func(_ *testing.T, ctrl *gomock.Controller) *domainmock.ProfileRepo {
				mock := domainmock.NewProfileRepo(ctrl)
				mock.EXPECT().FindBySubject(gomock.Any(), "user_abc").Return(nil, nil)
				return mock
			},
			expect: func(t *testing.T, _ *api.Profile, err error) {
				assert.ErrorIs(t, err, api.ErrProfileLookupFailed)
				assert.ErrorIs(t, err, identity.ErrUserNotFound)
			},
		},
		{
			name:     "lookup_failed_for_repo_error",
			ctx:      authenticated("user_abc"),
			identity: identitymock.NewService,
			profileRepo: func(_ *testing.T, ctrl *gomock.Controller) *domainmock.ProfileRepo {
				mock := domainmock.NewProfileRepo(ctrl)
				mock.EXPECT().FindBySubject(gomock.Any(), "user_abc").Return(nil, errors.New("unexpected"))
				return mock
			},
			expect: func(t *testing.T, _ *api.Profile, err error) {
				assert.ErrorIs(t, err, api.ErrProfileLookupFailed)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			clock := pkgtime.NewAdjustableClock()
			profileService := service.NewProfileService(
				tt.identity(ctrl),
				passingTransaction(ctrl),
				tt.profileRepo(t, ctrl),
				clock,
			)

			profile, err := profileService.GetCurrent(clock.Set(tt.ctx, testNow))
			tt.expect(t, profile, err)
		})
	}
}

func TestProfileService_ApplySubscription_Returns(t *testing.T) {
	customerID := "cus_1"
	change := api.SubscriptionChange{
		SubjectID:      "user_abc",
		Email:          "billing@b.com",
		SubscriptionID: "sub_1",
		Tier:           "pro",
		Status:         "active",
		CustomerID:     &customerID,
	}

	tests := []struct {
		name        string
		change      api.SubscriptionChange
		profileRepo func(t *testing.T, ctrl *gomock.Controller) *domainmock.ProfileRepo
		expectErr   bool
	}{
		{
			name:   "updates_existing_profile",
			change: change,
			profileRepo: func(t *testing.T, ctrl *gomock.Controller) *domainmock.ProfileRepo {
				existing := domain.NewProfile("user_abc", "a@b.com", nil, nil, testNow.Add(-time.Hour))
				mock := domainmock.NewProfileRepo(ctrl)
				mock.EXPECT().FindBySubject(gomock.Any(), "user_abc").Return([]domain.Profile{*existing}, nil)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, profile *domain.Profile) {
						assert.Equal(t, existing.ID, profile.ID)
						assert.Equal(t, "a@b.com", profile.Email)
						assert.Equal(t, "pro", profile.SubscriptionTier)
						assert.Equal(t, "sub_1", *profile.SubscriptionID)
						assert.Equal(t, testNow, profile.UpdatedAt)
					}).
					Return(nil)
				return mock
			},
			expectErr: false,
		},
		{
			name:   "creates_profile_for_unknown_subject",
			change: change,
			profileRepo: func(t *testing.T, ctrl *gomock.Controller) *domainmock.ProfileRepo {
				mock := domainmock.NewProfileRepo(ctrl)
				mock.EXPECT().FindBySubject(gomock.Any(), "user_abc").Return(nil, nil)
				mock.EXPECT().Store(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, profile *domain.Profile) {
						assert.Equal(t, "billing@b.com", profile.Email)
						assert.Equal(t, "pro", profile.SubscriptionTier)
						assert.Equal(t, &customerID, profile.CustomerID)
					}).
					Return(nil)
				return mock
			},
			expectErr: false,
		},
		{
			name:   "error_for_repo_failure",
			change: change,
			profileRepo: func(_ *testing.T, ctrl *gomock.Controller) *domainmock.ProfileRepo {
				mock := domainmock.NewProfileRepo(ctrl)
				mock.EXPECT().FindBySubject(gomock.Any(), "user_abc").Return(nil, errors.New("unexpected"))
				return mock
			},
			expectErr: true,
		},
		{
			name:   "error_without_subject",
			change: api.SubscriptionChange{SubscriptionID: "sub_1"},
			profileRepo: func(_ *testing.T, ctrl *gomock.Controller) *domainmock.ProfileRepo {
				return domainmock.NewProfileRepo(ctrl)
			},
			expectErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			clock := pkgtime.NewAdjustableClock()
			profileService := service.NewProfileService(
				identitymock.NewService(ctrl),
				passingTransaction(ctrl),
				tt.profileRepo(t, ctrl),
				clock,
			)

			err := profileService.ApplySubscription(clock.Set(context.Background(), testNow), tt.change)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
