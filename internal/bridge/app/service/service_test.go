package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	accountmock "github.com/klwxsrx/docscan-portal/internal/bridge/app/account/mock"
	"github.com/klwxsrx/docscan-portal/internal/bridge/app/revocation"
	revocationmock "github.com/klwxsrx/docscan-portal/internal/bridge/app/revocation/mock"
	"github.com/klwxsrx/docscan-portal/internal/bridge/app/service"
	sessionmock "github.com/klwxsrx/docscan-portal/internal/bridge/app/session/mock"
	"github.com/klwxsrx/docscan-portal/internal/bridge/domain"
	domainmock "github.com/klwxsrx/docscan-portal/internal/bridge/domain/mock"
	"github.com/klwxsrx/docscan-portal/internal/bridge/infra/memory"
	infrasession "github.com/klwxsrx/docscan-portal/internal/bridge/infra/session"
	"github.com/klwxsrx/docscan-portal/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/docscan-portal/pkg/auth"
	"github.com/klwxsrx/docscan-portal/pkg/log"
	"github.com/klwxsrx/docscan-portal/pkg/metric"
	pkgtime "github.com/klwxsrx/docscan-portal/pkg/time"
)

var (
	testLinks = service.Links{
		AppURL:       "https://app.docscan.test",
		DashboardURL: "https://docscan.test/dashboard",
	}
	testStart = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
)

type staticProfiles map[domain.SubjectID][]domain.Profile

func (p staticProfiles) FindBySubject(_ context.Context, subjectID domain.SubjectID) ([]domain.Profile, error) {
	return p[subjectID], nil
}

func authenticated(ctx context.Context, subject string) context.Context {
	return pkgauth.WithAuthentication(ctx, pkgauth.Authenticated(auth.Principal{Subject: subject}))
}

func newIssuer(store domain.SessionStore, profiles staticProfiles, clock pkgtime.Clock) service.Issuer {
	return service.NewIssuer(
		store,
		profiles,
		infrasession.NewTokenGenerator(),
		clock,
		testLinks,
		time.Second,
		metric.NewStub(),
	)
}

func TestSessionBridge_IssueValidateExpire(t *testing.T) {
	clock := pkgtime.NewAdjustableClock()
	store := memory.NewSessionStore()
	profiles := staticProfiles{
		"user_abc": {{SubjectID: "user_abc", Email: "a@b.com", SubscriptionTier: "plus"}},
	}
	issuer := newIssuer(store, profiles, clock)
	validator := service.NewValidator(store, clock, testLinks, metric.NewStub())

	ctx := clock.Set(authenticated(context.Background(), "user_abc"), testStart)
	issued, err := issuer.Issue(ctx)
	require.NoError(t, err)
	assert.Equal(t, testLinks.AppURL, issued.AppURL)
	assert.Equal(t, testStart.Add(domain.SessionTTL), issued.Session.ExpiresAt)

	data, err := validator.Validate(clock.Set(context.Background(), testStart.Add(time.Minute)), string(issued.Token))
	require.NoError(t, err)
	assert.Equal(t, domain.SubjectID("user_abc"), data.SubjectID)
	assert.Equal(t, "a@b.com", data.Email)
	assert.Equal(t, domain.SubscriptionTier("plus"), data.SubscriptionTier)
	assert.Equal(t, testLinks.DashboardURL, data.DashboardURL)

	expiredCtx := clock.Set(context.Background(), testStart.Add(domain.SessionTTL+time.Second))
	_, err = validator.Validate(expiredCtx, string(issued.Token))
	assert.ErrorIs(t, err, service.ErrInvalidOrExpiredToken)

	sessions, err := store.List(expiredCtx)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestSessionBridge_Validate_SnapshotIgnoresLaterProfileChanges(t *testing.T) {
	clock := pkgtime.NewAdjustableClock()
	store := memory.NewSessionStore()
	profiles := staticProfiles{
		"user_abc": {{SubjectID: "user_abc", Email: "a@b.com", SubscriptionTier: "free"}},
	}
	issuer := newIssuer(store, profiles, clock)
	validator := service.NewValidator(store, clock, testLinks, metric.NewStub())

	issued, err := issuer.Issue(authenticated(context.Background(), "user_abc"))
	require.NoError(t, err)

	profiles["user_abc"][0].SubscriptionTier = "pro"
	data, err := validator.Validate(context.Background(), string(issued.Token))
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionTier("free"), data.SubscriptionTier)
}

func TestValidator_Validate_Returns(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		expect func(t *testing.T, err error)
	}{
		{
			name:  "missing_token_for_empty_value",
			token: "",
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrMissingToken)
				assert.NotErrorIs(t, err, service.ErrInvalidOrExpiredToken)
			},
		},
		{
			name:  "invalid_token_for_unknown_value",
			token: "sb_unknown",
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrInvalidOrExpiredToken)
				assert.NotErrorIs(t, err, service.ErrMissingToken)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := service.NewValidator(memory.NewSessionStore(), pkgtime.NewClock(), testLinks, metric.NewStub())
			_, err := validator.Validate(context.Background(), tt.token)
			tt.expect(t, err)
		})
	}
}

func TestValidator_Validate_DeletesExpiredSessionAtExpiryBoundary(t *testing.T) {
	clock := pkgtime.NewAdjustableClock()
	ctrl := gomock.NewController(t)

	session := domain.NewSession("sb_token", domain.Profile{SubjectID: "user_abc"}, testStart)
	store := domainmock.NewSessionStore(ctrl)
	store.EXPECT().SweepExpired(gomock.Any(), gomock.Any()).Return(0, nil)
	store.EXPECT().Get(gomock.Any(), session.Token).Return(session, nil)
	store.EXPECT().Delete(gomock.Any(), session.Token).Return(nil)

	validator := service.NewValidator(store, clock, testLinks, metric.NewStub())
	ctx := clock.Set(context.Background(), session.ExpiresAt.Add(time.Nanosecond))
	_, err := validator.Validate(ctx, string(session.Token))
	assert.ErrorIs(t, err, service.ErrTokenExpired)
	assert.ErrorIs(t, err, service.ErrInvalidOrExpiredToken)
}

func TestValidator_Validate_AcceptsSessionAtExpiryMoment(t *testing.T) {
	clock := pkgtime.NewAdjustableClock()
	store := memory.NewSessionStore()
	session := domain.NewSession("sb_token", domain.Profile{SubjectID: "user_abc"}, testStart)
	require.NoError(t, store.Put(context.Background(), session))

	validator := service.NewValidator(store, clock, testLinks, metric.NewStub())
	_, err := validator.Validate(clock.Set(context.Background(), session.ExpiresAt), string(session.Token))
	assert.NoError(t, err)
}

func TestValidator_Validate_ReturnsStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := domainmock.NewSessionStore(ctrl)
	store.EXPECT().SweepExpired(gomock.Any(), gomock.Any()).Return(0, nil)
	store.EXPECT().Get(gomock.Any(), domain.Token("sb_token")).Return(nil, errors.New("unexpected"))

	validator := service.NewValidator(store, pkgtime.NewClock(), testLinks, metric.NewStub())
	_, err := validator.Validate(context.Background(), "sb_token")
	assert.ErrorIs(t, err, service.ErrStorageFailure)
}

func TestIssuer_Issue_Returns(t *testing.T) {
	tests := []struct {
		name     string
		ctx      func() context.Context
		profiles func(ctrl *gomock.Controller) *accountmock.ProfileProvider
		tokens   func(ctrl *gomock.Controller) *sessionmock.TokenGenerator
		expect   func(t *testing.T, err error)
	}{
		{
			name: "unauthenticated_without_principal",
			ctx: func() context.Context {
				return context.Background()
			},
			profiles: accountmock.NewProfileProvider,
			tokens:   sessionmock.NewTokenGenerator,
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrUnauthenticated)
			},
		},
		{
			name: "unauthenticated_for_anonymous",
			ctx: func() context.Context {
				return pkgauth.WithAuthentication(context.Background(), pkgauth.Anonymous[auth.Principal]())
			},
			profiles: accountmock.NewProfileProvider,
			tokens:   sessionmock.NewTokenGenerator,
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrUnauthenticated)
			},
		},
		{
			name: "profile_not_found_for_no_rows",
			ctx: func() context.Context {
				return authenticated(context.Background(), "user_abc")
			},
			profiles: func(ctrl *gomock.Controller) *accountmock.ProfileProvider {
				mock := accountmock.NewProfileProvider(ctrl)
				mock.EXPECT().FindBySubject(gomock.Any(), domain.SubjectID("user_abc")).Return(nil, nil)
				return mock
			},
			tokens: sessionmock.NewTokenGenerator,
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrProfileNotFound)
			},
		},
		{
			name: "profile_lookup_failed_for_provider_error",
			ctx: func() context.Context {
				return authenticated(context.Background(), "user_abc")
			},
			profiles: func(ctrl *gomock.Controller) *accountmock.ProfileProvider {
				mock := accountmock.NewProfileProvider(ctrl)
				mock.EXPECT().FindBySubject(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
				return mock
			},
			tokens: sessionmock.NewTokenGenerator,
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrProfileLookupFailed)
			},
		},
		{
			name: "error_for_token_generator_failure",
			ctx: func() context.Context {
				return authenticated(context.Background(), "user_abc")
			},
			profiles: func(ctrl *gomock.Controller) *accountmock.ProfileProvider {
				mock := accountmock.NewProfileProvider(ctrl)
				mock.EXPECT().FindBySubject(gomock.Any(), gomock.Any()).
					Return([]domain.Profile{{SubjectID: "user_abc"}}, nil)
				return mock
			},
			tokens: func(ctrl *gomock.Controller) *sessionmock.TokenGenerator {
				mock := sessionmock.NewTokenGenerator(ctrl)
				mock.EXPECT().Generate().Return(domain.Token(""), errors.New("entropy exhausted"))
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "success_with_first_profile",
			ctx: func() context.Context {
				return authenticated(context.Background(), "user_abc")
			},
			profiles: func(ctrl *gomock.Controller) *accountmock.ProfileProvider {
				mock := accountmock.NewProfileProvider(ctrl)
				mock.EXPECT().FindBySubject(gomock.Any(), gomock.Any()).Return([]domain.Profile{
					{SubjectID: "user_abc", Email: "first@b.com"},
					{SubjectID: "user_abc", Email: "second@b.com"},
				}, nil)
				return mock
			},
			tokens: func(ctrl *gomock.Controller) *sessionmock.TokenGenerator {
				mock := sessionmock.NewTokenGenerator(ctrl)
				mock.EXPECT().Generate().Return(domain.Token("sb_token"), nil)
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := memory.NewSessionStore()
			issuer := service.NewIssuer(
				store,
				tt.profiles(ctrl),
				tt.tokens(ctrl),
				pkgtime.NewClock(),
				testLinks,
				time.Second,
				metric.NewStub(),
			)

			issued, err := issuer.Issue(tt.ctx())
			tt.expect(t, err)

			sessions, listErr := store.List(context.Background())
			require.NoError(t, listErr)
			if err != nil {
				assert.Nil(t, issued)
				assert.Empty(t, sessions)
				return
			}

			require.Len(t, sessions, 1)
			assert.Equal(t, "first@b.com", sessions[0].Email)
			assert.Equal(t, "first@b.com", issued.Session.Email)
		})
	}
}

func TestIssuer_Issue_AppliesProfileLookupTimeout(t *testing.T) {
	profiles := accountmock.NewProfileProvider(gomock.NewController(t))
	profiles.EXPECT().FindBySubject(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.SubjectID) ([]domain.Profile, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	issuer := service.NewIssuer(
		memory.NewSessionStore(),
		profiles,
		infrasession.NewTokenGenerator(),
		pkgtime.NewClock(),
		testLinks,
		10*time.Millisecond,
		metric.NewStub(),
	)

	_, err := issuer.Issue(authenticated(context.Background(), "user_abc"))
	assert.ErrorIs(t, err, service.ErrProfileLookupFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestIssuer_Issue_ConcurrentIssuesNeverCollide(t *testing.T) {
	const issues = 1000

	profiles := make(staticProfiles, issues)
	for i := 0; i < issues; i++ {
		subject := domain.SubjectID(fmt.Sprintf("user_%d", i))
		profiles[subject] = []domain.Profile{{SubjectID: subject, Email: fmt.Sprintf("%d@b.com", i)}}
	}
	store := memory.NewSessionStore()
	issuer := newIssuer(store, profiles, pkgtime.NewClock())

	var (
		wg     sync.WaitGroup
		mutex  sync.Mutex
		tokens = make(map[domain.Token]struct{}, issues)
	)
	for i := 0; i < issues; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			issued, err := issuer.Issue(authenticated(context.Background(), fmt.Sprintf("user_%d", i)))
			assert.NoError(t, err)
			if issued == nil {
				return
			}

			mutex.Lock()
			tokens[issued.Token] = struct{}{}
			mutex.Unlock()
		}(i)
	}
	wg.Wait()

	assert.Len(t, tokens, issues)
	sessions, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, sessions, issues)
}

func TestSessionBridge_SweepDuringIssueKeepsFreshSessions(t *testing.T) {
	const rounds = 200

	clock := pkgtime.NewAdjustableClock()
	store := memory.NewSessionStore()
	profiles := staticProfiles{
		"user_abc": {{SubjectID: "user_abc", Email: "a@b.com"}},
	}
	issuer := newIssuer(store, profiles, clock)
	validator := service.NewValidator(store, clock, testLinks, metric.NewStub())
	sweeper := service.NewSweeper(store, clock, log.NewStub())

	for i := 0; i < rounds; i++ {
		require.NoError(t, store.Put(context.Background(), domain.NewSession(
			domain.Token(fmt.Sprintf("sb_stale_%d", i)),
			domain.Profile{SubjectID: "user_old"},
			testStart.Add(-domain.SessionTTL-time.Minute),
		)))
	}

	now := clock.Set(context.Background(), testStart)
	var (
		wg     sync.WaitGroup
		issued = make(chan domain.Token, rounds)
	)
	for i := 0; i < rounds; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			result, err := issuer.Issue(authenticated(now, "user_abc"))
			if assert.NoError(t, err) {
				issued <- result.Token
			}
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, sweeper.Sweep(now))
		}()
	}
	wg.Wait()
	close(issued)

	for token := range issued {
		_, err := validator.Validate(now, string(token))
		assert.NoError(t, err)
	}

	list, err := issuer.List(now)
	require.NoError(t, err)
	assert.Equal(t, rounds, list.ActiveCount)
	for _, summary := range list.Sessions {
		assert.Equal(t, domain.SubjectID("user_abc"), summary.SubjectID)
		assert.True(t, summary.ExpiresAt.After(testStart))
	}
}

func TestIssuer_List_RedactsTokens(t *testing.T) {
	store := memory.NewSessionStore()
	profiles := staticProfiles{
		"user_abc": {{SubjectID: "user_abc", Email: "a@b.com", SubscriptionTier: "plus"}},
	}
	issuer := newIssuer(store, profiles, pkgtime.NewClock())

	issued, err := issuer.Issue(authenticated(context.Background(), "user_abc"))
	require.NoError(t, err)

	list, err := issuer.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, list.ActiveCount)
	assert.Equal(t, string(issued.Token[:10])+"...", list.Sessions[0].TokenPrefix)
	assert.NotContains(t, list.Sessions[0].TokenPrefix, string(issued.Token))
	assert.Equal(t, "a@b.com", list.Sessions[0].Email)
}

func TestInvalidator_InvalidateCurrent_RevokesAllSubjectSessions(t *testing.T) {
	clock := pkgtime.NewAdjustableClock()
	store := memory.NewSessionStore()
	profiles := staticProfiles{
		"user_abc": {{SubjectID: "user_abc"}},
		"user_def": {{SubjectID: "user_def"}},
	}
	issuer := newIssuer(store, profiles, clock)
	validator := service.NewValidator(store, clock, testLinks, metric.NewStub())

	ctrl := gomock.NewController(t)
	notifier := revocationmock.NewNotifier(ctrl)
	notifier.EXPECT().SessionsRevoked(gomock.Any(), domain.SubjectID("user_abc")).Return(nil)
	invalidator := service.NewInvalidator(store, notifier, metric.NewStub())

	first, err := issuer.Issue(authenticated(context.Background(), "user_abc"))
	require.NoError(t, err)
	second, err := issuer.Issue(authenticated(context.Background(), "user_abc"))
	require.NoError(t, err)
	other, err := issuer.Issue(authenticated(context.Background(), "user_def"))
	require.NoError(t, err)

	require.NoError(t, invalidator.InvalidateCurrent(authenticated(context.Background(), "user_abc")))

	_, err = validator.Validate(context.Background(), string(first.Token))
	assert.ErrorIs(t, err, service.ErrInvalidOrExpiredToken)
	_, err = validator.Validate(context.Background(), string(second.Token))
	assert.ErrorIs(t, err, service.ErrInvalidOrExpiredToken)
	_, err = validator.Validate(context.Background(), string(other.Token))
	assert.NoError(t, err)
}

func TestInvalidator_Returns(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		store    func(ctrl *gomock.Controller) *domainmock.SessionStore
		notifier func(ctrl *gomock.Controller) revocation.Notifier
		expect   func(t *testing.T, err error)
	}{
		{
			name:     "unauthenticated_without_principal",
			ctx:      context.Background(),
			store:    domainmock.NewSessionStore,
			notifier: func(*gomock.Controller) revocation.Notifier { return revocation.NewNoopNotifier() },
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrUnauthenticated)
			},
		},
		{
			name: "storage_failure_for_store_error",
			ctx:  authenticated(context.Background(), "user_abc"),
			store: func(ctrl *gomock.Controller) *domainmock.SessionStore {
				mock := domainmock.NewSessionStore(ctrl)
				mock.EXPECT().DeleteBySubject(gomock.Any(), domain.SubjectID("user_abc")).Return(0, errors.New("unexpected"))
				return mock
			},
			notifier: func(ctrl *gomock.Controller) revocation.Notifier { return revocationmock.NewNotifier(ctrl) },
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrStorageFailure)
			},
		},
		{
			name: "storage_failure_for_notifier_error",
			ctx:  authenticated(context.Background(), "user_abc"),
			store: func(ctrl *gomock.Controller) *domainmock.SessionStore {
				mock := domainmock.NewSessionStore(ctrl)
				mock.EXPECT().DeleteBySubject(gomock.Any(), gomock.Any()).Return(1, nil)
				return mock
			},
			notifier: func(ctrl *gomock.Controller) revocation.Notifier {
				mock := revocationmock.NewNotifier(ctrl)
				mock.EXPECT().SessionsRevoked(gomock.Any(), gomock.Any()).Return(errors.New("broker is down"))
				return mock
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrStorageFailure)
			},
		},
		{
			name: "success_without_sessions",
			ctx:  authenticated(context.Background(), "user_abc"),
			store: func(ctrl *gomock.Controller) *domainmock.SessionStore {
				mock := domainmock.NewSessionStore(ctrl)
				mock.EXPECT().DeleteBySubject(gomock.Any(), gomock.Any()).Return(0, nil)
				return mock
			},
			notifier: func(*gomock.Controller) revocation.Notifier { return revocation.NewNoopNotifier() },
			expect: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			invalidator := service.NewInvalidator(tt.store(ctrl), tt.notifier(ctrl), metric.NewStub())
			tt.expect(t, invalidator.InvalidateCurrent(tt.ctx))
		})
	}
}

func TestInvalidator_HandleSessionsRevoked_DoesNotNotifyAgain(t *testing.T) {
	store := memory.NewSessionStore()
	require.NoError(t, store.Put(context.Background(), domain.NewSession("sb_token", domain.Profile{SubjectID: "user_abc"}, time.Now())))

	notifier := revocationmock.NewNotifier(gomock.NewController(t))
	invalidator := service.NewInvalidator(store, notifier, metric.NewStub())

	require.NoError(t, invalidator.HandleSessionsRevoked(context.Background(), "user_abc"))
	_, err := store.Get(context.Background(), "sb_token")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
