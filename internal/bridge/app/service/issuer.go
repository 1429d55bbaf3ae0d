package service

import (
	"context"
	"fmt"
	"time"

	"github.com/klwxsrx/docscan-portal/internal/bridge/app/account"
	"github.com/klwxsrx/docscan-portal/internal/bridge/app/session"
	"github.com/klwxsrx/docscan-portal/internal/bridge/domain"
	"github.com/klwxsrx/docscan-portal/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/docscan-portal/pkg/auth"
	"github.com/klwxsrx/docscan-portal/pkg/metric"
	pkgtime "github.com/klwxsrx/docscan-portal/pkg/time"
)

const DefaultProfileLookupTimeout = 5 * time.Second

type (
	Issuer interface {
		// Issue mints a session for the authenticated subject from its current profile
		Issue(context.Context) (*IssuedSession, error)
		// List returns redacted live sessions for operational inspection
		List(context.Context) (*SessionList, error)
	}

	issuer struct {
		store         domain.SessionStore
		profiles      account.ProfileProvider
		tokens        session.TokenGenerator
		clock         pkgtime.Clock
		links         Links
		lookupTimeout time.Duration
		metrics       metric.Metrics
	}
)

func NewIssuer(
	store domain.SessionStore,
	profiles account.ProfileProvider,
	tokens session.TokenGenerator,
	clock pkgtime.Clock,
	links Links,
	lookupTimeout time.Duration,
	metrics metric.Metrics,
) Issuer {
	if lookupTimeout <= 0 {
		lookupTimeout = DefaultProfileLookupTimeout
	}

	return &issuer{
		store:         store,
		profiles:      profiles,
		tokens:        tokens,
		clock:         clock,
		links:         links,
		lookupTimeout: lookupTimeout,
		metrics:       metrics,
	}
}

func (s *issuer) Issue(ctx context.Context) (*IssuedSession, error) {
	principal, err := pkgauth.GetPrincipal[auth.Principal](ctx)
	if err != nil || principal.SubjectID() == "" {
		return nil, ErrUnauthenticated
	}

	now := s.clock.Now(ctx)
	err = sweepExpired(ctx, s.store, now)
	if err != nil {
		return nil, err
	}

	profile, err := s.findProfile(ctx, domain.SubjectID(principal.SubjectID()))
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	newSession := domain.NewSession(token, *profile, now)
	err = s.store.Put(ctx, newSession)
	if err != nil {
		return nil, fmt.Errorf("%w: put session: %w", ErrStorageFailure, err)
	}

	s.metrics.Increment("bridge_sessions_issued_total")
	return &IssuedSession{
		Token:   newSession.Token,
		AppURL:  s.links.AppURL,
		Session: toSessionData(newSession, s.links),
	}, nil
}

func (s *issuer) List(ctx context.Context) (*SessionList, error) {
	now := s.clock.Now(ctx)
	err := sweepExpired(ctx, s.store, now)
	if err != nil {
		return nil, err
	}

	sessions, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list sessions: %w", ErrStorageFailure, err)
	}

	result := &SessionList{
		ActiveCount: 0,
		Sessions:    make([]SessionSummary, 0, len(sessions)),
	}
	for i := range sessions {
		if sessions[i].IsExpired(now) {
			continue
		}
		result.Sessions = append(result.Sessions, toSessionSummary(&sessions[i]))
	}
	result.ActiveCount = len(result.Sessions)

	return result, nil
}

func (s *issuer) findProfile(ctx context.Context, subjectID domain.SubjectID) (*domain.Profile, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	profiles, err := s.profiles.FindBySubject(lookupCtx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProfileLookupFailed, err)
	}
	if len(profiles) == 0 {
		return nil, ErrProfileNotFound
	}

	return &profiles[0], nil
}
