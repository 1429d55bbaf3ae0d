package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/klwxsrx/docscan-portal/internal/bridge/domain"
	"github.com/klwxsrx/docscan-portal/pkg/metric"
	pkgtime "github.com/klwxsrx/docscan-portal/pkg/time"
)

const validatedMetric = "bridge_sessions_validated_total"

type (
	Validator interface {
		Validate(ctx context.Context, token string) (*SessionData, error)
	}

	validator struct {
		store   domain.SessionStore
		clock   pkgtime.Clock
		links   Links
		metrics metric.Metrics
	}
)

func NewValidator(
	store domain.SessionStore,
	clock pkgtime.Clock,
	links Links,
	metrics metric.Metrics,
) Validator {
	return &validator{
		store:   store,
		clock:   clock,
		links:   links,
		metrics: metrics,
	}
}

func (s *validator) Validate(ctx context.Context, token string) (*SessionData, error) {
	if token == "" {
		s.metrics.WithLabel("result", "missing").Increment(validatedMetric)
		return nil, ErrMissingToken
	}

	now := s.clock.Now(ctx)
	err := sweepExpired(ctx, s.store, now)
	if err != nil {
		return nil, err
	}

	session, err := s.store.Get(ctx, domain.Token(token))
	if errors.Is(err, domain.ErrSessionNotFound) {
		s.metrics.WithLabel("result", "invalid").Increment(validatedMetric)
		return nil, ErrInvalidOrExpiredToken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get session: %w", ErrStorageFailure, err)
	}

	if session.IsExpired(now) {
		err = s.store.Delete(ctx, session.Token)
		if err != nil {
			return nil, fmt.Errorf("%w: delete expired session: %w", ErrStorageFailure, err)
		}

		s.metrics.WithLabel("result", "expired").Increment(validatedMetric)
		return nil, ErrTokenExpired
	}

	s.metrics.WithLabel("result", "ok").Increment(validatedMetric)
	data := toSessionData(session, s.links)
	return &data, nil
}
