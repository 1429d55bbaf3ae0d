package service

import (
	"context"
	"fmt"

	"github.com/klwxsrx/docscan-portal/internal/bridge/app/revocation"
	"github.com/klwxsrx/docscan-portal/internal/bridge/domain"
	"github.com/klwxsrx/docscan-portal/internal/pkg/auth"
	pkgauth "github.com/klwxsrx/docscan-portal/pkg/auth"
	"github.com/klwxsrx/docscan-portal/pkg/metric"
)

type (
	Invalidator interface {
		// InvalidateCurrent revokes every session of the authenticated subject
		InvalidateCurrent(context.Context) error
		InvalidateSubject(context.Context, domain.SubjectID) error
		// HandleSessionsRevoked drops local sessions of a subject revoked on another instance
		HandleSessionsRevoked(context.Context, domain.SubjectID) error
	}

	invalidator struct {
		store    domain.SessionStore
		notifier revocation.Notifier
		metrics  metric.Metrics
	}
)

func NewInvalidator(
	store domain.SessionStore,
	notifier revocation.Notifier,
	metrics metric.Metrics,
) Invalidator {
	return &invalidator{
		store:    store,
		notifier: notifier,
		metrics:  metrics,
	}
}

func (s *invalidator) InvalidateCurrent(ctx context.Context) error {
	principal, err := pkgauth.GetPrincipal[auth.Principal](ctx)
	if err != nil || principal.SubjectID() == "" {
		return ErrUnauthenticated
	}

	return s.InvalidateSubject(ctx, domain.SubjectID(principal.SubjectID()))
}

func (s *invalidator) InvalidateSubject(ctx context.Context, subjectID domain.SubjectID) error {
	err := s.deleteSubjectSessions(ctx, subjectID)
	if err != nil {
		return err
	}

	err = s.notifier.SessionsRevoked(ctx, subjectID)
	if err != nil {
		return fmt.Errorf("%w: notify sessions revoked: %w", ErrStorageFailure, err)
	}

	return nil
}

func (s *invalidator) HandleSessionsRevoked(ctx context.Context, subjectID domain.SubjectID) error {
	return s.deleteSubjectSessions(ctx, subjectID)
}

func (s *invalidator) deleteSubjectSessions(ctx context.Context, subjectID domain.SubjectID) error {
	revoked, err := s.store.DeleteBySubject(ctx, subjectID)
	if err != nil {
		return fmt.Errorf("%w: delete subject sessions: %w", ErrStorageFailure, err)
	}

	s.metrics.Count("bridge_sessions_revoked_total", revoked)
	return nil
}
