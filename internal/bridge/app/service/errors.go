package service

import (
	"context"
	"fmt"
	"time"

	"github.com/klwxsrx/docscan-portal/internal/bridge/api"
	"github.com/klwxsrx/docscan-portal/internal/bridge/domain"
)

var (
	ErrUnauthenticated       = api.ErrUnauthenticated
	ErrProfileNotFound       = api.ErrProfileNotFound
	ErrProfileLookupFailed   = api.ErrProfileLookupFailed
	ErrMissingToken          = api.ErrMissingToken
	ErrInvalidOrExpiredToken = api.ErrInvalidOrExpiredToken
	ErrTokenExpired          = api.ErrTokenExpired
	ErrStorageFailure        = api.ErrStorageFailure
)

func sweepExpired(ctx context.Context, store domain.SessionStore, now time.Time) error {
	_, err := store.SweepExpired(ctx, now)
	if err != nil {
		return fmt.Errorf("%w: sweep expired sessions: %w", ErrStorageFailure, err)
	}

	return nil
}
