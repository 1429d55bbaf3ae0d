//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "API=API"
package api

import (
	"context"
	"errors"
	"fmt"

	pkgauth "github.com/klwxsrx/docscan-portal/pkg/auth"
)

var (
	ErrUnauthenticated       = pkgauth.ErrUnauthenticated
	ErrProfileNotFound       = errors.New("profile not found")
	ErrProfileLookupFailed   = errors.New("profile lookup failed")
	ErrMissingToken          = errors.New("token is missing")
	ErrInvalidOrExpiredToken = errors.New("token is invalid or expired")
	ErrTokenExpired          = fmt.Errorf("%w: token expired", ErrInvalidOrExpiredToken)
	ErrStorageFailure        = errors.New("session storage failure")
)

// API is used by other modules to revoke the bridge sessions when the data they snapshot gets outdated
type API interface {
	InvalidateSubjectSessions(ctx context.Context, subjectID string) error
}
