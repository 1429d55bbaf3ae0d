//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "ProfileProvider=ProfileProvider"
package account

import (
	"context"

	"github.com/klwxsrx/docscan-portal/internal/bridge/domain"
)

type ProfileProvider interface {
	// FindBySubject returns zero or more profiles in a stable order
	FindBySubject(context.Context, domain.SubjectID) ([]domain.Profile, error)
}
