//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Notifier=Notifier"
package revocation

import (
	"context"

	"github.com/klwxsrx/docscan-portal/internal/bridge/domain"
)

// Notifier tells the other service instances to drop the sessions they keep for the subject
type Notifier interface {
	SessionsRevoked(context.Context, domain.SubjectID) error
}

type noopNotifier struct{}

func NewNoopNotifier() Notifier {
	return noopNotifier{}
}

func (n noopNotifier) SessionsRevoked(context.Context, domain.SubjectID) error {
	return nil
}
