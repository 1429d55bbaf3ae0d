package service

import (
	"context"

	"github.com/klwxsrx/docscan-portal/internal/bridge/api"
	"github.com/klwxsrx/docscan-portal/internal/bridge/domain"
)

type bridgeAPI struct {
	invalidator Invalidator
}

func NewAPI(invalidator Invalidator) api.API {
	return bridgeAPI{invalidator: invalidator}
}

func (a bridgeAPI) InvalidateSubjectSessions(ctx context.Context, subjectID string) error {
	return a.invalidator.InvalidateSubject(ctx, domain.SubjectID(subjectID))
}
