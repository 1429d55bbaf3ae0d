package service

import (
	"context"

	"github.com/klwxsrx/docscan-portal/internal/bridge/domain"
	"github.com/klwxsrx/docscan-portal/pkg/log"
	pkgtime "github.com/klwxsrx/docscan-portal/pkg/time"
)

type (
	Sweeper interface {
		Sweep(context.Context) error
	}

	sweeper struct {
		store  domain.SessionStore
		clock  pkgtime.Clock
		logger log.Logger
	}
)

// NewSweeper removes expired sessions regardless of traffic, it complements the sweep done by every request
func NewSweeper(store domain.SessionStore, clock pkgtime.Clock, logger log.Logger) Sweeper {
	return &sweeper{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

func (s *sweeper) Sweep(ctx context.Context) error {
	swept, err := s.store.SweepExpired(ctx, s.clock.Now(ctx))
	if err != nil {
		return err
	}

	if swept > 0 {
		s.logger.WithField("swept", swept).Debug(ctx, "expired sessions swept")
	}
	return nil
}
