package worker

import (
	"context"
	"time"

	"github.com/klwxsrx/docscan-portal/pkg/log"
)

func PeriodicalJob(job ContextJob, every time.Duration, logger log.Logger) ContextJob {
	return func(ctx context.Context) error {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := job(ctx); err != nil {
					logger.WithError(err).Error(ctx, "periodical job completed with error")
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
