package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/klwxsrx/docscan-portal/pkg/log"
	"github.com/klwxsrx/docscan-portal/pkg/worker"
)

func MustRun(ctx context.Context, logger log.Logger, jobs ...worker.ContextJob) {
	if err := Run(ctx, logger, jobs...); err != nil {
		panic(fmt.Errorf("some of the jobs completed with error: %w", err))
	}
}

// Run stops all the jobs as soon as any of them completes
func Run(ctx context.Context, logger log.Logger, jobs ...worker.ContextJob) error {
	errCompleted := errors.New("job completed")
	loggingAdapter := func(job worker.ContextJob) worker.ContextJob {
		return func(ctx context.Context) error {
			err := job(ctx)
			if err == nil || ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				return errCompleted
			}

			logger.WithError(err).Error(ctx, "running job completed with error")
			return err
		}
	}

	_, group := worker.NewFailFastGroup(ctx)
	for _, job := range jobs {
		group.Do(loggingAdapter(job))
	}

	err := group.Wait()
	if err != nil && !errors.Is(err, errCompleted) {
		return err
	}

	return nil
}
