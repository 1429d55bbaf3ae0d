package worker

import (
	"context"
	"sync"
)

type ContextJob func(context.Context) error

type Group interface {
	Do(ContextJob)
	Wait() error
}

type group struct {
	ctx                 context.Context
	ctxCancel           context.CancelFunc
	cancelCtxAfterError bool

	errChan   chan error
	errResult error
	pool      Pool

	onceCloser *sync.Once
}

// WithinFailFastGroup cancels the group context after the first job error
func WithinFailFastGroup(ctx context.Context, pool Pool) (context.Context, Group) {
	return newGroup(ctx, pool, true)
}

func WithinFailSafeGroup(ctx context.Context, pool Pool) (context.Context, Group) {
	return newGroup(ctx, pool, false)
}

func NewFailFastGroup(ctx context.Context) (context.Context, Group) {
	return WithinFailFastGroup(ctx, NewPool(MaxWorkersCountUnlimited))
}

func NewFailSafeGroup(ctx context.Context) (context.Context, Group) {
	return WithinFailSafeGroup(ctx, NewPool(MaxWorkersCountUnlimited))
}

func newGroup(ctx context.Context, pool Pool, cancelAfterError bool) (context.Context, Group) {
	ctx, ctxCancel := context.WithCancel(ctx)
	return ctx, &group{
		ctx:                 ctx,
		ctxCancel:           ctxCancel,
		cancelCtxAfterError: cancelAfterError,
		errChan:             make(chan error, 1),
		errResult:           nil,
		pool:                pool,
		onceCloser:          &sync.Once{},
	}
}

func (g *group) Do(job ContextJob) {
	g.pool.Do(func() {
		err := job(g.ctx)
		if err == nil {
			return
		}

		select {
		case g.errChan <- err:
			if g.cancelCtxAfterError {
				g.ctxCancel()
			}
		default:
		}
	})
}

func (g *group) Wait() error {
	g.pool.Wait()
	g.onceCloser.Do(func() {
		g.ctxCancel()

		select {
		case g.errResult = <-g.errChan:
		default:
		}
	})

	return g.errResult
}
