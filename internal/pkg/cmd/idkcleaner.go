package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/klwxsrx/docscan-portal/pkg/idk"
	"github.com/klwxsrx/docscan-portal/pkg/log"
	pkgtime "github.com/klwxsrx/docscan-portal/pkg/time"
)

const DefaultIdempotencyKeysRetention = 30 * 24 * time.Hour

type IdempotencyKeysCleaner struct {
	storage   idk.Storage
	clock     pkgtime.Clock
	retention time.Duration
	logger    log.Logger
}

func NewIdempotencyKeysCleaner(
	storage idk.Storage,
	clock pkgtime.Clock,
	retention time.Duration,
	logger log.Logger,
) *IdempotencyKeysCleaner {
	return &IdempotencyKeysCleaner{
		storage:   storage,
		clock:     clock,
		retention: retention,
		logger:    logger,
	}
}

func (c *IdempotencyKeysCleaner) DeleteOutdated(ctx context.Context) error {
	before := c.clock.Now(ctx).Add(-c.retention)
	err := c.storage.Delete(ctx, before)
	if err != nil {
		return fmt.Errorf("delete idempotency keys: %w", err)
	}

	c.logger.WithField("before", before).Info(ctx, "outdated idempotency keys deleted")
	return nil
}
