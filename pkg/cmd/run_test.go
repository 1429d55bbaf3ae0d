package cmd_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/docscan-portal/pkg/cmd"
	"github.com/klwxsrx/docscan-portal/pkg/log"
)

func TestRun_StopsOtherJobsWhenOneCompletes(t *testing.T) {
	listenerStopped := false
	err := cmd.Run(context.Background(), log.New(log.LevelDisabled),
		func(context.Context) error { return nil },
		func(ctx context.Context) error {
			<-ctx.Done()
			listenerStopped = true
			return ctx.Err()
		},
	)

	assert.NoError(t, err)
	assert.True(t, listenerStopped)
}

func TestRun_ReturnsJobError(t *testing.T) {
	expectedErr := errors.New("listener failed")
	err := cmd.Run(context.Background(), log.New(log.LevelDisabled),
		func(context.Context) error { return expectedErr },
		func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	)

	assert.ErrorIs(t, err, expectedErr)
}
