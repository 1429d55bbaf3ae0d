package cmd_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/docscan-portal/internal/pkg/cmd"
	idkmock "github.com/klwxsrx/docscan-portal/pkg/idk/mock"
	"github.com/klwxsrx/docscan-portal/pkg/log"
	pkgtime "github.com/klwxsrx/docscan-portal/pkg/time"
)

func TestIdempotencyKeysCleaner_DeleteOutdated(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	clock := pkgtime.NewAdjustableClock()

	storage := idkmock.NewStorage(gomock.NewController(t))
	storage.EXPECT().Delete(gomock.Any(), now.Add(-time.Hour)).Return(nil)
	storage.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("db is down"))

	cleaner := cmd.NewIdempotencyKeysCleaner(storage, clock, time.Hour, log.NewStub())
	assert.NoError(t, cleaner.DeleteOutdated(clock.Set(context.Background(), now)))
	assert.Error(t, cleaner.DeleteOutdated(context.Background()))
}
