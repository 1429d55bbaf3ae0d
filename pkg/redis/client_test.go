package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/docscan-portal/pkg/log"
	pkgredis "github.com/klwxsrx/docscan-portal/pkg/redis"
)

func TestNewClient_ConnectsToServer(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := pkgredis.NewClient(context.Background(), pkgredis.Config{
		Address:           server.Addr(),
		ConnectionTimeout: time.Second,
	}, log.NewStub())
	require.NoError(t, err)
	defer client.Close(context.Background())

	require.NoError(t, client.Redis().Set(context.Background(), "key", "value", 0).Err())
	assert.Equal(t, "value", client.Redis().Get(context.Background(), "key").Val())
}

func TestNewClient_FailsWhenServerIsUnreachable(t *testing.T) {
	server := miniredis.RunT(t)
	address := server.Addr()
	server.Close()

	_, err := pkgredis.NewClient(context.Background(), pkgredis.Config{
		Address:           address,
		ConnectionTimeout: 100 * time.Millisecond,
	}, log.NewStub())
	assert.Error(t, err)
}
