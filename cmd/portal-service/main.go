package main

import (
	"context"

	"github.com/klwxsrx/docscan-portal/internal/account"
	"github.com/klwxsrx/docscan-portal/internal/billing"
	"github.com/klwxsrx/docscan-portal/internal/bridge"
	"github.com/klwxsrx/docscan-portal/internal/pkg/cmd"
	pkgcmd "github.com/klwxsrx/docscan-portal/pkg/cmd"
	"github.com/klwxsrx/docscan-portal/pkg/worker"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	accountContainer := account.NewDependencyContainer(
		infra.DBClient,
		infra.DBTransaction,
		infra.DBMigrations,
		infra.HTTPClientFactory,
		infra.Clock,
	)
	bridgeContainer := bridge.NewDependencyContainer(
		accountContainer.API,
		bridge.Infrastructure{
			InstanceID:       infra.InstanceID,
			BrokerConfigured: infra.IsMessageBrokerConfigured(),
			Redis:            infra.Redis,
			MessageBroker:    infra.MessageBroker,
			Clock:            infra.Clock,
			Metrics:          infra.Metrics,
			Logger:           infra.Logger,
		},
	)
	billingContainer := billing.NewDependencyContainer(
		infra.DBTransaction,
		infra.IdempotencyKeys,
		accountContainer.API,
		bridgeContainer.API,
		infra.Logger,
	)

	httpServer := infra.HTTPServer.MustLoad()
	accountContainer.MustRegisterHTTPHandlers(httpServer)
	bridgeContainer.MustRegisterHTTPHandlers(httpServer)
	billingContainer.MustRegisterHTTPHandlers(httpServer)

	jobs := append(
		[]worker.ContextJob{pkgcmd.TermSignalAwaiter, httpServer.Listener},
		bridgeContainer.MustInitJobs()...,
	)
	pkgcmd.MustRun(ctx, infra.Logger.MustLoad(), jobs...)
}
