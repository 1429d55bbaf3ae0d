package billing

import (
	accountapi "github.com/klwxsrx/docscan-portal/internal/account/api"
	"github.com/klwxsrx/docscan-portal/internal/billing/app/service"
	"github.com/klwxsrx/docscan-portal/internal/billing/domain"
	"github.com/klwxsrx/docscan-portal/internal/billing/infra/http"
	bridgeapi "github.com/klwxsrx/docscan-portal/internal/bridge/api"
	"github.com/klwxsrx/docscan-portal/pkg/env"
	pkghttp "github.com/klwxsrx/docscan-portal/pkg/http"
	"github.com/klwxsrx/docscan-portal/pkg/idk"
	pkglazy "github.com/klwxsrx/docscan-portal/pkg/lazy"
	"github.com/klwxsrx/docscan-portal/pkg/log"
	pkgpersistence "github.com/klwxsrx/docscan-portal/pkg/persistence"
)

type DependencyContainer struct {
	WebhookService pkglazy.Loader[*service.WebhookService]
	WebhookHandler pkglazy.Loader[pkghttp.Handler]
}

func NewDependencyContainer(
	dbTransaction pkglazy.Loader[pkgpersistence.Transaction],
	idempotencyKeys pkglazy.Loader[idk.Storage],
	accountAPI pkglazy.Loader[accountapi.API],
	bridgeAPI pkglazy.Loader[bridgeapi.API],
	logger pkglazy.Loader[log.Logger],
) *DependencyContainer {
	webhookService := pkglazy.New(func() (*service.WebhookService, error) {
		tiers := domain.PlanTiers{}
		if value := env.Must(env.ParseOptional[*string]("BILLING_PLAN_TIERS")); value != nil {
			var err error
			tiers, err = domain.ParsePlanTiers(*value)
			if err != nil {
				return nil, err
			}
		}

		return service.NewWebhookService(
			env.Must(env.Parse[string]("BILLING_WEBHOOK_SECRET")),
			tiers,
			dbTransaction.MustLoad(),
			idempotencyKeys.MustLoad(),
			accountAPI.MustLoad(),
			bridgeAPI.MustLoad(),
			logger.MustLoad().WithField("domain", domain.Name),
		), nil
	})

	return &DependencyContainer{
		WebhookService: webhookService,
		WebhookHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return http.NewWebhookHandler(webhookService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.WebhookHandler.MustLoad())
}
