package bridge

import (
	"fmt"
	"time"

	accountapi "github.com/klwxsrx/docscan-portal/internal/account/api"
	"github.com/klwxsrx/docscan-portal/internal/bridge/api"
	"github.com/klwxsrx/docscan-portal/internal/bridge/app/revocation"
	"github.com/klwxsrx/docscan-portal/internal/bridge/app/service"
	"github.com/klwxsrx/docscan-portal/internal/bridge/domain"
	"github.com/klwxsrx/docscan-portal/internal/bridge/infra/account"
	"github.com/klwxsrx/docscan-portal/internal/bridge/infra/http"
	"github.com/klwxsrx/docscan-portal/internal/bridge/infra/memory"
	"github.com/klwxsrx/docscan-portal/internal/bridge/infra/message"
	"github.com/klwxsrx/docscan-portal/internal/bridge/infra/redis"
	"github.com/klwxsrx/docscan-portal/internal/bridge/infra/session"
	"github.com/klwxsrx/docscan-portal/pkg/env"
	pkghttp "github.com/klwxsrx/docscan-portal/pkg/http"
	pkglazy "github.com/klwxsrx/docscan-portal/pkg/lazy"
	"github.com/klwxsrx/docscan-portal/pkg/log"
	pkgmessage "github.com/klwxsrx/docscan-portal/pkg/message"
	"github.com/klwxsrx/docscan-portal/pkg/metric"
	"github.com/klwxsrx/docscan-portal/pkg/pulsar"
	pkgredis "github.com/klwxsrx/docscan-portal/pkg/redis"
	pkgtime "github.com/klwxsrx/docscan-portal/pkg/time"
	"github.com/klwxsrx/docscan-portal/pkg/worker"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type (
	Config struct {
		Store         string
		Links         service.Links
		DebugEnabled  bool
		SweepInterval time.Duration
	}

	// Infrastructure is the part of the shared infrastructure the bridge depends on
	Infrastructure struct {
		InstanceID       string
		BrokerConfigured bool
		Redis            pkglazy.Loader[*pkgredis.Client]
		MessageBroker    pkglazy.Loader[*pulsar.MessageBroker]
		Clock            pkglazy.Loader[pkgtime.Clock]
		Metrics          pkglazy.Loader[metric.Metrics]
		Logger           pkglazy.Loader[log.Logger]
	}

	DependencyContainer struct {
		API                       pkglazy.Loader[api.API]
		Issuer                    pkglazy.Loader[service.Issuer]
		Validator                 pkglazy.Loader[service.Validator]
		Invalidator               pkglazy.Loader[service.Invalidator]
		IssueSessionHandler       pkglazy.Loader[pkghttp.Handler]
		ListSessionsHandler       pkglazy.Loader[pkghttp.Handler]
		ValidateSessionHandler    pkglazy.Loader[pkghttp.Handler]
		InvalidateSessionsHandler pkglazy.Loader[pkghttp.Handler]

		config       pkglazy.Loader[Config]
		infra        Infrastructure
		sessionStore pkglazy.Loader[domain.SessionStore]
	}
)

func NewDependencyContainer(
	accountAPI pkglazy.Loader[accountapi.API],
	infra Infrastructure,
) *DependencyContainer {
	config := configProvider()
	sessionStore := sessionStoreProvider(config, infra.Redis)
	notifier := notifierProvider(config, infra)

	issuer := pkglazy.New(func() (service.Issuer, error) {
		return service.NewIssuer(
			sessionStore.MustLoad(),
			account.NewProfileProvider(accountAPI.MustLoad()),
			session.NewTokenGenerator(),
			infra.Clock.MustLoad(),
			config.MustLoad().Links,
			service.DefaultProfileLookupTimeout,
			infra.Metrics.MustLoad(),
		), nil
	})
	validator := pkglazy.New(func() (service.Validator, error) {
		return service.NewValidator(
			sessionStore.MustLoad(),
			infra.Clock.MustLoad(),
			config.MustLoad().Links,
			infra.Metrics.MustLoad(),
		), nil
	})
	invalidator := pkglazy.New(func() (service.Invalidator, error) {
		return service.NewInvalidator(
			sessionStore.MustLoad(),
			notifier.MustLoad(),
			infra.Metrics.MustLoad(),
		), nil
	})

	return &DependencyContainer{
		API: pkglazy.New(func() (api.API, error) {
			return service.NewAPI(invalidator.MustLoad()), nil
		}),
		Issuer:      issuer,
		Validator:   validator,
		Invalidator: invalidator,
		IssueSessionHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return http.NewIssueSessionHandler(issuer.MustLoad()), nil
		}),
		ListSessionsHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return http.NewListSessionsHandler(issuer.MustLoad()), nil
		}),
		ValidateSessionHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return http.NewValidateSessionHandler(validator.MustLoad()), nil
		}),
		InvalidateSessionsHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return http.NewInvalidateSessionsHandler(invalidator.MustLoad()), nil
		}),
		config:       config,
		infra:        infra,
		sessionStore: sessionStore,
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.IssueSessionHandler.MustLoad())
	registry.Register(c.ValidateSessionHandler.MustLoad())
	registry.Register(c.InvalidateSessionsHandler.MustLoad())
	if c.config.MustLoad().DebugEnabled {
		registry.Register(c.ListSessionsHandler.MustLoad())
	}
}

// MustInitJobs returns the background jobs the configured session store needs
func (c *DependencyContainer) MustInitJobs() []worker.ContextJob {
	config := c.config.MustLoad()
	if config.Store != StoreMemory {
		return nil
	}

	var jobs []worker.ContextJob
	if c.infra.BrokerConfigured {
		consumer, err := c.infra.MessageBroker.MustLoad().Consumer(pulsar.ConsumerOptions{
			Topic:            message.TopicSessionsRevoked,
			SubscriptionName: fmt.Sprintf("%s-%s", domain.Name, c.infra.InstanceID),
			ConsumptionType:  pulsar.ConsumptionTypeExclusive,
			Ephemeral:        true,
		})
		if err != nil {
			panic(fmt.Errorf("subscribe to %s: %w", message.TopicSessionsRevoked, err))
		}

		jobs = append(jobs, pkgmessage.NewListener(
			consumer,
			message.NewSessionsRevokedHandler(c.Invalidator.MustLoad(), c.infra.InstanceID),
			c.infra.Logger.MustLoad(),
		))
	}

	if config.SweepInterval > 0 {
		sweeper := service.NewSweeper(c.sessionStore.MustLoad(), c.infra.Clock.MustLoad(), c.infra.Logger.MustLoad())
		jobs = append(jobs, worker.PeriodicalJob(sweeper.Sweep, config.SweepInterval, c.infra.Logger.MustLoad()))
	}

	return jobs
}

func configProvider() pkglazy.Loader[Config] {
	return pkglazy.New(func() (Config, error) {
		config := Config{
			Store: StoreMemory,
			Links: service.Links{
				AppURL:       env.Must(env.Parse[string]("BRIDGE_APP_URL")),
				DashboardURL: env.Must(env.Parse[string]("BRIDGE_DASHBOARD_URL")),
			},
			DebugEnabled:  false,
			SweepInterval: 0,
		}
		if store := env.Must(env.ParseOptional[*string]("BRIDGE_STORE")); store != nil {
			config.Store = *store
		}
		if debugEnabled := env.Must(env.ParseOptional[*bool]("BRIDGE_DEBUG_ENABLED")); debugEnabled != nil {
			config.DebugEnabled = *debugEnabled
		}
		if sweepInterval := env.Must(env.ParseOptional[*time.Duration]("BRIDGE_SWEEP_INTERVAL")); sweepInterval != nil {
			config.SweepInterval = *sweepInterval
		}

		if config.Store != StoreMemory && config.Store != StoreRedis {
			return config, fmt.Errorf("unknown bridge store %q", config.Store)
		}
		return config, nil
	})
}

func sessionStoreProvider(
	config pkglazy.Loader[Config],
	redisClient pkglazy.Loader[*pkgredis.Client],
) pkglazy.Loader[domain.SessionStore] {
	return pkglazy.New(func() (domain.SessionStore, error) {
		if config.MustLoad().Store == StoreRedis {
			return redis.NewSessionStore(redisClient.MustLoad().Redis()), nil
		}
		return memory.NewSessionStore(), nil
	})
}

func notifierProvider(
	config pkglazy.Loader[Config],
	infra Infrastructure,
) pkglazy.Loader[revocation.Notifier] {
	return pkglazy.New(func() (revocation.Notifier, error) {
		if config.MustLoad().Store != StoreMemory || !infra.BrokerConfigured {
			return revocation.NewNoopNotifier(), nil
		}
		return message.NewNotifier(infra.MessageBroker.MustLoad(), infra.InstanceID), nil
	})
}
