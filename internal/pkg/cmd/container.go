package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/docscan-portal/internal/pkg/auth"
	commonhttp "github.com/klwxsrx/docscan-portal/internal/pkg/http"
	pkgauth "github.com/klwxsrx/docscan-portal/pkg/auth"
	"github.com/klwxsrx/docscan-portal/pkg/cmd"
	"github.com/klwxsrx/docscan-portal/pkg/env"
	"github.com/klwxsrx/docscan-portal/pkg/http"
	"github.com/klwxsrx/docscan-portal/pkg/idk"
	"github.com/klwxsrx/docscan-portal/pkg/lazy"
	"github.com/klwxsrx/docscan-portal/pkg/log"
	"github.com/klwxsrx/docscan-portal/pkg/metric"
	"github.com/klwxsrx/docscan-portal/pkg/observability"
	"github.com/klwxsrx/docscan-portal/pkg/persistence"
	"github.com/klwxsrx/docscan-portal/pkg/pulsar"
	"github.com/klwxsrx/docscan-portal/pkg/redis"
	"github.com/klwxsrx/docscan-portal/pkg/sql"
	pkgtime "github.com/klwxsrx/docscan-portal/pkg/time"
)

const (
	metricsNamespace = "docscan"

	// dbInstanceName is shared by every module, so their repositories join a single transaction
	dbInstanceName = "portal"
)

type InfrastructureContainer struct {
	// InstanceID identifies the running process, e.g. for per-instance subscriptions
	InstanceID string

	HTTPServer             lazy.Loader[http.Server]
	HTTPClientFactory      lazy.Loader[HTTPClientFactory]
	DB                     lazy.Loader[sql.Database]
	DBClient               lazy.Loader[sql.Client]
	DBTransaction          lazy.Loader[persistence.Transaction]
	DBMigrations           lazy.Loader[SQLMigrations]
	IdempotencyKeys        lazy.Loader[idk.Storage]
	IdempotencyKeysCleaner lazy.Loader[*IdempotencyKeysCleaner]
	Redis                  lazy.Loader[*redis.Client]
	MessageBroker          lazy.Loader[*pulsar.MessageBroker]
	Clock                  lazy.Loader[pkgtime.Clock]
	Metrics                lazy.Loader[metric.Metrics]
	Logger                 lazy.Loader[log.Logger]

	prometheus lazy.Loader[metric.PrometheusMetrics]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	prometheus := prometheusProvider()
	metrics := lazy.New(func() (metric.Metrics, error) { return prometheus.MustLoad(), nil })
	logger := loggerProvider()
	observer := observerProvider(logger)

	db := sqlDatabaseProvider(logger)
	dbClient := lazy.New(func() (sql.Client, error) {
		return sql.NewClient(db.MustLoad(), dbInstanceName), nil
	})
	dbMigrations := sqlMigrationsProvider(ctx, db, logger)
	idempotencyKeys := idempotencyKeysProvider(dbClient, dbMigrations)
	clock := lazy.New(func() (pkgtime.Clock, error) {
		return pkgtime.NewClock(), nil
	})

	return &InfrastructureContainer{
		InstanceID:        uuid.NewString(),
		HTTPServer:        httpServerProvider(prometheus, observer, logger),
		HTTPClientFactory: httpClientFactoryProvider(observer, metrics, logger),
		DB:                db,
		DBClient:          dbClient,
		DBTransaction: lazy.New(func() (persistence.Transaction, error) {
			return sql.NewTransaction(db.MustLoad(), dbInstanceName), nil
		}),
		DBMigrations:    dbMigrations,
		IdempotencyKeys: idempotencyKeys,
		IdempotencyKeysCleaner: lazy.New(func() (*IdempotencyKeysCleaner, error) {
			return NewIdempotencyKeysCleaner(
				idempotencyKeys.MustLoad(),
				clock.MustLoad(),
				DefaultIdempotencyKeysRetention,
				logger.MustLoad(),
			), nil
		}),
		Redis:         redisProvider(ctx, logger),
		MessageBroker: pulsarMessageBrokerProvider(logger),
		Clock:         clock,
		Metrics:       metrics,
		Logger:        logger,
		prometheus:    prometheus,
	}
}

// IsMessageBrokerConfigured reports whether the message broker address is set, the broker is optional
func (i *InfrastructureContainer) IsMessageBrokerConfigured() bool {
	address := env.Must(env.ParseOptional[*string]("PULSAR_ADDRESS"))
	return address != nil
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if cmd.HandleAppPanic(ctx, i.Logger.MustLoad()) {
		defer os.Exit(1)
	}

	i.MessageBroker.IfLoaded(func(broker *pulsar.MessageBroker) { broker.Close() })
	i.Redis.IfLoaded(func(client *redis.Client) { client.Close(ctx) })
	i.DB.IfLoaded(func(db sql.Database) { db.Close(ctx) })
}

func prometheusProvider() lazy.Loader[metric.PrometheusMetrics] {
	return lazy.New(func() (metric.PrometheusMetrics, error) {
		return metric.NewPrometheus(metricsNamespace), nil
	})
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevel, err := env.Parse[string]("LOG_LEVEL")
		if err != nil {
			return log.New(log.LevelInfo), nil
		}

		return log.New(log.ParseLevel(logLevel)), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithRequestIDLogging(logger.MustLoad()),
		), nil
	})
}

func authProviderProvider() lazy.Loader[pkgauth.Provider[auth.Principal]] {
	return lazy.New(func() (pkgauth.Provider[auth.Principal], error) {
		publicKey, err := auth.ParsePublicKey(env.Must(env.Parse[string]("IDENTITY_JWT_PUBLIC_KEY")))
		if err != nil {
			panic(fmt.Errorf("parse identity public key: %w", err))
		}

		issuer := env.Must(env.ParseOptional[*string]("IDENTITY_JWT_ISSUER"))
		config := auth.ProviderConfig{
			PublicKey: publicKey,
			Issuer:    "",
		}
		if issuer != nil {
			config.Issuer = *issuer
		}

		return auth.NewProvider(config), nil
	})
}

func sqlDatabaseProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[sql.Database] {
	return lazy.New(func() (sql.Database, error) {
		sqlConfig := sql.Config{
			DSN: sql.DSN{
				User:     env.Must(env.Parse[string]("SQL_USER")),
				Password: env.Must(env.Parse[string]("SQL_PASSWORD")),
				Address:  env.Must(env.Parse[string]("SQL_ADDRESS")),
				Database: env.Must(env.Parse[string]("SQL_DATABASE")),
			},
			MaxOpenConnections: env.Must(env.Parse[int]("SQL_MAX_OPEN_CONNECTIONS")),
			MaxIdleConnections: env.Must(env.Parse[int]("SQL_MAX_IDLE_CONNECTIONS")),
			ConnectionTimeout:  0,
		}
		sqlConnTimeout := env.Must(env.ParseOptional[*time.Duration]("SQL_CONNECTION_TIMEOUT"))
		if sqlConnTimeout != nil {
			sqlConfig.ConnectionTimeout = *sqlConnTimeout
		}

		db, err := sql.NewDatabase(sqlConfig, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open sql connection: %w", err))
		}

		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[sql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func idempotencyKeysProvider(
	db lazy.Loader[sql.Client],
	dbMigrations lazy.Loader[SQLMigrations],
) lazy.Loader[idk.Storage] {
	return lazy.New(func() (idk.Storage, error) {
		dbMigrations.MustLoad().MustRegister(StaticMigrations(sql.IdempotencyKeyMigrations()))
		return sql.NewIdempotencyKeyStorage(db.MustLoad()), nil
	})
}

func redisProvider(
	ctx context.Context,
	logger lazy.Loader[log.Logger],
) lazy.Loader[*redis.Client] {
	return lazy.New(func() (*redis.Client, error) {
		config := redis.Config{
			Address:           env.Must(env.Parse[string]("REDIS_ADDRESS")),
			Password:          "",
			DB:                0,
			ConnectionTimeout: 0,
		}
		if password := env.Must(env.ParseOptional[*string]("REDIS_PASSWORD")); password != nil {
			config.Password = *password
		}
		if db := env.Must(env.ParseOptional[*int]("REDIS_DB")); db != nil {
			config.DB = *db
		}

		client, err := redis.NewClient(ctx, config, logger.MustLoad())
		if err != nil {
			panic(fmt.Errorf("open redis connection: %w", err))
		}

		return client, nil
	})
}

func httpServerProvider(
	prometheus lazy.Loader[metric.PrometheusMetrics],
	observer lazy.Loader[observability.Observer],
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Server] {
	authProvider := authProviderProvider()
	return lazy.New(func() (http.Server, error) {
		address := http.DefaultServerAddress
		if customAddress := env.Must(env.ParseOptional[*string]("HTTP_ADDRESS")); customAddress != nil {
			address = *customAddress
		}

		var allowedOrigins []string
		if origins := env.Must(env.ParseOptional[*string]("CORS_ALLOWED_ORIGINS")); origins != nil {
			allowedOrigins = env.Must(env.ParseList[string]("CORS_ALLOWED_ORIGINS", ","))
		}

		return http.NewServer(
			address,
			http.WithCORS(allowedOrigins),
			http.WithHealthCheck(nil),
			http.WithMetricsHandler(prometheus.MustLoad().HTTPHandler()),
			http.WithObservability(
				observer.MustLoad(),
				http.RequestIDHeaderExtractor(http.RequestIDHeader),
				http.RequestIDRandomUUIDExtractor(),
			),
			http.WithMetrics(prometheus.MustLoad()),
			http.WithLogging(logger.MustLoad()),
			http.WithAuth(authProvider.MustLoad(), commonhttp.AuthCredentialsProviders()...),
		), nil
	})
}

func httpClientFactoryProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[metric.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[HTTPClientFactory] {
	return lazy.New(func() (HTTPClientFactory, error) {
		return NewHTTPClientFactory(
			http.WithRequestObservability(observer.MustLoad()),
			http.WithRequestMetrics(metrics.MustLoad()),
			http.WithRequestLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}

func pulsarMessageBrokerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[*pulsar.MessageBroker] {
	return lazy.New(func() (*pulsar.MessageBroker, error) {
		config := pulsar.Config{
			Address:           env.Must(env.Parse[string]("PULSAR_ADDRESS")),
			ConnectionTimeout: 0,
		}
		connTimeout := env.Must(env.ParseOptional[*time.Duration]("PULSAR_CONNECTION_TIMEOUT"))
		if connTimeout != nil {
			config.ConnectionTimeout = *connTimeout
		}

		messageBroker, err := pulsar.NewMessageBroker(config, logger.MustLoad().WithField("component", "pulsar"))
		if err != nil {
			panic(fmt.Errorf("open pulsar connection: %w", err))
		}

		return messageBroker, nil
	})
}
