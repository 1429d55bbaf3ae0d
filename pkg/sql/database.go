package sql

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver

	"github.com/klwxsrx/docscan-portal/pkg/log"
)

const defaultConnectionTimeout = 20 * time.Second

type (
	Config struct {
		DSN                DSN
		MaxOpenConnections int
		MaxIdleConnections int
		ConnectionTimeout  time.Duration
	}

	DSN struct {
		User     string
		Password string
		Address  string
		Database string
	}
)

func (d DSN) String() string {
	dsn := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Address,
		Path:     d.Database,
		RawQuery: "sslmode=disable",
	}
	return dsn.String()
}

type (
	Client interface {
		ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
		GetContext(ctx context.Context, dest any, query string, args ...any) error
		SelectContext(ctx context.Context, dest any, query string, args ...any) error
	}

	ClientTx interface {
		Client
		Commit() error
		Rollback() error
	}

	TxClient interface {
		Client
		Begin(ctx context.Context) (ClientTx, error)
	}

	Database interface {
		TxClient
		Close(ctx context.Context)
	}
)

type database struct {
	*sqlx.DB
	logger log.Logger
}

func NewDatabase(config Config, logger log.Logger) (Database, error) {
	if config.ConnectionTimeout <= 0 {
		config.ConnectionTimeout = defaultConnectionTimeout
	}

	db, err := openConnection(config)
	if err != nil {
		return nil, err
	}

	return WrapDatabase(db, logger), nil
}

// WrapDatabase is used to build a Database over an already opened connection, e.g. sqlmock in tests
func WrapDatabase(db *sqlx.DB, logger log.Logger) Database {
	enablePostgreSQLSquirrelPlaceholderFormat()
	return &database{
		DB:     db,
		logger: logger,
	}
}

func (d *database) Begin(ctx context.Context) (ClientTx, error) {
	tx, err := d.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (d *database) Close(ctx context.Context) {
	err := d.DB.Close()
	if err != nil {
		d.logger.WithError(err).Error(ctx, "failed to close sql database")
	}
}

func openConnection(config Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", config.DSN.String())
	if err != nil {
		return nil, fmt.Errorf("open connection: %w", err)
	}

	if config.MaxOpenConnections > 0 {
		db.SetMaxOpenConns(config.MaxOpenConnections)
	}
	if config.MaxIdleConnections > 0 {
		db.SetMaxIdleConns(config.MaxIdleConnections)
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = config.ConnectionTimeout / 4
	eb.MaxElapsedTime = config.ConnectionTimeout

	err = backoff.Retry(db.Ping, eb)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

var squirrelPlaceholderOnce = &sync.Once{}

func enablePostgreSQLSquirrelPlaceholderFormat() {
	squirrelPlaceholderOnce.Do(func() {
		sq.StatementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	})
}
