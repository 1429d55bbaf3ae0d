package cmd

import (
	"context"
	"fmt"

	"github.com/klwxsrx/docscan-portal/pkg/log"
	"github.com/klwxsrx/docscan-portal/pkg/sql"
)

type (
	MigrationSource func() ([]sql.Migration, error)

	// SQLMigrations applies the migrations of a module when the module registers its sources
	SQLMigrations interface {
		MustRegister(sources ...MigrationSource)
	}

	sqlMigrations struct {
		ctx    context.Context
		db     sql.TxClient
		logger log.Logger
	}
)

func NewSQLMigrations(
	ctx context.Context,
	db sql.TxClient,
	logger log.Logger,
) SQLMigrations {
	return &sqlMigrations{
		ctx:    ctx,
		db:     db,
		logger: logger,
	}
}

func StaticMigrations(migrations []sql.Migration) MigrationSource {
	return func() ([]sql.Migration, error) {
		return migrations, nil
	}
}

func (s *sqlMigrations) MustRegister(sources ...MigrationSource) {
	var migrations []sql.Migration
	for _, source := range sources {
		sourceMigrations, err := source()
		if err != nil {
			panic(fmt.Errorf("load migrations: %w", err))
		}
		migrations = append(migrations, sourceMigrations...)
	}
	if len(migrations) == 0 {
		return
	}

	err := sql.NewMigrator(s.db, s.logger).Execute(s.ctx, migrations...)
	if err != nil {
		panic(fmt.Errorf("execute migrations: %w", err))
	}
}
