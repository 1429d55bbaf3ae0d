package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/klwxsrx/docscan-portal/pkg/log"
)

const (
	migrationLock          = "perform_migration_lock"
	migrationTransactionID = "migration"
	querySeparator         = ";\n"

	migrationTableDDL = `
		create table if not exists migration (
			id text primary key
		)
	`
)

type (
	Migration struct {
		ID  string
		SQL string
	}

	Migrator struct {
		db     TxClient
		logger log.Logger
	}
)

func NewMigrator(db TxClient, logger log.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

// FSMigrations reads every file of the directory as a migration, the file name is the migration id
func FSMigrations(migrations fs.ReadDirFS) ([]Migration, error) {
	entries, err := migrations.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	result := make([]Migration, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		content, err := fs.ReadFile(migrations, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}

		result = append(result, Migration{
			ID:  entry.Name(),
			SQL: string(content),
		})
	}

	return result, nil
}

// Execute applies not yet performed migrations ordered by id within one locked transaction
func (m *Migrator) Execute(ctx context.Context, migrations ...Migration) error {
	sorted := make([]Migration, len(migrations))
	copy(sorted, migrations)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	client := NewClient(m.db, migrationTransactionID)
	return NewTransaction(m.db, migrationTransactionID).Execute(ctx, func(ctx context.Context) error {
		_, err := client.ExecContext(ctx, migrationTableDDL)
		if err != nil {
			return fmt.Errorf("create migration table: %w", err)
		}

		var performedIDs []string
		err = client.SelectContext(ctx, &performedIDs, "select id from migration")
		if err != nil {
			return fmt.Errorf("get performed migrations: %w", err)
		}

		performed := make(map[string]struct{}, len(performedIDs))
		for _, id := range performedIDs {
			performed[id] = struct{}{}
		}

		for _, migration := range sorted {
			if _, ok := performed[migration.ID]; ok {
				continue
			}

			err = m.perform(ctx, client, migration)
			if err != nil {
				return fmt.Errorf("migration %s failed: %w", migration.ID, err)
			}
			m.logger.WithField("migrationID", migration.ID).Info(ctx, "migration executed successfully")
		}

		return nil
	}, migrationLock)
}

func (m *Migrator) perform(ctx context.Context, client Client, migration Migration) error {
	if strings.TrimSpace(migration.SQL) == "" {
		return errors.New("empty migration")
	}

	_, err := client.ExecContext(ctx, "insert into migration (id) values ($1)", migration.ID)
	if err != nil {
		return fmt.Errorf("create migration record: %w", err)
	}

	for _, query := range strings.Split(migration.SQL, querySeparator) {
		if strings.TrimSpace(query) == "" {
			continue
		}

		_, err = client.ExecContext(ctx, query)
		if err != nil {
			return err
		}
	}

	return nil
}
