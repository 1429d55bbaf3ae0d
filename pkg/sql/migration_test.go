package sql_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/docscan-portal/pkg/log"
	pkgsql "github.com/klwxsrx/docscan-portal/pkg/sql"
)

func TestFSMigrations(t *testing.T) {
	migrations, err := pkgsql.FSMigrations(fstest.MapFS{
		"2024-01-01-001-create-profile.sql": {Data: []byte("create table profile (id uuid)")},
	})

	require.NoError(t, err)
	assert.Equal(t, []pkgsql.Migration{{
		ID:  "2024-01-01-001-create-profile.sql",
		SQL: "create table profile (id uuid)",
	}}, migrations)
}

func TestMigrator_Execute_SkipsPerformedMigrations(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectBegin()
	mock.ExpectExec("select pg_advisory_xact_lock").WithArgs(sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("create table if not exists migration").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("select id from migration").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("001.sql"))
	mock.ExpectExec("insert into migration").WithArgs("002.sql").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("create index").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("create index").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := pkgsql.NewMigrator(db, log.NewStub()).Execute(
		context.Background(),
		pkgsql.Migration{ID: "002.sql", SQL: "create index a on profile (id);\ncreate index b on profile (id)"},
		pkgsql.Migration{ID: "001.sql", SQL: "create table profile (id uuid)"},
	)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_Execute_RollsBackFailedMigration(t *testing.T) {
	db, mock := newMockDatabase(t)

	mock.ExpectBegin()
	mock.ExpectExec("select pg_advisory_xact_lock").WithArgs(sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("create table if not exists migration").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("select id from migration").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := pkgsql.NewMigrator(db, log.NewStub()).Execute(context.Background(), pkgsql.Migration{ID: "001.sql", SQL: " "})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
