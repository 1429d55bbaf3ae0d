package sql_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/docscan-portal/pkg/log"
	pkgsql "github.com/klwxsrx/docscan-portal/pkg/sql"
)

func newMockDatabase(t *testing.T) (pkgsql.Database, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return pkgsql.WrapDatabase(sqlx.NewDb(db, "sqlmock"), log.NewStub()), mock
}
