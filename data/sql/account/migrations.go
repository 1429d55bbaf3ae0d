package account

import (
	"embed"

	"github.com/klwxsrx/docscan-portal/pkg/sql"
)

//go:embed *.sql
var migrationFiles embed.FS

func Migrations() ([]sql.Migration, error) {
	return sql.FSMigrations(migrationFiles)
}
