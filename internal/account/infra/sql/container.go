package sql

import (
	sqlaccount "github.com/klwxsrx/docscan-portal/data/sql/account"
	"github.com/klwxsrx/docscan-portal/internal/account/domain"
	commoncmd "github.com/klwxsrx/docscan-portal/internal/pkg/cmd"
	pkglazy "github.com/klwxsrx/docscan-portal/pkg/lazy"
	pkgsql "github.com/klwxsrx/docscan-portal/pkg/sql"
)

type DependencyContainer struct {
	ProfileRepo pkglazy.Loader[domain.ProfileRepo]
}

func NewDependencyContainer(
	db pkglazy.Loader[pkgsql.Client],
	dbMigrations pkglazy.Loader[commoncmd.SQLMigrations],
) pkglazy.Loader[*DependencyContainer] {
	return pkglazy.New(func() (*DependencyContainer, error) {
		dbMigrations.MustLoad().MustRegister(sqlaccount.Migrations)
		return &DependencyContainer{
			ProfileRepo: profileRepoProvider(db),
		}, nil
	})
}

func profileRepoProvider(
	db pkglazy.Loader[pkgsql.Client],
) pkglazy.Loader[domain.ProfileRepo] {
	return pkglazy.New(func() (domain.ProfileRepo, error) {
		return NewProfileRepo(db.MustLoad()), nil
	})
}
