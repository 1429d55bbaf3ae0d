package account

import (
	"github.com/klwxsrx/docscan-portal/internal/account/api"
	"github.com/klwxsrx/docscan-portal/internal/account/app/identity"
	"github.com/klwxsrx/docscan-portal/internal/account/app/service"
	"github.com/klwxsrx/docscan-portal/internal/account/infra/http"
	infraidentity "github.com/klwxsrx/docscan-portal/internal/account/infra/identity"
	"github.com/klwxsrx/docscan-portal/internal/account/infra/sql"
	commoncmd "github.com/klwxsrx/docscan-portal/internal/pkg/cmd"
	commonhttp "github.com/klwxsrx/docscan-portal/internal/pkg/http"
	"github.com/klwxsrx/docscan-portal/pkg/env"
	pkghttp "github.com/klwxsrx/docscan-portal/pkg/http"
	pkglazy "github.com/klwxsrx/docscan-portal/pkg/lazy"
	pkgpersistence "github.com/klwxsrx/docscan-portal/pkg/persistence"
	pkgsql "github.com/klwxsrx/docscan-portal/pkg/sql"
	pkgtime "github.com/klwxsrx/docscan-portal/pkg/time"
)

type DependencyContainer struct {
	API               pkglazy.Loader[api.API]
	ProfileService    pkglazy.Loader[*service.ProfileService]
	GetProfileHandler pkglazy.Loader[pkghttp.Handler]
}

func NewDependencyContainer(
	db pkglazy.Loader[pkgsql.Client],
	dbTransaction pkglazy.Loader[pkgpersistence.Transaction],
	dbMigrations pkglazy.Loader[commoncmd.SQLMigrations],
	httpClients pkglazy.Loader[commoncmd.HTTPClientFactory],
	clock pkglazy.Loader[pkgtime.Clock],
) *DependencyContainer {
	sqlContainer := sql.NewDependencyContainer(db, dbMigrations)
	identityService := identityServiceProvider(httpClients)

	profileService := pkglazy.New(func() (*service.ProfileService, error) {
		return service.NewProfileService(
			identityService.MustLoad(),
			dbTransaction.MustLoad(),
			sqlContainer.MustLoad().ProfileRepo.MustLoad(),
			clock.MustLoad(),
		), nil
	})

	return &DependencyContainer{
		API: pkglazy.New(func() (api.API, error) {
			return profileService.MustLoad(), nil
		}),
		ProfileService: profileService,
		GetProfileHandler: pkglazy.New(func() (pkghttp.Handler, error) {
			return http.NewGetProfileHandler(profileService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.GetProfileHandler.MustLoad())
}

func identityServiceProvider(
	httpClients pkglazy.Loader[commoncmd.HTTPClientFactory],
) pkglazy.Loader[identity.Service] {
	return pkglazy.New(func() (identity.Service, error) {
		secretKey := env.Must(env.Parse[string]("IDENTITY_SECRET_KEY"))
		return infraidentity.NewService(
			httpClients.MustLoad().MustInitClient(
				commonhttp.DestinationIdentityService,
				pkghttp.WithAuthToken(secretKey),
			),
		), nil
	})
}
