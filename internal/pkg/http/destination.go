package http

import (
	pkghttp "github.com/klwxsrx/docscan-portal/pkg/http"
)

const DestinationIdentityService pkghttp.Destination = "identity"
