package http

import (
	pkghttp "github.com/klwxsrx/docscan-portal/pkg/http"
)

// SessionCookieName is the cookie the identity provider keeps its session token in
const SessionCookieName = "__session"

func AuthCredentialsProviders() []pkghttp.CredentialsProvider {
	return []pkghttp.CredentialsProvider{
		pkghttp.BearerCredentials(),
		pkghttp.CookieCredentials(SessionCookieName),
	}
}
