package http

import (
	"net/http"
	"strings"

	"github.com/klwxsrx/docscan-portal/pkg/auth"
)

type CredentialsProvider func(*http.Request) (auth.Credentials, bool)

func WithAuth[T auth.Principal](provider auth.Provider[T], credentialsProviders ...CredentialsProvider) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var credentials auth.Credentials
			var ok bool
			for _, credentialsProvider := range credentialsProviders {
				credentials, ok = credentialsProvider(r)
				if ok {
					break
				}
			}
			if !ok {
				r = r.WithContext(auth.WithAuthentication(r.Context(), auth.Anonymous[T]()))
				handler.ServeHTTP(w, r)
				return
			}

			authentication, err := provider.Authenticate(r.Context(), credentials)
			if err != nil {
				writeHandlerResult(w, r, http.StatusInternalServerError, err)
				return
			}

			r = r.WithContext(auth.WithAuthentication(r.Context(), authentication))
			handler.ServeHTTP(w, r)
		})
	})
}

func WithAuthenticationRequirement() ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			isAuthenticated, err := auth.IsAuthenticated(r.Context())
			if err != nil {
				writeHandlerResult(w, r, http.StatusInternalServerError, err)
				return
			}
			if !isAuthenticated {
				writeHandlerResult(w, r, http.StatusUnauthorized, auth.ErrUnauthenticated)
				return
			}

			handler.ServeHTTP(w, r)
		})
	})
}

func BearerCredentials() CredentialsProvider {
	const prefix = "bearer "
	return func(r *http.Request) (auth.Credentials, bool) {
		header := r.Header.Get("Authorization")
		if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
			return "", false
		}

		token := strings.TrimSpace(header[len(prefix):])
		return auth.Credentials(token), token != ""
	}
}

func CookieCredentials(name string) CredentialsProvider {
	return func(r *http.Request) (auth.Credentials, bool) {
		cookie, err := r.Cookie(name)
		if err != nil || cookie.Value == "" {
			return "", false
		}
		return auth.Credentials(cookie.Value), true
	}
}

func writeHandlerResult(w http.ResponseWriter, r *http.Request, httpCode int, err error) {
	meta := getHandlerMetadata(r.Context())
	meta.Code = httpCode
	meta.Error = err

	w.WriteHeader(httpCode)
}
