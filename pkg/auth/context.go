package auth

import (
	"context"
	"errors"
)

const authenticationContextKey contextKey = iota

type (
	contextKey int

	contextAuthentication struct {
		isAuthenticated bool
		value           any
	}
)

var errAuthenticationNotFound = errors.New("authentication not found")

func WithAuthentication[T Principal](ctx context.Context, auth Authentication[T]) context.Context {
	return context.WithValue(ctx, authenticationContextKey, contextAuthentication{
		isAuthenticated: auth.IsAuthenticated(),
		value:           auth,
	})
}

func GetAuthentication[T Principal](ctx context.Context) (Authentication[T], bool) {
	stored, ok := ctx.Value(authenticationContextKey).(contextAuthentication)
	if !ok {
		return Anonymous[T](), false
	}

	auth, ok := stored.value.(Authentication[T])
	if !ok {
		return Anonymous[T](), false
	}

	return auth, true
}

// GetPrincipal returns ErrUnauthenticated when the context carries no authenticated principal of type T
func GetPrincipal[T Principal](ctx context.Context) (T, error) {
	auth, _ := GetAuthentication[T](ctx)
	principal, ok := auth.Principal()
	if !ok {
		return principal, ErrUnauthenticated
	}

	return principal, nil
}

func IsAuthenticated(ctx context.Context) (bool, error) {
	stored, ok := ctx.Value(authenticationContextKey).(contextAuthentication)
	if !ok {
		return false, errAuthenticationNotFound
	}

	return stored.isAuthenticated, nil
}
