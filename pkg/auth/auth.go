package auth

import (
	"context"
	"errors"
)

var ErrUnauthenticated = errors.New("not authenticated")

type (
	Provider[T Principal] interface {
		Authenticate(context.Context, Credentials) (Authentication[T], error)
	}

	// Credentials is the raw secret presented by the caller, e.g. a bearer token
	Credentials string

	Principal interface {
		SubjectID() string
	}

	Authentication[T Principal] struct {
		principal *T
	}
)

func Authenticated[T Principal](principal T) Authentication[T] {
	return Authentication[T]{principal: &principal}
}

func Anonymous[T Principal]() Authentication[T] {
	return Authentication[T]{principal: nil}
}

func (a Authentication[T]) IsAuthenticated() bool {
	return a.principal != nil
}

func (a Authentication[T]) Principal() (T, bool) {
	if a.principal == nil {
		var empty T
		return empty, false
	}

	return *a.principal, true
}
