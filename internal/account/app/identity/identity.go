//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Service=Service"
package identity

import (
	"context"
	"errors"
)

var ErrUserNotFound = errors.New("identity user not found")

type (
	User struct {
		SubjectID string
		Email     string
		FirstName *string
		LastName  *string
	}

	// Service reads user attributes from the identity provider
	Service interface {
		GetUser(ctx context.Context, subjectID string) (*User, error)
	}
)
