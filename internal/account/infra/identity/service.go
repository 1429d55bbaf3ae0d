package identity

import (
	"context"
	"fmt"
	"net/http"

	"github.com/klwxsrx/docscan-portal/internal/account/app/identity"
	pkghttp "github.com/klwxsrx/docscan-portal/pkg/http"
)

type service struct {
	httpClient pkghttp.Client
}

// NewService reads users from the identity provider backend API, the client is expected to carry the secret key
func NewService(httpClient pkghttp.Client) identity.Service {
	return service{httpClient: httpClient}
}

func (s service) GetUser(ctx context.Context, subjectID string) (*identity.User, error) {
	var out userOut
	resp, err := s.httpClient.NewRequest(ctx).
		SetPathParam("subjectID", subjectID).
		SetResult(&out).
		Get("/v1/users/{subjectID}")
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, identity.ErrUserNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get user: unexpected status %d", resp.StatusCode())
	}

	return &identity.User{
		SubjectID: subjectID,
		Email:     out.primaryEmail(),
		FirstName: out.FirstName,
		LastName:  out.LastName,
	}, nil
}

type (
	userOut struct {
		ID                    string            `json:"id"`
		PrimaryEmailAddressID string            `json:"primary_email_address_id"`
		EmailAddresses        []emailAddressOut `json:"email_addresses"`
		FirstName             *string           `json:"first_name"`
		LastName              *string           `json:"last_name"`
	}

	emailAddressOut struct {
		ID           string `json:"id"`
		EmailAddress string `json:"email_address"`
	}
)

func (u userOut) primaryEmail() string {
	for _, address := range u.EmailAddresses {
		if address.ID == u.PrimaryEmailAddressID {
			return address.EmailAddress
		}
	}
	if len(u.EmailAddresses) > 0 {
		return u.EmailAddresses[0].EmailAddress
	}
	return ""
}
