package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/klwxsrx/docscan-portal/internal/account/api"
	pkghttp "github.com/klwxsrx/docscan-portal/pkg/http"
)

type (
	ProfileGetter interface {
		GetCurrent(ctx context.Context) (*api.Profile, error)
	}

	getProfileHandler struct {
		profiles ProfileGetter
	}
)

func NewGetProfileHandler(profiles ProfileGetter) pkghttp.Handler {
	return getProfileHandler{profiles: profiles}
}

func (h getProfileHandler) Method() string {
	return http.MethodGet
}

func (h getProfileHandler) Path() string {
	return "/api/account/profile"
}

func (h getProfileHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	profile, err := h.profiles.GetCurrent(r.Context())
	if errors.Is(err, api.ErrUnauthenticated) {
		w.SetStatusCode(http.StatusUnauthorized)
		return nil
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(profileOut{
		SubjectID:          profile.SubjectID,
		Email:              profile.Email,
		FirstName:          profile.FirstName,
		LastName:           profile.LastName,
		SubscriptionTier:   profile.SubscriptionTier,
		SubscriptionStatus: profile.SubscriptionStatus,
		RenewsAt:           profile.RenewsAt,
		EndsAt:             profile.EndsAt,
	})
	return nil
}

type profileOut struct {
	SubjectID          string     `json:"subjectId"`
	Email              string     `json:"email"`
	FirstName          *string    `json:"firstName,omitempty"`
	LastName           *string    `json:"lastName,omitempty"`
	SubscriptionTier   string     `json:"subscriptionTier"`
	SubscriptionStatus string     `json:"subscriptionStatus"`
	RenewsAt           *time.Time `json:"renewsAt,omitempty"`
	EndsAt             *time.Time `json:"endsAt,omitempty"`
}
