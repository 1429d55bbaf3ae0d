package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	accountapi "github.com/klwxsrx/docscan-portal/internal/account/api"
	"github.com/klwxsrx/docscan-portal/internal/billing/domain"
	bridgeapi "github.com/klwxsrx/docscan-portal/internal/bridge/api"
	"github.com/klwxsrx/docscan-portal/pkg/idk"
	"github.com/klwxsrx/docscan-portal/pkg/log"
	"github.com/klwxsrx/docscan-portal/pkg/persistence"
)

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrMalformedEvent   = domain.ErrMalformedEvent
	ErrStorageFailure   = errors.New("billing storage failure")
)

type WebhookService struct {
	secret      []byte
	tiers       domain.PlanTiers
	transaction persistence.Transaction
	keys        idk.Storage
	accountAPI  accountapi.API
	bridgeAPI   bridgeapi.API
	logger      log.Logger
}

func NewWebhookService(
	secret string,
	tiers domain.PlanTiers,
	transaction persistence.Transaction,
	keys idk.Storage,
	accountAPI accountapi.API,
	bridgeAPI bridgeapi.API,
	logger log.Logger,
) *WebhookService {
	return &WebhookService{
		secret:      []byte(secret),
		tiers:       tiers,
		transaction: transaction,
		keys:        keys,
		accountAPI:  accountAPI,
		bridgeAPI:   bridgeAPI,
		logger:      logger,
	}
}

// Handle verifies the body signature before looking into the body, duplicate deliveries are acknowledged without changes
func (s *WebhookService) Handle(ctx context.Context, body []byte, signature string) error {
	if !s.isValidSignature(body, signature) {
		return ErrInvalidSignature
	}

	event, err := decodeEvent(body)
	if err != nil {
		return err
	}

	logger := s.logger.With(log.Fields{
		"event":          event.Name,
		"subscriptionID": event.SubscriptionID,
	})
	if !domain.IsHandledEvent(event.Name) {
		logger.Debug(ctx, "billing event ignored")
		return nil
	}

	err = event.Validate()
	if err != nil {
		return err
	}

	var duplicate bool
	err = s.transaction.Execute(ctx, func(ctx context.Context) error {
		err := s.keys.Insert(ctx, idk.KeyFromContent(body), event.SubscriptionID+":"+event.Name)
		if errors.Is(err, idk.ErrAlreadyInserted) {
			duplicate = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("insert idempotency key: %w", err)
		}

		return s.accountAPI.ApplySubscription(ctx, accountapi.SubscriptionChange{
			SubjectID:      event.SubjectID,
			Email:          event.UserEmail,
			SubscriptionID: event.SubscriptionID,
			Tier:           event.Tier(s.tiers),
			Status:         event.Status,
			CustomerID:     event.CustomerID,
			RenewsAt:       event.RenewsAt,
			EndsAt:         event.EndsAt,
		})
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	if duplicate {
		logger.Info(ctx, "duplicate billing event skipped")
	}

	// retried deliveries of an expiration repeat the revocation, it is idempotent
	if event.Name == domain.EventSubscriptionExpired {
		err = s.bridgeAPI.InvalidateSubjectSessions(ctx, event.SubjectID)
		if err != nil {
			return fmt.Errorf("%w: invalidate bridge sessions: %w", ErrStorageFailure, err)
		}
	}

	return nil
}

func (s *WebhookService) isValidSignature(body []byte, signature string) bool {
	if signature == "" || len(s.secret) == 0 {
		return false
	}

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, s.secret)
	_, _ = mac.Write(body)
	return hmac.Equal(mac.Sum(nil), provided)
}
