package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/klwxsrx/docscan-portal/internal/billing/domain"
)

type (
	webhookPayload struct {
		Meta struct {
			EventName  string `json:"event_name"`
			CustomData struct {
				SubjectID string `json:"subject_id"`
			} `json:"custom_data"`
		} `json:"meta"`
		Data struct {
			ID         flexibleString `json:"id"`
			Attributes struct {
				Status      string          `json:"status"`
				VariantName string          `json:"variant_name"`
				CustomerID  *flexibleString `json:"customer_id"`
				UserEmail   string          `json:"user_email"`
				RenewsAt    *time.Time      `json:"renews_at"`
				EndsAt      *time.Time      `json:"ends_at"`
			} `json:"attributes"`
		} `json:"data"`
	}

	// flexibleString accepts both string and numeric identifiers
	flexibleString string
)

func (s *flexibleString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var value string
		err := json.Unmarshal(data, &value)
		if err != nil {
			return err
		}
		*s = flexibleString(value)
		return nil
	}

	var number json.Number
	err := json.Unmarshal(data, &number)
	if err != nil {
		return err
	}
	*s = flexibleString(number.String())
	return nil
}

func decodeEvent(body []byte) (*domain.SubscriptionEvent, error) {
	var payload webhookPayload
	err := json.Unmarshal(body, &payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedEvent, err)
	}
	if payload.Meta.EventName == "" {
		return nil, fmt.Errorf("%w: event name is empty", domain.ErrMalformedEvent)
	}

	attributes := payload.Data.Attributes
	event := &domain.SubscriptionEvent{
		Name:           payload.Meta.EventName,
		SubjectID:      strings.TrimSpace(payload.Meta.CustomData.SubjectID),
		SubscriptionID: string(payload.Data.ID),
		Status:         attributes.Status,
		PlanLabel:      attributes.VariantName,
		CustomerID:     nil,
		UserEmail:      attributes.UserEmail,
		RenewsAt:       attributes.RenewsAt,
		EndsAt:         attributes.EndsAt,
	}
	if attributes.CustomerID != nil && *attributes.CustomerID != "" {
		customerID := string(*attributes.CustomerID)
		event.CustomerID = &customerID
	}

	return event, nil
}
