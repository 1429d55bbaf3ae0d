package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	Name = "billing"

	TierFree = "free"

	EventSubscriptionCreated   = "subscription_created"
	EventSubscriptionUpdated   = "subscription_updated"
	EventSubscriptionResumed   = "subscription_resumed"
	EventSubscriptionCancelled = "subscription_cancelled"
	EventSubscriptionExpired   = "subscription_expired"
	EventSubscriptionPaused    = "subscription_paused"
	EventSubscriptionUnpaused  = "subscription_unpaused"
)

var ErrMalformedEvent = errors.New("malformed subscription event")

var handledEvents = map[string]struct{}{
	EventSubscriptionCreated:   {},
	EventSubscriptionUpdated:   {},
	EventSubscriptionResumed:   {},
	EventSubscriptionCancelled: {},
	EventSubscriptionExpired:   {},
	EventSubscriptionPaused:    {},
	EventSubscriptionUnpaused:  {},
}

type (
	SubscriptionEvent struct {
		Name           string
		SubjectID      string
		SubscriptionID string
		Status         string
		PlanLabel      string
		CustomerID     *string
		UserEmail      string
		RenewsAt       *time.Time
		EndsAt         *time.Time
	}

	// PlanTiers maps payment processor plan labels onto subscription tiers
	PlanTiers map[string]string
)

func IsHandledEvent(name string) bool {
	_, ok := handledEvents[name]
	return ok
}

func (e SubscriptionEvent) Validate() error {
	if e.SubscriptionID == "" {
		return fmt.Errorf("%w: subscription id is empty", ErrMalformedEvent)
	}
	if e.SubjectID == "" {
		return fmt.Errorf("%w: subject id is empty", ErrMalformedEvent)
	}
	return nil
}

// Tier returns the tier granted by the event, an expired subscription grants nothing above free
func (e SubscriptionEvent) Tier(tiers PlanTiers) string {
	if e.Name == EventSubscriptionExpired {
		return TierFree
	}
	return tiers.Tier(e.PlanLabel)
}

// Tier falls back to the lowercase label for unknown plans
func (t PlanTiers) Tier(label string) string {
	if tier, ok := t[label]; ok {
		return tier
	}
	return strings.ToLower(strings.TrimSpace(label))
}

// ParsePlanTiers parses "Plus Monthly=plus,Pro Yearly=pro"
func ParsePlanTiers(value string) (PlanTiers, error) {
	result := make(PlanTiers)
	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		label, tier, ok := strings.Cut(pair, "=")
		label, tier = strings.TrimSpace(label), strings.TrimSpace(tier)
		if !ok || label == "" || tier == "" {
			return nil, fmt.Errorf("invalid plan tier mapping %q", pair)
		}
		result[label] = tier
	}
	return result, nil
}
