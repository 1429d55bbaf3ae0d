package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/docscan-portal/internal/billing/domain"
)

func TestParsePlanTiers(t *testing.T) {
	tiers, err := domain.ParsePlanTiers(" Plus Monthly=plus, Pro Yearly = pro ,")
	require.NoError(t, err)
	assert.Equal(t, domain.PlanTiers{"Plus Monthly": "plus", "Pro Yearly": "pro"}, tiers)

	_, err = domain.ParsePlanTiers("Plus Monthly")
	assert.Error(t, err)
}

func TestSubscriptionEvent_Tier(t *testing.T) {
	tiers := domain.PlanTiers{"Plus Monthly": "plus"}
	tests := []struct {
		name     string
		event    domain.SubscriptionEvent
		expected string
	}{
		{
			name:     "mapped_label",
			event:    domain.SubscriptionEvent{Name: domain.EventSubscriptionCreated, PlanLabel: "Plus Monthly"},
			expected: "plus",
		},
		{
			name:     "unknown_label_lowercased",
			event:    domain.SubscriptionEvent{Name: domain.EventSubscriptionUpdated, PlanLabel: "Team"},
			expected: "team",
		},
		{
			name:     "expired_falls_back_to_free",
			event:    domain.SubscriptionEvent{Name: domain.EventSubscriptionExpired, PlanLabel: "Plus Monthly"},
			expected: domain.TierFree,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.Tier(tiers))
		})
	}
}

func TestIsHandledEvent(t *testing.T) {
	assert.True(t, domain.IsHandledEvent(domain.EventSubscriptionPaused))
	assert.False(t, domain.IsHandledEvent("order_created"))
}
