package message_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/docscan-portal/internal/bridge/app/revocation"
	"github.com/klwxsrx/docscan-portal/internal/bridge/app/service"
	"github.com/klwxsrx/docscan-portal/internal/bridge/domain"
	"github.com/klwxsrx/docscan-portal/internal/bridge/infra/memory"
	bridgemessage "github.com/klwxsrx/docscan-portal/internal/bridge/infra/message"
	"github.com/klwxsrx/docscan-portal/pkg/message"
	messagemock "github.com/klwxsrx/docscan-portal/pkg/message/mock"
	"github.com/klwxsrx/docscan-portal/pkg/metric"
)

func TestNotifier_SessionsRevoked_DeliveredToOtherInstance(t *testing.T) {
	var produced *message.Message
	producer := messagemock.NewProducer(gomock.NewController(t))
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *message.Message) error {
			produced = msg
			return nil
		})

	err := bridgemessage.NewNotifier(producer, "instance-a").SessionsRevoked(context.Background(), "user_abc")
	require.NoError(t, err)
	require.NotNil(t, produced)
	assert.Equal(t, bridgemessage.TopicSessionsRevoked, produced.Topic)
	assert.Equal(t, "user_abc", produced.Key)

	tests := []struct {
		name            string
		instanceID      string
		expectedRevoked bool
	}{
		{
			name:            "other_instance_drops_sessions",
			instanceID:      "instance-b",
			expectedRevoked: true,
		},
		{
			name:            "origin_instance_skips_own_message",
			instanceID:      "instance-a",
			expectedRevoked: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewSessionStore()
			session := domain.NewSession("sb_token", domain.Profile{SubjectID: "user_abc"}, time.Now())
			require.NoError(t, store.Put(context.Background(), session))

			invalidator := service.NewInvalidator(store, revocation.NewNoopNotifier(), metric.NewStub())
			handler := bridgemessage.NewSessionsRevokedHandler(invalidator, tt.instanceID)
			require.NoError(t, handler(context.Background(), produced))

			_, err := store.Get(context.Background(), session.Token)
			if tt.expectedRevoked {
				assert.ErrorIs(t, err, domain.ErrSessionNotFound)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSessionsRevokedHandler_ReturnsErrorForMalformedPayload(t *testing.T) {
	invalidator := service.NewInvalidator(memory.NewSessionStore(), revocation.NewNoopNotifier(), metric.NewStub())
	handler := bridgemessage.NewSessionsRevokedHandler(invalidator, "instance-a")

	err := handler(context.Background(), &message.Message{Topic: bridgemessage.TopicSessionsRevoked, Payload: []byte("{")})
	assert.Error(t, err)
}
