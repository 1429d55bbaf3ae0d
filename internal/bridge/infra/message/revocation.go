package message

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/klwxsrx/docscan-portal/internal/bridge/app/revocation"
	"github.com/klwxsrx/docscan-portal/internal/bridge/app/service"
	"github.com/klwxsrx/docscan-portal/internal/bridge/domain"
	"github.com/klwxsrx/docscan-portal/pkg/message"
)

const TopicSessionsRevoked message.Topic = "bridge.sessions-revoked"

type sessionsRevokedPayload struct {
	SubjectID string `json:"subjectId"`
	Origin    string `json:"origin"`
}

type notifier struct {
	producer   message.Producer
	instanceID string
}

// NewNotifier publishes revocations tagged with instanceID, so the publishing instance can skip its own messages
func NewNotifier(producer message.Producer, instanceID string) revocation.Notifier {
	return notifier{
		producer:   producer,
		instanceID: instanceID,
	}
}

func (n notifier) SessionsRevoked(ctx context.Context, subjectID domain.SubjectID) error {
	payload, err := json.Marshal(sessionsRevokedPayload{
		SubjectID: string(subjectID),
		Origin:    n.instanceID,
	})
	if err != nil {
		return fmt.Errorf("encode sessions revoked payload: %w", err)
	}

	return n.producer.Produce(ctx, &message.Message{
		ID:      uuid.New(),
		Topic:   TopicSessionsRevoked,
		Key:     string(subjectID),
		Payload: payload,
	})
}

// NewSessionsRevokedHandler drops the local sessions of subjects revoked by other instances
func NewSessionsRevokedHandler(invalidator service.Invalidator, instanceID string) message.Handler {
	return func(ctx context.Context, msg *message.Message) error {
		var payload sessionsRevokedPayload
		err := json.Unmarshal(msg.Payload, &payload)
		if err != nil {
			return fmt.Errorf("decode sessions revoked payload: %w", err)
		}
		if payload.Origin == instanceID || payload.SubjectID == "" {
			return nil
		}

		return invalidator.HandleSessionsRevoked(ctx, domain.SubjectID(payload.SubjectID))
	}
}
