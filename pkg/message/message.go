//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Producer=Producer,Consumer=Consumer"
package message

import (
	"context"

	"github.com/google/uuid"
)

type (
	Topic string

	Message struct {
		ID      uuid.UUID
		Topic   Topic
		Key     string
		Payload []byte
	}

	ConsumerMessage struct {
		Context context.Context //nolint:containedctx
		Message Message
	}

	Producer interface {
		Produce(ctx context.Context, msg *Message) error
	}

	Consumer interface {
		Name() string
		Messages() <-chan *ConsumerMessage
		Ack(*ConsumerMessage)
		Nack(*ConsumerMessage)
		Close()
	}

	Handler func(ctx context.Context, msg *Message) error
)
