package pulsar

import (
	"context"
	"fmt"
	"sync"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/google/uuid"

	"github.com/klwxsrx/docscan-portal/pkg/message"
)

type contextKey int

const pulsarMessageIDContextKey contextKey = iota

type messageConsumer struct {
	name   string
	pulsar pulsar.Consumer

	once     *sync.Once
	messages chan *message.ConsumerMessage
}

func newMessageConsumer(pulsarConsumer pulsar.Consumer, topic message.Topic) message.Consumer {
	return &messageConsumer{
		name:     fmt.Sprintf("%s/%s", pulsarConsumer.Subscription(), topic),
		pulsar:   pulsarConsumer,
		once:     &sync.Once{},
		messages: make(chan *message.ConsumerMessage),
	}
}

func (c *messageConsumer) Name() string {
	return c.name
}

func (c *messageConsumer) Messages() <-chan *message.ConsumerMessage {
	c.once.Do(func() {
		go c.forward()
	})
	return c.messages
}

func (c *messageConsumer) Ack(msg *message.ConsumerMessage) {
	if id, ok := msg.Context.Value(pulsarMessageIDContextKey).(pulsar.MessageID); ok {
		_ = c.pulsar.AckID(id)
	}
}

func (c *messageConsumer) Nack(msg *message.ConsumerMessage) {
	if id, ok := msg.Context.Value(pulsarMessageIDContextKey).(pulsar.MessageID); ok {
		c.pulsar.NackID(id)
	}
}

func (c *messageConsumer) Close() {
	c.pulsar.Close()
}

func (c *messageConsumer) forward() {
	defer close(c.messages)

	for msg := range c.pulsar.Chan() {
		messageID, err := uuid.Parse(msg.Properties()[messageIDPropertyName])
		if err != nil {
			// foreign messages without an id are dropped
			_ = c.pulsar.Ack(msg)
			continue
		}

		c.messages <- &message.ConsumerMessage{
			Context: context.WithValue(context.Background(), pulsarMessageIDContextKey, msg.ID()),
			Message: message.Message{
				ID:      messageID,
				Topic:   message.Topic(msg.Topic()),
				Key:     msg.Key(),
				Payload: msg.Payload(),
			},
		}
	}
}
