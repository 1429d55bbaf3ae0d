package message

import (
	"context"

	"github.com/klwxsrx/docscan-portal/pkg/log"
	"github.com/klwxsrx/docscan-portal/pkg/worker"
)

// NewListener handles consumed messages one by one until ctx is done or the consumer is closed,
// failed messages are negatively acknowledged for redelivery
func NewListener(consumer Consumer, handler Handler, logger log.Logger) worker.ContextJob {
	return func(ctx context.Context) error {
		defer consumer.Close()

		consumerLogger := logger.WithField("consumer", consumer.Name())
		messages := consumer.Messages()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case msg, ok := <-messages:
				if !ok {
					return nil
				}

				msgLogger := consumerLogger.With(log.Fields{
					"messageID": msg.Message.ID.String(),
					"topic":     string(msg.Message.Topic),
				})

				err := handler(msg.Context, &msg.Message)
				if err != nil {
					msgLogger.WithError(err).Error(msg.Context, "failed to handle message")
					consumer.Nack(msg)
					continue
				}

				msgLogger.Debug(msg.Context, "message handled")
				consumer.Ack(msg)
			}
		}
	}
}
