package pulsar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/cenkalti/backoff/v4"

	"github.com/klwxsrx/docscan-portal/pkg/log"
	"github.com/klwxsrx/docscan-portal/pkg/message"
)

const (
	defaultConnectionTimeout = 20 * time.Second
	messageIDPropertyName    = "message_id"
)

type (
	Config struct {
		Address           string
		ConnectionTimeout time.Duration
	}

	ConsumptionType int

	ConsumerOptions struct {
		Topic            message.Topic
		SubscriptionName string
		ConsumptionType  ConsumptionType

		// Ephemeral subscriptions start at the latest message and are dropped together with the consumer
		Ephemeral bool
	}

	MessageBroker struct {
		client pulsar.Client

		producersMutex *sync.Mutex
		producers      map[message.Topic]pulsar.Producer
	}
)

const (
	ConsumptionTypeExclusive ConsumptionType = iota
	ConsumptionTypeFailover
	ConsumptionTypeShared
)

func NewMessageBroker(config Config, logger log.Logger) (*MessageBroker, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{
		URL:    fmt.Sprintf("pulsar://%s", config.Address),
		Logger: newLoggerAdapter(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("create pulsar client: %w", err)
	}

	broker := &MessageBroker{
		client:         client,
		producersMutex: &sync.Mutex{},
		producers:      make(map[message.Topic]pulsar.Producer),
	}

	connTimeout := defaultConnectionTimeout
	if config.ConnectionTimeout > 0 {
		connTimeout = config.ConnectionTimeout
	}
	err = broker.testCreateProducer(connTimeout)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	return broker, nil
}

func (b *MessageBroker) Produce(ctx context.Context, msg *message.Message) error {
	producer, err := b.producer(msg.Topic)
	if err != nil {
		return err
	}

	_, err = producer.Send(ctx, &pulsar.ProducerMessage{
		Payload:    msg.Payload,
		Key:        msg.Key,
		Properties: map[string]string{messageIDPropertyName: msg.ID.String()},
	})
	if err != nil {
		return fmt.Errorf("send message to %s: %w", msg.Topic, err)
	}

	return nil
}

func (b *MessageBroker) Consumer(opts ConsumerOptions) (message.Consumer, error) {
	consumerOpts := pulsar.ConsumerOptions{
		Topic:            string(opts.Topic),
		SubscriptionName: opts.SubscriptionName,
		Type:             consumptionType(opts.ConsumptionType),
	}
	if opts.Ephemeral {
		consumerOpts.SubscriptionMode = pulsar.NonDurable
		consumerOpts.SubscriptionInitialPosition = pulsar.SubscriptionPositionLatest
	}

	consumer, err := b.client.Subscribe(consumerOpts)
	if err != nil {
		return nil, fmt.Errorf("subscribe to topic %s by %s: %w", opts.Topic, opts.SubscriptionName, err)
	}

	return newMessageConsumer(consumer, opts.Topic), nil
}

func (b *MessageBroker) Close() {
	b.producersMutex.Lock()
	defer b.producersMutex.Unlock()

	for _, producer := range b.producers {
		producer.Close()
	}
	b.client.Close()
}

func (b *MessageBroker) producer(topic message.Topic) (pulsar.Producer, error) {
	b.producersMutex.Lock()
	defer b.producersMutex.Unlock()

	producer, ok := b.producers[topic]
	if ok {
		return producer, nil
	}

	producer, err := b.client.CreateProducer(pulsar.ProducerOptions{
		Topic: string(topic),
	})
	if err != nil {
		return nil, fmt.Errorf("create producer for topic %s: %w", topic, err)
	}

	b.producers[topic] = producer
	return producer, nil
}

func (b *MessageBroker) testCreateProducer(connTimeout time.Duration) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = connTimeout / 4
	eb.MaxElapsedTime = connTimeout

	return backoff.Retry(func() error {
		p, err := b.client.CreateProducer(pulsar.ProducerOptions{
			Topic: "non-persistent://public/default/test-topic",
		})
		if err == nil {
			p.Close()
		}
		return err
	}, eb)
}

func consumptionType(t ConsumptionType) pulsar.SubscriptionType {
	switch t {
	case ConsumptionTypeFailover:
		return pulsar.Failover
	case ConsumptionTypeShared:
		return pulsar.Shared
	default:
		return pulsar.Exclusive
	}
}
