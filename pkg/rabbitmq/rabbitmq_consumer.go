package rabbitmq

import (
	"context"
	"fmt"
	"sync"

	"ecertify/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

type ConsumerAlias string

var (
	ConsumerRegistry map[ConsumerAlias]IRabbitmqConsumer
	onceConsumer     sync.Once
)

// GetConsumer returns nil when the alias is unknown or the registry was never initialized.
func GetConsumer(alias ConsumerAlias) IRabbitmqConsumer {
	return ConsumerRegistry[alias]
}

func InitializeConsumerRegistry(conn *amqp.Connection, consumerConfig []RabbitmqConsumerConfig) {
	onceConsumer.Do(func() {
		ConsumerRegistry = make(map[ConsumerAlias]IRabbitmqConsumer)

		for _, consumer := range consumerConfig {
			channel, err := conn.Channel()
			if err != nil {
				logger.Default().Panicf(err, "Could not obtain channel for consumer %s", consumer.ConsumerAlias)
			}

			ConsumerRegistry[consumer.ConsumerAlias] = NewConsumer(
				channel,
				consumer.QueueName,
				consumer.ConsumerTag,
			)
		}
	})
}

// ConsumeChannel is the part of *amqp.Channel a consumer needs.
type ConsumeChannel interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Cancel(consumer string, noWait bool) error
}

type RabbitmqConsumer struct {
	Channel     ConsumeChannel
	QueueName   string
	ConsumerTag string
}

type IRabbitmqConsumer interface {
	StartConsuming(ctx context.Context, handler func(amqp.Delivery)) error
}

func NewConsumer(ch ConsumeChannel, queueName, consumerTag string) *RabbitmqConsumer {
	return &RabbitmqConsumer{
		Channel:     ch,
		QueueName:   queueName,
		ConsumerTag: consumerTag,
	}
}

// StartConsuming blocks, handing every delivery to handler, until ctx is done or the
// delivery channel closes. A panicking handler loses only the current message.
func (rc *RabbitmqConsumer) StartConsuming(ctx context.Context, handler func(amqp.Delivery)) error {
	msgs, err := rc.Channel.Consume(
		rc.QueueName,   // queue
		rc.ConsumerTag, // consumer
		true,           // auto-ack
		false,          // exclusive
		false,          // no-local
		false,          // no-wait
		nil,            // args
	)
	if err != nil {
		return fmt.Errorf("register consumer %s on %s: %w", rc.ConsumerTag, rc.QueueName, err)
	}

	// delivery lines stay off the sink so consumed log messages are not published again
	consumerLogger := logger.Default().WithoutSink()
	consumerLogger.Infof("Waiting for messages in queue: %s", rc.QueueName)

	for {
		select {
		case <-ctx.Done():
			if err := rc.Channel.Cancel(rc.ConsumerTag, false); err != nil {
				consumerLogger.Warnf("[%s] could not cancel consumer %s: %v", rc.QueueName, rc.ConsumerTag, err)
			}
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel for %s closed", rc.QueueName)
			}
			consumerLogger.Debugf("[%s] %s", rc.QueueName, d.Body)
			rc.handle(consumerLogger, d, handler)
		}
	}
}

func (rc *RabbitmqConsumer) handle(consumerLogger *logger.Logger, d amqp.Delivery, handler func(amqp.Delivery)) {
	defer func() {
		if r := recover(); r != nil {
			consumerLogger.Errorf(
				nil,
				"[%s] Recovered from panic for consumer: %s, %v",
				rc.QueueName,
				rc.ConsumerTag,
				r,
			)
		}
	}()

	handler(d)
}
