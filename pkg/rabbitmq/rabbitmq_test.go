package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"ecertify/pkg/logger"
	"ecertify/pkg/rabbitmq"
	logger_message "ecertify/pkg/utilities/logger"
	"ecertify/pkg/utilities/timeutil"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{
		Args: []logger.LoggerArg{{Key: "service", Value: "rabbitmq-test"}},
	})
}

type mockChannel struct {
	mu        sync.Mutex
	published []amqp.Publishing
	keys      []string
	consumed  chan amqp.Delivery
	cancelled bool
}

func newMockChannel() *mockChannel {
	return &mockChannel{consumed: make(chan amqp.Delivery, 10)}
}

func (m *mockChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.published = append(m.published, msg)
	m.keys = append(m.keys, exchange+"/"+key)
	return nil
}

func (m *mockChannel) Consume(string, string, bool, bool, bool, bool, amqp.Table) (<-chan amqp.Delivery, error) {
	return m.consumed, nil
}

func (m *mockChannel) Cancel(string, bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelled = true
	return nil
}

type serializableStub struct {
	data string
	err  error
}

func (s serializableStub) Serialize() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte(s.data), nil
}

func TestRabbitmqConfigConvertToDomain(t *testing.T) {
	config := rabbitmq.RabbimqConfigJson{
		Enabled:  true,
		User:     "testuser",
		Password: "testpass",
		PublishersConfig: []rabbitmq.RabbitmqPublishersConfigJson{
			{PublisherAlias: "ChangeEventsPublisher", Exchange: "ecertify", RoutingKey: "changes"},
		},
		ConsumersConfig: []rabbitmq.RabbitmqConsumerConfigJson{
			{ConsumerAlias: "LogConsumer", ConsumerTag: "api-logs", QueueName: "logs"},
		},
	}

	result := config.ConvertToDomain()

	assert.True(t, result.Enabled)
	assert.Equal(t, "rabbitmq:5672", result.Host)
	assert.Equal(t, "testuser", result.User)
	require.Len(t, result.PublishersConfig, 1)
	assert.Equal(t, rabbitmq.PublisherAlias("ChangeEventsPublisher"), result.PublishersConfig[0].PublisherAlias)
	require.Len(t, result.ConsumersConfig, 1)
	assert.Equal(t, rabbitmq.ConsumerAlias("LogConsumer"), result.ConsumersConfig[0].ConsumerAlias)
	assert.Equal(t, "logs", result.ConsumersConfig[0].QueueName)
}

func TestPublisherPublish(t *testing.T) {
	ch := newMockChannel()
	publisher := rabbitmq.NewPublisher(ch, "ecertify", "changes")

	require.NoError(t, publisher.Publish(serializableStub{data: `{"table":"certificates"}`}))

	require.Len(t, ch.published, 1)
	assert.Equal(t, "application/json", ch.published[0].ContentType)
	assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)
	assert.JSONEq(t, `{"table":"certificates"}`, string(ch.published[0].Body))
	assert.Equal(t, []string{"ecertify/changes"}, ch.keys)
}

func TestPublisherSerializeError(t *testing.T) {
	ch := newMockChannel()
	publisher := rabbitmq.NewPublisher(ch, "ecertify", "changes")

	err := publisher.Publish(serializableStub{err: errors.New("bad payload")})

	assert.EqualError(t, err, "bad payload")
	assert.Empty(t, ch.published)
}

func TestConsumerStopsOnContextCancel(t *testing.T) {
	ch := newMockChannel()
	consumer := rabbitmq.NewConsumer(ch, "logs", "api-logs")

	received := make(chan string, 2)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- consumer.StartConsuming(ctx, func(d amqp.Delivery) {
			if string(d.Body) == "panic" {
				panic("handler exploded")
			}
			received <- string(d.Body)
		})
	}()

	ch.consumed <- amqp.Delivery{Body: []byte("panic")}
	ch.consumed <- amqp.Delivery{Body: []byte("hello")}

	select {
	case msg := <-received:
		assert.Equal(t, "hello", msg)
	case <-time.After(2 * time.Second):
		t.Fatal("message not delivered")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop")
	}
	assert.True(t, ch.cancelled)
}

func TestConsumerKeepsDeliveriesOffTheLoggerSink(t *testing.T) {
	var (
		mu        sync.Mutex
		forwarded []string
	)
	logger.AddSinkToLoggerInstance(logger.Default(), func(msg string, _ zerolog.Level, _ timeutil.TimeUTC) {
		mu.Lock()
		defer mu.Unlock()
		forwarded = append(forwarded, msg)
	})
	t.Cleanup(func() { logger.AddSinkToLoggerInstance(logger.Default(), nil) })
	require.LessOrEqual(t, logger.Default().Level(), zerolog.DebugLevel)

	ch := newMockChannel()
	consumer := rabbitmq.NewConsumer(ch, "logs", "api-logs")
	received := make(chan string, 2)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- consumer.StartConsuming(ctx, func(d amqp.Delivery) {
			if string(d.Body) == "panic" {
				panic("handler exploded")
			}
			received <- string(d.Body)
		})
	}()

	ch.consumed <- amqp.Delivery{Body: []byte("panic")}
	ch.consumed <- amqp.Delivery{Body: []byte(`{"message":"hello from api"}`)}
	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("message not delivered")
	}
	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	assert.Empty(t, forwarded)
}

func TestLoggerSinkPublishesMessage(t *testing.T) {
	ch := newMockChannel()
	sink := rabbitmq.CreateRabbitmqLoggerSink(rabbitmq.NewPublisher(ch, "ecertify", "logs"), "api")

	sink("certificate approved", zerolog.InfoLevel, timeutil.TimeUTC{T: 1700000000})

	require.Len(t, ch.published, 1)
	var msg logger_message.LoggerMessage
	require.NoError(t, json.Unmarshal(ch.published[0].Body, &msg))
	assert.Equal(t, "info", msg.Level)
	assert.Equal(t, "certificate approved", msg.Message)
	assert.Equal(t, "api", msg.Service)
	assert.Equal(t, int64(1700000000), msg.Timestamp.T)
}
