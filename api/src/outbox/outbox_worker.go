package outbox

import (
	"context"

	"ecertify/pkg/logger"
	"ecertify/pkg/rabbitmq"

	"github.com/robfig/cron"
)

const (
	outboxWorkerName = "OutboxCronWorker"
	PublisherAlias   = rabbitmq.PublisherAlias("ChangeEventsPublisher")
)

type OutboxWorker struct {
	publisher  rabbitmq.IRabbitmqPublisher
	repository OutboxRepository
	cron       *cron.Cron
	conf       Config
}

// NewOutboxWorker returns nil when no change-events publisher is registered,
// which is the case when rabbitmq is disabled.
func NewOutboxWorker(conf Config) rabbitmq.WorkerService {
	publisher := rabbitmq.GetPublisher(PublisherAlias)
	if publisher == nil {
		logger.Default().Warnf("No %s registered, %s is disabled", PublisherAlias, outboxWorkerName)
		return nil
	}
	return NewOutboxWorkerWith(publisher, NewRepo(), conf)
}

func NewOutboxWorkerWith(publisher rabbitmq.IRabbitmqPublisher, repository OutboxRepository, conf Config) *OutboxWorker {
	return &OutboxWorker{
		publisher:  publisher,
		repository: repository,
		cron:       cron.New(),
		conf:       conf,
	}
}

func (ow *OutboxWorker) GetServiceName() string {
	return outboxWorkerName
}

func (ow *OutboxWorker) StartService(ctx context.Context) error {
	err := ow.cron.AddFunc(ow.conf.Schedule, func() { ow.ProcessOutboxEvents() })
	if err != nil {
		logger.Default().Errorf(err, "Could not add function to %s", outboxWorkerName)
		return err
	}

	ow.cron.Start()
	<-ctx.Done()
	ow.cron.Stop()
	return nil
}

// ProcessOutboxEvents publishes one batch of unprocessed events and returns how many were published.
func (ow *OutboxWorker) ProcessOutboxEvents() int {
	outboxLogger := logger.Default()

	events, err := ow.repository.GetUnprocessedEvents(ow.conf.BatchSize)
	if err != nil {
		outboxLogger.Error(err, "Could not read events from database")
		return 0
	}

	published := 0
	for _, e := range events {
		if err := ow.publisher.Publish(e.MapToChangeEventDto()); err != nil {
			outboxLogger.Errorf(err, "Can't publish event %s to queue", e.EventId)
			if err := ow.repository.UpdateRetryValue(e.EventId); err != nil {
				outboxLogger.Errorf(err, "Could not update retry count of event %s", e.EventId)
			}
			continue
		}

		if err := ow.repository.MarkEventAsProcessed(e.EventId); err != nil {
			outboxLogger.Errorf(err, "Could not mark event %s as processed", e.EventId)
			continue
		}
		published++
	}

	if published > 0 {
		outboxLogger.Debugf("%s published %d events", outboxWorkerName, published)
	}
	return published
}
