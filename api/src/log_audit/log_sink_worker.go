package logaudit

import (
	"context"
	"encoding/json"
	"os"

	"ecertify/pkg/logger"
	"ecertify/pkg/rabbitmq"
	logger_message "ecertify/pkg/utilities/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	LogConsumerAlias = rabbitmq.ConsumerAlias("LogConsumer")
)

// LogSinkWorker drains the log queue into the audit table. It logs to stdout only, otherwise
// its own lines would be forwarded back into the queue it consumes.
type LogSinkWorker struct {
	service  LogAuditService
	consumer rabbitmq.IRabbitmqConsumer
	logger   *logger.Logger
}

// NewLogSinkWorker returns nil when no log consumer is configured.
func NewLogSinkWorker() rabbitmq.WorkerService {
	consumer := rabbitmq.GetConsumer(LogConsumerAlias)
	if consumer == nil {
		logger.Default().Warnf("No consumer registered as %s, log sink disabled", LogConsumerAlias)
		return nil
	}
	return NewLogSinkWorkerWith(consumer, NewLogAuditService(NewLogAuditRepository()))
}

func NewLogSinkWorkerWith(consumer rabbitmq.IRabbitmqConsumer, service LogAuditService) *LogSinkWorker {
	return &LogSinkWorker{
		service:  service,
		consumer: consumer,
		logger:   logger.New().WithOutput(os.Stdout),
	}
}

func (w *LogSinkWorker) GetServiceName() string {
	return string(LogConsumerAlias)
}

func (w *LogSinkWorker) StartService(ctx context.Context) error {
	w.logger.Info("Starting API Log Sink Worker")
	return w.consumer.StartConsuming(ctx, w.handle)
}

func (w *LogSinkWorker) handle(d amqp.Delivery) {
	var logMessage logger_message.LoggerMessage
	if err := json.Unmarshal(d.Body, &logMessage); err != nil {
		w.logger.Errorf(err, "Failed to unmarshal log message")
		return
	}

	if err := w.service.ProcessLogMessage(logMessage); err != nil {
		w.logger.Errorf(err, "Failed to save log message to database")
		return
	}
	w.logger.Debugf("Saved %s log line from %s", logMessage.Level, logMessage.Service)
}
