package rabbitmq

import (
	"fmt"

	logger_message "ecertify/pkg/utilities/logger"
	"ecertify/pkg/utilities/timeutil"

	"github.com/rs/zerolog"
)

func CreateRabbitmqLoggerSink(publisher IRabbitmqPublisher, service string) func(string, zerolog.Level, timeutil.TimeUTC) {
	return func(msg string, level zerolog.Level, timestamp timeutil.TimeUTC) {
		loggerMessage := logger_message.LoggerMessage{
			Level:     level.String(),
			Message:   msg,
			Service:   service,
			Timestamp: timestamp,
		}

		err := publisher.Publish(loggerMessage)
		if err != nil {
			// the logger would recurse into this sink
			fmt.Printf("Failed to publish log message to RabbitMQ: %v\n", err)
		}
	}
}
