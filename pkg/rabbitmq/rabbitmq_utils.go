package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"ecertify/pkg/logger"
	"ecertify/pkg/utilities"

	amqp "github.com/rabbitmq/amqp091-go"
)

func ConnectToRabbitmq(ctx context.Context, host, user, password string) (*amqp.Connection, error) {
	var conn *amqp.Connection
	queueLogger := logger.Default()
	connectionString := fmt.Sprintf("amqp://%s:%s@%s/", user, password, host)

	attempt := 0
	_, err := utilities.Retry(ctx,
		utilities.Backoff{Attempts: 7, Initial: time.Second, Max: 32 * time.Second},
		nil,
		func() error {
			attempt++
			c, err := amqp.Dial(connectionString)
			if err != nil {
				queueLogger.Warnf("Attempt %d to reach %s failed: %v", attempt, host, err)
				return err
			}
			conn = c
			return nil
		})

	return conn, err
}
