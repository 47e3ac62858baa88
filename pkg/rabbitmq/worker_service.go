package rabbitmq

import "context"

// WorkerService is a long running background task started next to the REST API.
// StartService blocks until ctx is cancelled or the worker fails.
type WorkerService interface {
	GetServiceName() string
	StartService(ctx context.Context) error
}
