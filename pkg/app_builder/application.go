package appbuilder

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"ecertify/pkg/logger"
	"ecertify/pkg/rabbitmq"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type Application struct {
	Logger         *logger.Logger
	Addr           string
	Conn           *amqp.Connection
	WorkerServices []rabbitmq.WorkerService
	ShutdownHooks  []func()
	Engine         *gin.Engine
	// Listener, when set, is served instead of listening on Addr.
	Listener net.Listener
}

// Start runs until SIGINT or SIGTERM.
func (a *Application) Start() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		a.Logger.Fatal(err, "Application stopped with error")
	}
	a.Logger.Info("Application stopped")
}

// Run starts every worker service and the REST API and blocks until ctx is cancelled or
// one of them fails, then shuts the rest down.
func (a *Application) Run(ctx context.Context) error {
	a.Logger.Info("Starting Application runtime...")
	listener := a.Listener
	if listener == nil {
		var err error
		if listener, err = net.Listen("tcp", a.Addr); err != nil {
			return fmt.Errorf("listen on %s: %w", a.Addr, err)
		}
	}
	g, ctx := errgroup.WithContext(ctx)

	for _, ws := range a.WorkerServices {
		ws := ws
		a.Logger.Infof("Starting %s WorkerService", ws.GetServiceName())
		g.Go(func() error {
			return ws.StartService(ctx)
		})
	}

	// requests inherit ctx so long-lived streams end when the application stops
	server := &http.Server{
		Handler:     a.Engine,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	g.Go(func() error {
		a.Logger.Infof("REST API is now listening on: %s", listener.Addr())
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	for i := len(a.ShutdownHooks) - 1; i >= 0; i-- {
		a.ShutdownHooks[i]()
	}
	if a.Conn != nil {
		if cerr := a.Conn.Close(); cerr != nil {
			a.Logger.Warnf("Closing Rabbitmq connection failed: %v", cerr)
		}
	}
	return err
}
