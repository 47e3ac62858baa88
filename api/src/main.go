package main

import (
	"fmt"

	accessgrant "ecertify/api/src/access_grant"
	"ecertify/api/src/certificate"
	"ecertify/api/src/content"
	"ecertify/api/src/database"
	"ecertify/api/src/directory"
	"ecertify/api/src/docs"
	"ecertify/api/src/ledger"
	logaudit "ecertify/api/src/log_audit"
	"ecertify/api/src/middleware"
	"ecertify/api/src/outbox"
	"ecertify/api/src/realtime"
	"ecertify/api/src/transfer"
	appbuilder "ecertify/pkg/app_builder"
	"ecertify/pkg/logger"
	"ecertify/pkg/rabbitmq"
	"ecertify/pkg/rest"
	"ecertify/pkg/utilities"
)

const (
	serviceName        = "api"
	logPublisherAlias  = rabbitmq.PublisherAlias("LogPublisher")
	configFileLocation = "config.json"
)

type App = appbuilder.AppBuilder[ApiConfigJson, ApiConfig]

// @title           E-Certify API
// @version         1.0
// @description     Issue, approve, share and transfer academic certificates
// @host            localhost:9000
// @BasePath        /
func main() {
	var (
		hub          *realtime.Hub
		store        content.Store
		ledgerClient ledger.Client
		routes       []rest.Route
		anchorRepo   ledger.AnchorRepository
	)

	app := appbuilder.New[ApiConfigJson, ApiConfig]().
		InitLogger(logger.GlobalLoggerConfig{
			Args: []logger.LoggerArg{{Key: "service", Value: serviceName}},
		}).
		ResolveEnvironment().
		LoadConfig(configFileLocation).
		WithOption(func(a *App) {
			docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", a.Config.RestConf.Port)

			// ----- DATABASE + MIGRATIONS -----
			database.ConnectToDatabase(a)
			database.RunMigrations(a.Config.DatabaseConf.RunMigrations)
			if a.Config.DatabaseConf.SeedDevData {
				if err := database.SeedDevData(database.GetDatabaseConnection()); err != nil {
					a.Logger.Panic(err, "Seeding development data failed")
				}
			}
		}).
		WithOption(func(a *App) {
			// ----- DOMAIN SERVICES -----
			var err error
			store, err = content.NewStoreFromConfig(a.Config.ContentConf)
			utilities.FailOnError(err, "Cannot open content store")
			ledgerClient, err = ledger.NewClientFromConfig(a.Config.LedgerConf)
			utilities.FailOnError(err, "Cannot create ledger client")
			hub = realtime.NewHub(a.Config.RealtimeConf.SubscriberBuffer)
			a.OnShutdown(func() {
				if err := store.Close(); err != nil {
					a.Logger.Warnf("Closing content store failed: %v", err)
				}
			}, hub.Close)

			runner := database.NewTxRunnerFromConfig(database.GetDatabaseConnection(), a.Config.DatabaseConf)
			directoryService := directory.NewService(runner)
			certificateService := certificate.NewService(runner, store, hub)
			accessService := accessgrant.NewService(runner, store, hub, a.Config.AccessConf)
			transferService := transfer.NewService(runner, hub)
			anchorRepo = ledger.NewAnchorRepository()

			routes = append(routes, directory.NewHandler(directoryService).Routes()...)
			routes = append(routes, certificate.NewHandler(certificateService, directoryService).Routes()...)
			routes = append(routes, accessgrant.NewHandler(accessService, directoryService).Routes()...)
			routes = append(routes, transfer.NewHandler(transferService, directoryService).Routes()...)
			routes = append(routes, ledger.NewHandler(anchorRepo).Routes()...)
			routes = append(routes, content.NewHandler(store).Routes()...)
			routes = append(routes, logaudit.NewLogAuditHandler(
				logaudit.NewLogAuditService(logaudit.NewLogAuditRepository()),
			).Routes()...)
			routes = append(routes, realtime.NewHandler(hub, directoryService).
				WithHeartbeat(a.Config.RealtimeConf.Heartbeat).
				Routes()...)
		}).

		// ----- RABBITMQ -----
		InitRabbitmqConnection().
		InitRabbitmqRegistries().
		WithOption(func(a *App) {
			// ----- RABBITMQ LOGGING SINK -----
			if logPublisher := rabbitmq.GetPublisher(logPublisherAlias); logPublisher != nil {
				logger.AddSinkToLoggerInstance(logger.Default(), rabbitmq.CreateRabbitmqLoggerSink(logPublisher, serviceName))
			}
		})

	// ----- WORKERS -----
	app.AddWorkerServices(
		outbox.NewOutboxWorker(app.Config.OutboxConf),
		ledger.NewAnchorWorker(hub, ledgerClient, anchorRepo),
		logaudit.NewLogSinkWorker(),
	).
		AddGinMiddleware(
			rest.NewMiddleware("*", middleware.CORSMiddleware(app.Config.RestConf.AllowedOrigin)),
			rest.NewMiddleware("*", middleware.RequestLogger()),
			rest.NewMiddleware("v1", middleware.WalletAddressMiddleware()),
		).
		AddGinRoutes(routes...).
		AddSwagger().
		InitGinRouter().
		Build().
		Start()
}
