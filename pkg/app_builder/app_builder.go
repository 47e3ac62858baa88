package appbuilder

import (
	"context"
	"fmt"
	"os"

	"ecertify/pkg/logger"
	"ecertify/pkg/rabbitmq"
	"ecertify/pkg/rest"
	"ecertify/pkg/utilities"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type AppConfig interface {
	GetLoggerConfig() logger.LoggerConfig
	GetRabbitmqConfig() rabbitmq.RabbitmqConfig
	GetRestApiPort() uint16
}

type AppBuilder[T utilities.JsonConfigObj[U], U AppConfig] struct {
	Logger         *logger.Logger
	Config         U
	Conn           *amqp.Connection
	workerServices []rabbitmq.WorkerService
	shutdownHooks  []func()
	middleware     []rest.Middleware
	routes         []rest.Route
	engine         *gin.Engine
}

func New[T utilities.JsonConfigObj[U], U AppConfig]() *AppBuilder[T, U] {
	return &AppBuilder[T, U]{}
}

func (a *AppBuilder[T, U]) InitLogger(loggerArgs logger.GlobalLoggerConfig) *AppBuilder[T, U] {
	logger.InitDefaultLogger(loggerArgs)
	a.Logger = logger.Default()
	a.Logger.Info("Logger initialized")

	return a
}

// ResolveEnvironment loads a .env file when one exists. Variables already set in the
// process environment win.
func (a *AppBuilder[T, U]) ResolveEnvironment() *AppBuilder[T, U] {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}

	if err := godotenv.Load(envFile); err != nil {
		a.Logger.Infof("No environment file loaded from %s", envFile)
		return a
	}

	a.Logger.Infof("Environment loaded from %s", envFile)
	return a
}

func (a *AppBuilder[T, U]) LoadConfig(filePath string) *AppBuilder[T, U] {
	a.Logger.Infof("Preparing to load config from %s ...", filePath)
	config, err := utilities.ReadConfig[T, U](filePath)
	if err != nil {
		a.Logger.Panic(err, "Failed to load config")
	}

	a.Config = config
	logger.ApplyConfig(config.GetLoggerConfig())
	a.Logger.Info("Config successfully loaded.")
	return a
}

func (a *AppBuilder[T, U]) WithOption(option func(a *AppBuilder[T, U])) *AppBuilder[T, U] {
	option(a)
	return a
}

func (a *AppBuilder[T, U]) RabbitmqEnabled() bool {
	return a.Config.GetRabbitmqConfig().Enabled
}

func (a *AppBuilder[T, U]) InitRabbitmqConnection() *AppBuilder[T, U] {
	if !a.RabbitmqEnabled() {
		a.Logger.Warn("Rabbitmq disabled in config, skipping connection")
		return a
	}

	a.Logger.Info("Preparing to connect to Rabbitmq server...")
	rabbitmqConfig := a.Config.GetRabbitmqConfig()
	conn, err := rabbitmq.ConnectToRabbitmq(
		context.Background(),
		rabbitmqConfig.Host,
		rabbitmqConfig.User,
		rabbitmqConfig.Password,
	)
	if err != nil {
		a.Logger.Panic(err, "Could not connect to Rabbitmq")
	}

	a.Conn = conn
	a.Logger.Info("Connection with Rabbitmq server established")

	return a
}

func (a *AppBuilder[T, U]) InitRabbitmqRegistries() *AppBuilder[T, U] {
	if a.Conn == nil {
		return a
	}

	a.Logger.Info("Initializing Rabbitmq registries from config")
	rabbitmqConf := a.Config.GetRabbitmqConfig()

	rabbitmq.InitializeConsumerRegistry(a.Conn, rabbitmqConf.ConsumersConfig)
	rabbitmq.InitializePublisherRegistry(a.Conn, rabbitmqConf.PublishersConfig)
	a.Logger.Info("Successfully initialized Rabbitmq registries from config")

	return a
}

// AddWorkerServices ignores nil entries so optional workers can be passed inline.
func (a *AppBuilder[T, U]) AddWorkerServices(workerServices ...rabbitmq.WorkerService) *AppBuilder[T, U] {
	a.Logger.Info("Adding Worker Services to Application...")
	for _, ws := range workerServices {
		if ws != nil {
			a.workerServices = append(a.workerServices, ws)
		}
	}
	return a
}

// OnShutdown registers cleanup run once the REST API and the workers have stopped,
// in reverse order of registration.
func (a *AppBuilder[T, U]) OnShutdown(hooks ...func()) *AppBuilder[T, U] {
	a.shutdownHooks = append(a.shutdownHooks, hooks...)
	return a
}

func (a *AppBuilder[T, U]) AddGinMiddleware(middleware ...rest.Middleware) *AppBuilder[T, U] {
	a.middleware = append(a.middleware, middleware...)
	return a
}

func (a *AppBuilder[T, U]) AddGinRoutes(routes ...rest.Route) *AppBuilder[T, U] {
	a.Logger.Info("Adding Gin REST API routes to Application...")
	a.routes = append(a.routes, routes...)
	return a
}

func (a *AppBuilder[T, U]) AddSwagger() *AppBuilder[T, U] {
	a.Logger.Info("Adding SwaggerUI...")
	a.routes = append(a.routes, rest.NewRoute(
		rest.GET,
		"swagger",
		"*any",
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	))

	return a
}

func (a *AppBuilder[T, U]) InitGinRouter() *AppBuilder[T, U] {
	a.Logger.Info("Initializing Gin Router...")
	router := gin.Default()

	for _, m := range a.middleware {
		if m.Group == "*" {
			router.Use(m.Handler)
		}
	}

	groups := map[string]*gin.RouterGroup{}
	a.Logger.Info("Registering REST API routes...")
	for _, r := range a.routes {
		if _, exists := groups[r.Group]; !exists {
			group := router.Group("/" + r.Group)
			for _, m := range a.middleware {
				if m.Group == r.Group {
					group.Use(m.Handler)
				}
			}
			groups[r.Group] = group
		}

		for _, bad := range rest.Register(groups[r.Group], r) {
			a.Logger.Warnf("Unrecognized HTTP method: %d", bad.Method)
		}
	}

	a.engine = router
	a.Logger.Info("Successfully registered REST API routes.")
	return a
}

func (a *AppBuilder[T, U]) Engine() *gin.Engine {
	return a.engine
}

func (a *AppBuilder[T, U]) Build() *Application {
	return &Application{
		Logger:         a.Logger,
		Addr:           fmt.Sprintf("0.0.0.0:%d", a.Config.GetRestApiPort()),
		Conn:           a.Conn,
		WorkerServices: a.workerServices,
		ShutdownHooks:  a.shutdownHooks,
		Engine:         a.engine,
	}
}
