package database

import (
	appbuilder "ecertify/pkg/app_builder"
	"ecertify/pkg/utilities"
)

type DatabaseConfig interface {
	appbuilder.AppConfig
	GetDatabaseConfig() Config
}

type ConfigJson struct {
	Driver           string `json:"driver"`
	ConnectionString string `json:"connection_string"`
	RunMigrations    bool   `json:"run_migrations"`
	SeedDevData      bool   `json:"seed_dev_data"`
	MaxRetries       int    `json:"max_retries"`
	RetryBackoffMs   int    `json:"retry_backoff_ms"`
}

type Config struct {
	Driver           string
	ConnectionString string
	RunMigrations    bool
	SeedDevData      bool
	MaxRetries       int
	RetryBackoffMs   int
}

func (cj ConfigJson) ConvertToDomain() Config {
	return Config{
		Driver:           utilities.Ternary(cj.Driver == "", DriverSqlite, cj.Driver),
		ConnectionString: utilities.EnvOr("DATABASE_CONNECTION_STRING", cj.ConnectionString),
		RunMigrations:    cj.RunMigrations,
		SeedDevData:      cj.SeedDevData,
		MaxRetries:       utilities.Ternary(cj.MaxRetries <= 0, 3, cj.MaxRetries),
		RetryBackoffMs:   utilities.Ternary(cj.RetryBackoffMs <= 0, 100, cj.RetryBackoffMs),
	}
}

func ConnectToDatabase[T utilities.JsonConfigObj[U], U DatabaseConfig](a *appbuilder.AppBuilder[T, U]) {
	a.Logger.Info("Establishing connection to database...")
	conf := a.Config.GetDatabaseConfig()

	if err := InitializeDatabaseConnection(conf.Driver, conf.ConnectionString); err != nil {
		a.Logger.Panic(err, "Cannot establish database connection")
	}

	a.Logger.Infof("Database connection established successfully (%s).", conf.Driver)
}

func RunMigrations(migrateDatabase bool) {
	if !migrateDatabase {
		return
	}
	if err := AutoMigrate(GetDatabaseConnection()); err != nil {
		panic(err)
	}
}
