package database

import (
	"fmt"
	"sync"

	"ecertify/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverSqlite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	dbConn *gorm.DB
	dbMu   sync.RWMutex
)

type gormLogWriter struct {
	l *logger.Logger
}

func (w gormLogWriter) Printf(format string, args ...interface{}) {
	w.l.Debugf(format, args...)
}

func Open(driver, connectionString string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(connectionString)
	case DriverSqlite, "":
		dialector = sqlite.Open(connectionString)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(gormLogWriter{l: logger.Default()}, gormlogger.Config{
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
}

func InitializeDatabaseConnection(driver, connectionString string) error {
	db, err := Open(driver, connectionString)
	if err != nil {
		return err
	}

	if driver != DriverPostgres {
		// sqlite allows a single writer
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	SetDatabaseConnection(db)
	return nil
}

func SetDatabaseConnection(db *gorm.DB) {
	dbMu.Lock()
	defer dbMu.Unlock()
	dbConn = db
}

func GetDatabaseConnection() *gorm.DB {
	dbMu.RLock()
	defer dbMu.RUnlock()
	if dbConn == nil {
		panic("Database not initialized: call InitializeDatabaseConnection() first")
	}
	return dbConn
}
