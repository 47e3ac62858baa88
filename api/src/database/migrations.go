package database

import (
	"ecertify/api/src/model"
	"ecertify/pkg/logger"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	migrationLogger := logger.Default()
	migrationLogger.Info("Running migrations for tables... ")

	err := db.AutoMigrate(
		&model.Institute{},
		&model.Student{},
		&model.Certificate{},
		&model.AccessGrant{},
		&model.AccessLog{},
		&model.TransferRequest{},
		&model.OutboxEvent{},
		&model.LedgerAnchor{},
		&model.LogAuditEntry{},
	)
	if err != nil {
		migrationLogger.Error(err, "Migrating database failed")
		return err
	}

	migrationLogger.Info("All tables created (or already exist).")
	return nil
}
