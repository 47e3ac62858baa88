package logaudit

import (
	"ecertify/api/src/database"
	"ecertify/api/src/model"

	"gorm.io/gorm"
)

type LogAuditRepository interface {
	CreateLogEntry(entry model.LogAuditEntry) error
	GetLogEntries(page Page) ([]model.LogAuditEntry, error)
	GetLogEntriesByService(service string, page Page) ([]model.LogAuditEntry, error)
	GetLogEntriesByLevel(level string, page Page) ([]model.LogAuditEntry, error)
}

type logAuditRepository struct {
	db *gorm.DB
}

func NewLogAuditRepository() LogAuditRepository {
	return &logAuditRepository{
		db: database.GetDatabaseConnection(),
	}
}

func NewLogAuditRepositoryWithDB(db *gorm.DB) LogAuditRepository {
	return &logAuditRepository{db: db}
}

func (r *logAuditRepository) CreateLogEntry(entry model.LogAuditEntry) error {
	return r.db.Create(&entry).Error
}

func (r *logAuditRepository) GetLogEntries(page Page) ([]model.LogAuditEntry, error) {
	return r.find(r.db, page)
}

func (r *logAuditRepository) GetLogEntriesByService(service string, page Page) ([]model.LogAuditEntry, error) {
	return r.find(r.db.Where("service = ?", service), page)
}

func (r *logAuditRepository) GetLogEntriesByLevel(level string, page Page) ([]model.LogAuditEntry, error) {
	return r.find(r.db.Where("level = ?", level), page)
}

func (r *logAuditRepository) find(query *gorm.DB, page Page) ([]model.LogAuditEntry, error) {
	var entries []model.LogAuditEntry
	err := query.Order("timestamp DESC").Order("id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&entries).Error
	return entries, err
}
