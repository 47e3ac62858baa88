package logaudit

import (
	"strings"

	"ecertify/api/src/model"
	logger_message "ecertify/pkg/utilities/logger"
)

const (
	defaultServiceName = "api"
	DefaultPageLimit   = 50
	MaxPageLimit       = 1000
)

type Page struct {
	Limit  int
	Offset int
}

type LogAuditService interface {
	ProcessLogMessage(logMessage logger_message.LoggerMessage) error
	GetLogEntries(page Page) ([]model.LogAuditEntry, error)
	GetLogEntriesByService(service string, page Page) ([]model.LogAuditEntry, error)
	GetLogEntriesByLevel(level string, page Page) ([]model.LogAuditEntry, error)
}

type logAuditService struct {
	repository LogAuditRepository
}

func NewLogAuditService(repository LogAuditRepository) LogAuditService {
	return &logAuditService{
		repository: repository,
	}
}

// ProcessLogMessage stores one forwarded log line. Messages without a service are attributed to the api.
func (s *logAuditService) ProcessLogMessage(logMessage logger_message.LoggerMessage) error {
	service := strings.TrimSpace(logMessage.Service)
	if service == "" {
		service = defaultServiceName
	}

	return s.repository.CreateLogEntry(model.LogAuditEntry{
		Level:     strings.ToLower(logMessage.Level),
		Message:   logMessage.Message,
		Timestamp: logMessage.Timestamp.Time(),
		Service:   service,
	})
}

func (s *logAuditService) GetLogEntries(page Page) ([]model.LogAuditEntry, error) {
	return s.repository.GetLogEntries(page)
}

func (s *logAuditService) GetLogEntriesByService(service string, page Page) ([]model.LogAuditEntry, error) {
	return s.repository.GetLogEntriesByService(service, page)
}

func (s *logAuditService) GetLogEntriesByLevel(level string, page Page) ([]model.LogAuditEntry, error) {
	return s.repository.GetLogEntriesByLevel(strings.ToLower(level), page)
}
