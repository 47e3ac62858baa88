package outbox

import (
	"encoding/json"
	"time"

	"ecertify/api/src/database"
	"ecertify/api/src/model"
	"ecertify/api/src/realtime"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxRetries = 5

type OutboxRepository interface {
	WithTx(tx *gorm.DB) OutboxRepository
	GetEvent(eventId string) (model.OutboxEvent, error)
	RecordChange(e realtime.Event) (string, error)
	GetUnprocessedEvents(limit int) ([]model.OutboxEvent, error)
	MarkEventAsProcessed(eventId string) error
	UpdateRetryValue(eventId string) error
}

type outboxRepository struct {
	db *gorm.DB
}

func NewRepo() OutboxRepository {
	return &outboxRepository{db: database.GetDatabaseConnection()}
}

func NewRepoWithDB(db *gorm.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (or *outboxRepository) WithTx(tx *gorm.DB) OutboxRepository {
	return &outboxRepository{db: tx}
}

func (or *outboxRepository) GetEvent(eventId string) (model.OutboxEvent, error) {
	var event model.OutboxEvent
	result := or.db.First(&event, "event_id = ?", eventId)
	return event, result.Error
}

// RecordChange stores a durable copy of the event. Callers run it in the same
// transaction as the row change it describes.
func (or *outboxRepository) RecordChange(e realtime.Event) (string, error) {
	eventId, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(e.NewRow)
	if err != nil {
		return "", err
	}

	result := or.db.Create(&model.OutboxEvent{
		EventId:     eventId.String(),
		SourceTable: e.Table,
		Operation:   string(e.Operation),
		EntityId:    e.EntityId(),
		Payload:     string(payload),
		CreatedAt:   e.OccurredAt,
	})

	return eventId.String(), result.Error
}

func (or *outboxRepository) GetUnprocessedEvents(limit int) ([]model.OutboxEvent, error) {
	var events []model.OutboxEvent
	result := or.db.
		Where("processed = ?", false).
		Order("id ASC").
		Limit(limit).
		Find(&events)
	return events, result.Error
}

func (or *outboxRepository) MarkEventAsProcessed(eventId string) error {
	now := time.Now().UTC()
	return or.db.Model(&model.OutboxEvent{}).
		Where("event_id = ?", eventId).
		Updates(map[string]any{"processed": true, "processed_at": &now}).Error
}

func (or *outboxRepository) UpdateRetryValue(eventId string) error {
	res, err := or.GetEvent(eventId)
	if err != nil {
		return err
	}

	err = or.db.Model(&model.OutboxEvent{}).
		Where("event_id = ?", eventId).
		Update("retry", res.Retry+1).Error
	if err != nil || res.Retry+1 < maxRetries {
		return err
	}

	// parked, should be looked into manually
	return or.MarkEventAsProcessed(eventId)
}
