package model

import (
	"time"

	dtocommon "ecertify/pkg/dto_common"
	"ecertify/pkg/utilities/timeutil"
)

type OutboxEvent struct {
	Id          int    `gorm:"primaryKey;autoIncrement"`
	EventId     string `gorm:"uniqueIndex;not null"`
	SourceTable string `gorm:"not null"`
	Operation   string `gorm:"not null"`
	EntityId    int
	Payload     string `gorm:"type:text"`
	Retry       int
	Processed   bool `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

func (oe OutboxEvent) MapToChangeEventDto() dtocommon.ChangeEventDto {
	return dtocommon.ChangeEventDto{
		EventId:    oe.EventId,
		Table:      oe.SourceTable,
		Operation:  oe.Operation,
		EntityId:   oe.EntityId,
		Payload:    []byte(oe.Payload),
		OccurredAt: timeutil.TimeUTC{T: oe.CreatedAt.UTC().Unix()},
	}
}
