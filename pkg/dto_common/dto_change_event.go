package dtocommon

import (
	"encoding/json"

	"ecertify/pkg/utilities"
	"ecertify/pkg/utilities/timeutil"
)

// ChangeEventDto is the durable copy of a store mutation published to the message broker.
type ChangeEventDto struct {
	EventId    string           `json:"event_id"`
	Table      string           `json:"table"`
	Operation  string           `json:"operation"`
	EntityId   int              `json:"entity_id"`
	Payload    json.RawMessage  `json:"payload"`
	OccurredAt timeutil.TimeUTC `json:"occurred_at"`
}

func (d ChangeEventDto) Serialize() ([]byte, error) {
	return utilities.Serialize[ChangeEventDto](d)
}
