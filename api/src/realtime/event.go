package realtime

import "time"

type Operation string

const (
	OpInsert Operation = "insert"
	OpUpdate Operation = "update"
)

// Row is a stored entity that can describe itself for filter matching.
type Row interface {
	ChangeKeys() map[string]int
}

type Event struct {
	Table      string         `json:"table"`
	Operation  Operation      `json:"operation"`
	NewRow     Row            `json:"new_row"`
	Keys       map[string]int `json:"-"`
	OccurredAt time.Time      `json:"occurred_at"`
}

func NewEvent(table string, op Operation, row Row) Event {
	return Event{
		Table:      table,
		Operation:  op,
		NewRow:     row,
		Keys:       row.ChangeKeys(),
		OccurredAt: time.Now().UTC(),
	}
}

func (e Event) EntityId() int {
	return e.Keys["id"]
}

// Filter selects events of one table. An empty Column matches every row of the table.
type Filter struct {
	Table  string
	Column string
	Value  int
}

func (f Filter) Matches(e Event) bool {
	if f.Table != e.Table {
		return false
	}
	if f.Column == "" {
		return true
	}
	v, ok := e.Keys[f.Column]
	return ok && v == f.Value
}

// Publisher is the write side of the fan-out. Publish must not block.
type Publisher interface {
	Publish(e Event)
}
