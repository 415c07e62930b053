package changelog

import (
	"encoding/json"
	"time"
)

// ChangeRecord is one row of the audit log: a create/update/destroy of
// a tracked entity with a serialized before/after diff. The log is
// written by database triggers; this system only reads it.
type ChangeRecord struct {
	ID        int             `json:"id"`
	ItemType  string          `json:"item_type"`
	ItemID    int             `json:"item_id"`
	Event     string          `json:"event"`
	Actor     string          `json:"actor,omitempty"`
	Diff      json.RawMessage `json:"diff,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Event kinds mirrored from the trigger.
const (
	EventCreate  = "create"
	EventUpdate  = "update"
	EventDestroy = "destroy"
)

// Entry is a record plus its one-line human summary.
type Entry struct {
	ChangeRecord
	Summary string `json:"summary"`
}
