package events

import "time"

const StateSyncedTopic = "proyek.sync.v1"

type StateSyncedEvent struct {
	EventType  string    `json:"event_type"`
	DocumentID string    `json:"document_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
