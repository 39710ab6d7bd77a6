package events

import "time"

const PeriodCreatedTopic = "proyek.period.lifecycle.v1"

type PeriodCreatedEvent struct {
	EventType  string    `json:"event_type"`
	PeriodID   string    `json:"period_id"`
	ProjectID  string    `json:"project_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	OccurredAt time.Time `json:"occurred_at"`
}
