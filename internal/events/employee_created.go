package events

import "time"

const EmployeeCreatedTopic = "proyek.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	ProjectID  string    `json:"project_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
