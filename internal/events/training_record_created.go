package events

import "time"

const TrainingRecordCreatedTopic = "compliance.training-record.lifecycle.v1"

type TrainingRecordCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	RecordID     string    `json:"record_id"`
	EmployeeID   string    `json:"employee_id"`
	CompanyID    string    `json:"company_id"`
	TrainingType string    `json:"training_type"`
	OccurredAt   time.Time `json:"occurred_at"`
}
