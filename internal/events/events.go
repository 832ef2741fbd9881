package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"securereport/internal/domain"
)

// Event types published on the report stream.
const (
	TypeReportCreated       = "report.created"
	TypeReportStatusUpdated = "report.status.updated"
)

// Event is the envelope written to the stream.
type Event struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	ReportID  string          `json:"report_id"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

type ReportCreatedPayload struct {
	ReportID        string          `json:"report_id"`
	AnonymousUserID string          `json:"anonymous_user_id"`
	Category        domain.Category `json:"category"`
	CreatedAt       time.Time       `json:"created_at"`
}

type ReportStatusUpdatedPayload struct {
	ReportID  string        `json:"report_id"`
	OldStatus domain.Status `json:"old_status"`
	NewStatus domain.Status `json:"new_status"`
	ChangedAt time.Time     `json:"changed_at"`
}

func NewEvent(eventType, reportID string, payload any) (*Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		EventID:   uuid.NewString(),
		EventType: eventType,
		ReportID:  reportID,
		Payload:   raw,
		Timestamp: time.Now().UTC(),
	}, nil
}

func (e *Event) ToJSON() ([]byte, error) { return json.Marshal(e) }
