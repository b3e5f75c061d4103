package memory

import (
	"time"

	"github.com/google/uuid"

	"talkReserve/internal/models"
)

// EventLog is the append-only record of domain events. Entries are
// never updated or removed.
type EventLog struct {
	entries []models.LogEntry
}

func NewEventLog() *EventLog {
	return &EventLog{}
}

func (l *EventLog) Append(eventType, talkID, userID string, payload map[string]any) models.LogEntry {
	entry := models.LogEntry{
		ID:        uuid.NewString(),
		EventType: eventType,
		TalkID:    talkID,
		UserID:    userID,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}

	l.entries = append(l.entries, entry)

	return entry
}

// All returns a snapshot of the log in append order.
func (l *EventLog) All() []models.LogEntry {
	out := make([]models.LogEntry, len(l.entries))
	copy(out, l.entries)

	return out
}
