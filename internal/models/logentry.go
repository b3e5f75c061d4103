package models

import "time"

// LogEntry is an append-only record of a domain event. Entries are
// immutable once created.
type LogEntry struct {
	ID        string         `json:"id"`
	EventType string         `json:"tipo_evento"`
	TalkID    string         `json:"palestra_id,omitempty"`
	UserID    string         `json:"user_id,omitempty"`
	Payload   map[string]any `json:"dados,omitempty"`
	CreatedAt time.Time      `json:"criado_em"`
}
