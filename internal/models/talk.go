package models

import "time"

type TalkStatus string

const (
	TalkOpen   TalkStatus = "aberta"
	TalkClosed TalkStatus = "encerrada"
)

// Talk field names on the wire stay in Portuguese to keep existing
// clients working against the original protocol.
type Talk struct {
	ID             string     `json:"id"`
	Title          string     `json:"titulo"`
	TotalSeats     int        `json:"vagas_totais"`
	AvailableSeats int        `json:"vagas_disponiveis"`
	Status         TalkStatus `json:"status"`
	CreatedAt      time.Time  `json:"criada_em"`
}

// HasSeats reports whether quantity seats can still be claimed.
func (t *Talk) HasSeats(quantity int) bool {
	return t.AvailableSeats >= quantity
}
