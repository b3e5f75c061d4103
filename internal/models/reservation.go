package models

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pendente"
	ReservationConfirmed ReservationStatus = "confirmada"
	ReservationRejected  ReservationStatus = "reprovada"
	ReservationCancelled ReservationStatus = "cancelada"
)

// Reservation is a single claimed seat. Bulk requests create one
// Reservation per seat.
type Reservation struct {
	ID        string            `json:"id"`
	TalkID    string            `json:"palestra_id"`
	UserID    string            `json:"user_id"`
	Status    ReservationStatus `json:"status"`
	ExpiresAt time.Time         `json:"expira_em"`
}

// HoldsSeat reports whether the reservation still holds a claimed seat.
// Seats are claimed at request time, so both pending and confirmed
// reservations hold one.
func (r *Reservation) HoldsSeat() bool {
	return r.Status == ReservationPending || r.Status == ReservationConfirmed
}

// Terminal reports whether the reservation can no longer change state.
func (r *Reservation) Terminal() bool {
	return r.Status == ReservationRejected || r.Status == ReservationCancelled
}
