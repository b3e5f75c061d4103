// Package storage defines the error surface shared by the concrete
// store implementations.
package storage

import "errors"

var (
	ErrTalkNotFound        = errors.New("talk not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrCapacityExceeded    = errors.New("no available seats")
	ErrInvalidInput        = errors.New("invalid input")
)
