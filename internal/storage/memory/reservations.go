package memory

import (
	"time"

	"github.com/google/uuid"

	"talkReserve/internal/models"
	"talkReserve/internal/storage"
)

type ReservationStore struct {
	reservations []*models.Reservation
	byID         map[string]*models.Reservation
}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{
		byID: make(map[string]*models.Reservation),
	}
}

// Create appends a single pending reservation holding one seat.
func (s *ReservationStore) Create(talkID, userID string, expiresAt time.Time) *models.Reservation {
	reservation := &models.Reservation{
		ID:        uuid.NewString(),
		TalkID:    talkID,
		UserID:    userID,
		Status:    models.ReservationPending,
		ExpiresAt: expiresAt,
	}

	s.reservations = append(s.reservations, reservation)
	s.byID[reservation.ID] = reservation

	return reservation
}

func (s *ReservationStore) FindByID(id string) (*models.Reservation, error) {
	reservation, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrReservationNotFound
	}

	return reservation, nil
}

// FindOwned looks a reservation up by id and owner. A wrong owner is
// indistinguishable from a missing reservation.
func (s *ReservationStore) FindOwned(id, userID string) (*models.Reservation, error) {
	reservation, ok := s.byID[id]
	if !ok || reservation.UserID != userID {
		return nil, storage.ErrReservationNotFound
	}

	return reservation, nil
}

// ExpiredPending returns the pending reservations whose deadline has
// passed as of now.
func (s *ReservationStore) ExpiredPending(now time.Time) []*models.Reservation {
	var expired []*models.Reservation
	for _, reservation := range s.reservations {
		if reservation.Status == models.ReservationPending && !reservation.ExpiresAt.After(now) {
			expired = append(expired, reservation)
		}
	}

	return expired
}

// ByTalk returns a snapshot of the reservations for one talk.
func (s *ReservationStore) ByTalk(talkID string) []models.Reservation {
	var out []models.Reservation
	for _, reservation := range s.reservations {
		if reservation.TalkID == talkID {
			out = append(out, *reservation)
		}
	}

	return out
}

// All returns a snapshot of every reservation in creation order.
func (s *ReservationStore) All() []models.Reservation {
	out := make([]models.Reservation, 0, len(s.reservations))
	for _, reservation := range s.reservations {
		out = append(out, *reservation)
	}

	return out
}
