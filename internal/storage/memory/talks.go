// Package memory holds the in-memory stores. All state lives and dies
// with the process; nothing is persisted.
//
// The stores are not safe for concurrent use on their own. The
// coordinator owns them and serializes every access behind its lock.
package memory

import (
	"time"

	"github.com/google/uuid"

	"talkReserve/internal/models"
	"talkReserve/internal/storage"
)

type TalkStore struct {
	talks []*models.Talk
	byID  map[string]*models.Talk
}

func NewTalkStore() *TalkStore {
	return &TalkStore{
		byID: make(map[string]*models.Talk),
	}
}

// Create registers a new open talk with all seats available.
func (s *TalkStore) Create(title string, totalSeats int) (*models.Talk, error) {
	if totalSeats <= 0 {
		return nil, storage.ErrInvalidInput
	}

	talk := &models.Talk{
		ID:             uuid.NewString(),
		Title:          title,
		TotalSeats:     totalSeats,
		AvailableSeats: totalSeats,
		Status:         models.TalkOpen,
		CreatedAt:      time.Now().UTC(),
	}

	s.talks = append(s.talks, talk)
	s.byID[talk.ID] = talk

	return talk, nil
}

// Close flips the talk to encerrada. The transition is forward-only;
// closing an already closed talk is harmless.
func (s *TalkStore) Close(id string) (*models.Talk, error) {
	talk, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrTalkNotFound
	}

	talk.Status = models.TalkClosed

	return talk, nil
}

func (s *TalkStore) FindByID(id string) (*models.Talk, error) {
	talk, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrTalkNotFound
	}

	return talk, nil
}

// Claim removes quantity seats from the talk's available pool. Either
// all requested seats are claimed or none are.
func (s *TalkStore) Claim(id string, quantity int) error {
	talk, ok := s.byID[id]
	if !ok {
		return storage.ErrTalkNotFound
	}

	if !talk.HasSeats(quantity) {
		return storage.ErrCapacityExceeded
	}

	talk.AvailableSeats -= quantity

	return nil
}

// Release returns quantity seats to the pool, clamped at the talk's
// total. Releasing on a missing talk is a no-op.
func (s *TalkStore) Release(id string, quantity int) {
	talk, ok := s.byID[id]
	if !ok {
		return
	}

	talk.AvailableSeats += quantity
	if talk.AvailableSeats > talk.TotalSeats {
		talk.AvailableSeats = talk.TotalSeats
	}
}

// All returns a snapshot of every talk in creation order.
func (s *TalkStore) All() []models.Talk {
	talks := make([]models.Talk, 0, len(s.talks))
	for _, talk := range s.talks {
		talks = append(talks, *talk)
	}

	return talks
}
