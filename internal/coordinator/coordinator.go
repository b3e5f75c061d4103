// Package coordinator implements the reservation state machine: seat
// accounting, the reservation lifecycle, and the log-append plus
// full-state broadcast that follows every mutation.
package coordinator

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"talkReserve/internal/events"
	"talkReserve/internal/models"
	"talkReserve/internal/storage"
	"talkReserve/internal/storage/memory"
)

// Broadcaster fans an event out to every connected client.
type Broadcaster interface {
	Broadcast(event string, payload any)
}

// Coordinator owns the in-memory stores. Every operation runs under a
// single lock, so two requests touching the same talk never interleave
// and the seat invariant (0 <= available <= total) holds throughout.
type Coordinator struct {
	log          *slog.Logger
	broadcaster  Broadcaster
	mu           sync.Mutex
	talks        *memory.TalkStore
	reservations *memory.ReservationStore
	eventLog     *memory.EventLog
	ttl          time.Duration
	now          func() time.Time
}

func New(
	log *slog.Logger,
	talks *memory.TalkStore,
	reservations *memory.ReservationStore,
	eventLog *memory.EventLog,
	broadcaster Broadcaster,
	ttl time.Duration,
) *Coordinator {
	return &Coordinator{
		log:          log,
		broadcaster:  broadcaster,
		talks:        talks,
		reservations: reservations,
		eventLog:     eventLog,
		ttl:          ttl,
		now:          time.Now,
	}
}

// CreateTalk opens a new talk. Returns storage.ErrInvalidInput when
// totalSeats is not positive.
func (c *Coordinator) CreateTalk(title string, totalSeats int) (*models.Talk, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	talk, err := c.talks.Create(title, totalSeats)
	if err != nil {
		return nil, err
	}

	c.appendLog(events.TalkOpened, talk.ID, "", map[string]any{
		"titulo": title,
		"vagas":  totalSeats,
	})
	c.broadcastState()

	return talk, nil
}

// CloseTalk flips a talk to encerrada. Existing reservations are left
// alone; closing never cascades.
func (c *Coordinator) CloseTalk(talkID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.talks.Close(talkID); err != nil {
		return err
	}

	c.appendLog(events.TalkClose, talkID, "", nil)
	c.broadcastState()

	return nil
}

// RequestSeats claims quantity seats on the talk and creates one
// pending reservation per seat. Seats are taken from the pool the
// moment the request is accepted, before any admin decision. When the
// pool is short the request is refused whole: no reservations, no
// decrement, and the refusal is logged.
func (c *Coordinator) RequestSeats(talkID, userID string, quantity int) ([]models.Reservation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.talks.Claim(talkID, quantity); err != nil {
		if errors.Is(err, storage.ErrCapacityExceeded) {
			c.appendLog(events.LimitReached, talkID, userID, nil)
		}

		return nil, err
	}

	expiresAt := c.now().UTC().Add(c.ttl)

	created := make([]models.Reservation, 0, quantity)
	for i := 0; i < quantity; i++ {
		reservation := c.reservations.Create(talkID, userID, expiresAt)
		created = append(created, *reservation)

		c.appendLog(events.SeatRequested, talkID, userID, map[string]any{
			"reservaId": reservation.ID,
		})
	}

	c.broadcaster.Broadcast(events.ReservationPending, created)
	c.broadcastState()

	return created, nil
}

// Decide applies an admin decision to a pending reservation. Missing
// reservations, missing talks, and reservations no longer pending are
// silent no-ops. Approval leaves the seat count alone (the seat was
// claimed at request time); rejection returns the claimed seat to the
// pool.
func (c *Coordinator) Decide(reservationID string, approve bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	reservation, err := c.reservations.FindByID(reservationID)
	if err != nil {
		return err
	}

	if reservation.Status != models.ReservationPending {
		return nil
	}

	talk, err := c.talks.FindByID(reservation.TalkID)
	if err != nil {
		return err
	}

	decision := events.DecisionData{
		TalkID:        talk.ID,
		UserID:        reservation.UserID,
		ReservationID: reservation.ID,
	}

	if approve {
		reservation.Status = models.ReservationConfirmed
		c.appendLog(events.RegistrationConfirmed, talk.ID, reservation.UserID, map[string]any{
			"reservaId": reservation.ID,
		})
		c.broadcaster.Broadcast(events.RegistrationConfirmed, decision)
	} else {
		reservation.Status = models.ReservationRejected
		c.talks.Release(talk.ID, 1)
		c.appendLog(events.RegistrationRejected, talk.ID, reservation.UserID, map[string]any{
			"reservaId": reservation.ID,
		})
		c.broadcaster.Broadcast(events.RegistrationRejected, decision)
	}

	c.broadcastState()

	return nil
}

// Cancel lets the owner cancel their reservation. A wrong owner or an
// unknown id is a silent no-op, as is a reservation already in a
// terminal state. Both pending and confirmed reservations hold a
// claimed seat, so either way the seat goes back to the pool.
func (c *Coordinator) Cancel(reservationID, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	reservation, err := c.reservations.FindOwned(reservationID, userID)
	if err != nil {
		return err
	}

	if reservation.Terminal() {
		return nil
	}

	if reservation.HoldsSeat() {
		c.talks.Release(reservation.TalkID, 1)
	}

	reservation.Status = models.ReservationCancelled

	c.appendLog(events.ReservationCancelled, reservation.TalkID, userID, map[string]any{
		"reservaId": reservation.ID,
	})
	c.broadcaster.Broadcast(events.ReservationCancelled, *reservation)
	c.broadcastState()

	return nil
}

// ExpireStale cancels every pending reservation whose deadline has
// passed, returning each claimed seat to the pool. Confirmed
// reservations never expire. Returns how many were cancelled.
func (c *Coordinator) ExpireStale() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	expired := c.reservations.ExpiredPending(c.now().UTC())
	for _, reservation := range expired {
		c.talks.Release(reservation.TalkID, 1)
		reservation.Status = models.ReservationCancelled

		c.appendLog(events.ReservationExpired, reservation.TalkID, reservation.UserID, map[string]any{
			"reservaId": reservation.ID,
		})
		c.broadcaster.Broadcast(events.ReservationExpired, *reservation)
	}

	if len(expired) > 0 {
		c.broadcastState()
	}

	return len(expired)
}

// Talks returns a snapshot of every talk.
func (c *Coordinator) Talks() []models.Talk {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.talks.All()
}

// Reservations returns a snapshot of every reservation.
func (c *Coordinator) Reservations() []models.Reservation {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.reservations.All()
}

// Logs returns a snapshot of the event log.
func (c *Coordinator) Logs() []models.LogEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.eventLog.All()
}

// TalkWithReservations returns one talk together with its reservations.
func (c *Coordinator) TalkWithReservations(talkID string) (*models.Talk, []models.Reservation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	talk, err := c.talks.FindByID(talkID)
	if err != nil {
		return nil, nil, err
	}

	snapshot := *talk

	return &snapshot, c.reservations.ByTalk(talkID), nil
}

// appendLog records a domain event and pushes it to every client.
// Callers must hold c.mu.
func (c *Coordinator) appendLog(eventType, talkID, userID string, payload map[string]any) {
	entry := c.eventLog.Append(eventType, talkID, userID, payload)

	c.log.Info("domain event",
		slog.String("type", eventType),
		slog.String("talk_id", talkID),
		slog.String("user_id", userID),
	)

	c.broadcaster.Broadcast(events.NewLog, entry)
}

// broadcastState pushes full talk and reservation snapshots to every
// client. This rebroadcast is the system's only consistency mechanism.
// Callers must hold c.mu.
func (c *Coordinator) broadcastState() {
	c.broadcaster.Broadcast(events.StateUpdated, c.talks.All())
	c.broadcaster.Broadcast(events.ReservationsUpdated, c.reservations.All())
}
