package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talkReserve/internal/models"
	"talkReserve/internal/storage"
)

func TestReservationStore_Create(t *testing.T) {
	t.Parallel()

	store := NewReservationStore()
	expiresAt := time.Now().UTC().Add(time.Minute)

	reservation := store.Create("talk-1", "user-a", expiresAt)

	assert.NotEmpty(t, reservation.ID)
	assert.Equal(t, "talk-1", reservation.TalkID)
	assert.Equal(t, "user-a", reservation.UserID)
	assert.Equal(t, models.ReservationPending, reservation.Status)
	assert.Equal(t, expiresAt, reservation.ExpiresAt)

	found, err := store.FindByID(reservation.ID)
	require.NoError(t, err)
	assert.Same(t, reservation, found)
}

func TestReservationStore_FindOwned(t *testing.T) {
	t.Parallel()

	store := NewReservationStore()
	reservation := store.Create("talk-1", "user-a", time.Now().Add(time.Minute))

	found, err := store.FindOwned(reservation.ID, "user-a")
	require.NoError(t, err)
	assert.Same(t, reservation, found)

	// Wrong owner looks exactly like a missing reservation.
	_, err = store.FindOwned(reservation.ID, "user-b")
	assert.ErrorIs(t, err, storage.ErrReservationNotFound)

	_, err = store.FindOwned("missing", "user-a")
	assert.ErrorIs(t, err, storage.ErrReservationNotFound)
}

func TestReservationStore_ExpiredPending(t *testing.T) {
	t.Parallel()

	store := NewReservationStore()
	now := time.Now().UTC()

	stale := store.Create("talk-1", "user-a", now.Add(-time.Second))
	fresh := store.Create("talk-1", "user-a", now.Add(time.Minute))
	confirmed := store.Create("talk-1", "user-b", now.Add(-time.Second))
	confirmed.Status = models.ReservationConfirmed

	expired := store.ExpiredPending(now)

	require.Len(t, expired, 1)
	assert.Equal(t, stale.ID, expired[0].ID)
	assert.NotEqual(t, fresh.ID, expired[0].ID)
}

func TestReservationStore_ByTalk(t *testing.T) {
	t.Parallel()

	store := NewReservationStore()
	deadline := time.Now().Add(time.Minute)

	first := store.Create("talk-1", "user-a", deadline)
	second := store.Create("talk-1", "user-b", deadline)
	store.Create("talk-2", "user-a", deadline)

	byTalk := store.ByTalk("talk-1")

	require.Len(t, byTalk, 2)
	assert.Equal(t, first.ID, byTalk[0].ID)
	assert.Equal(t, second.ID, byTalk[1].ID)

	assert.Empty(t, store.ByTalk("missing"))
}

func TestReservationStore_All_PreservesOrder(t *testing.T) {
	t.Parallel()

	store := NewReservationStore()
	deadline := time.Now().Add(time.Minute)

	first := store.Create("talk-1", "user-a", deadline)
	second := store.Create("talk-1", "user-a", deadline)
	third := store.Create("talk-2", "user-b", deadline)

	all := store.All()

	require.Len(t, all, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID}, []string{all[0].ID, all[1].ID, all[2].ID})
}
