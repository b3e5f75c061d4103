package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLog_Append(t *testing.T) {
	t.Parallel()

	log := NewEventLog()

	entry := log.Append("vaga.solicitada", "talk-1", "user-a", map[string]any{"reservaId": "res-1"})

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "vaga.solicitada", entry.EventType)
	assert.Equal(t, "talk-1", entry.TalkID)
	assert.Equal(t, "user-a", entry.UserID)
	assert.Equal(t, "res-1", entry.Payload["reservaId"])
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestEventLog_All_AppendOrder(t *testing.T) {
	t.Parallel()

	log := NewEventLog()

	first := log.Append("palestra.aberta", "talk-1", "", nil)
	second := log.Append("vaga.solicitada", "talk-1", "user-a", nil)

	all := log.All()

	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}

func TestEventLog_All_ReturnsCopy(t *testing.T) {
	t.Parallel()

	log := NewEventLog()
	log.Append("palestra.aberta", "talk-1", "", nil)

	snapshot := log.All()
	snapshot[0].EventType = "mutated"

	assert.Equal(t, "palestra.aberta", log.All()[0].EventType)
}
