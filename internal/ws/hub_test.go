package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talkReserve/internal/lib/logger/handlers/slogdiscard"
)

func receiveFrame(t *testing.T, c *Client) frame {
	t.Helper()

	select {
	case raw := <-c.send:
		var f frame
		require.NoError(t, json.Unmarshal(raw, &f))
		return f
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for frame")
		return frame{}
	}
}

func TestHub_BroadcastReachesEveryClient(t *testing.T) {
	t.Parallel()

	hub := NewHub(slogdiscard.NewDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	first := newClient(hub, nil, slogdiscard.NewDiscardLogger())
	second := newClient(hub, nil, slogdiscard.NewDiscardLogger())

	hub.register <- first
	hub.register <- second

	hub.Broadcast("estado.atualizado", []string{"a"})

	for _, client := range []*Client{first, second} {
		f := receiveFrame(t, client)
		assert.Equal(t, "estado.atualizado", f.Event)
	}
}

func TestHub_UnregisteredClientStopsReceiving(t *testing.T) {
	t.Parallel()

	hub := NewHub(slogdiscard.NewDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := newClient(hub, nil, slogdiscard.NewDiscardLogger())
	other := newClient(hub, nil, slogdiscard.NewDiscardLogger())

	hub.register <- client
	hub.register <- other
	hub.unregister <- client

	// The unregistered client is marked dropped by the hub.
	select {
	case <-client.done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for client drop")
	}

	hub.Broadcast("estado.atualizado", nil)

	f := receiveFrame(t, other)
	assert.Equal(t, "estado.atualizado", f.Event)
	assert.Empty(t, client.send)
}

func TestHub_SendAfterSlowConsumerDrop(t *testing.T) {
	t.Parallel()

	hub := NewHub(slogdiscard.NewDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	client := newClient(hub, nil, slogdiscard.NewDiscardLogger())
	hub.register <- client

	// Fill the queue so the next broadcast treats the client as a slow
	// consumer and drops it.
	for i := 0; i < sendBufferSize; i++ {
		client.Send("novo.log", i)
	}

	hub.Broadcast("estado.atualizado", nil)

	select {
	case <-client.done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for slow consumer drop")
	}

	// The reader goroutine may still reply on behalf of the dropped
	// client; this must be a quiet no-op, never a panic.
	assert.NotPanics(t, func() {
		client.Send("erro.operacao", nil)
	})

	assert.True(t, client.isDropped())
}

func TestHub_ShutdownDropsClients(t *testing.T) {
	t.Parallel()

	hub := NewHub(slogdiscard.NewDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	client := newClient(hub, nil, slogdiscard.NewDiscardLogger())
	hub.register <- client

	cancel()

	select {
	case <-client.done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for shutdown drop")
	}

	assert.NotPanics(t, func() {
		client.Send("erro.operacao", nil)
	})
}

func TestClient_SendNeverBlocks(t *testing.T) {
	t.Parallel()

	client := newClient(nil, nil, slogdiscard.NewDiscardLogger())

	// Overfill the queue; the surplus must be dropped, not block.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < sendBufferSize+10; i++ {
			client.Send("novo.log", i)
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Send blocked on a full queue")
	}

	assert.Len(t, client.send, sendBufferSize)
}
