package brackets

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForClients(t *testing.T, hub *Hub, room string, want int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount(room) == want }, time.Second, 5*time.Millisecond)
}

func TestHub_BroadcastToRoom(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run()

	room := TournamentRoom(3)
	assert.Equal(t, "tournament_3", room)

	inRoom := &Client{Hub: hub, Send: make(chan []byte, 1), Room: room}
	elsewhere := &Client{Hub: hub, Send: make(chan []byte, 1), Room: TournamentRoom(4)}
	hub.Register <- inRoom
	hub.Register <- elsewhere
	waitForClients(t, hub, room, 1)

	hub.BroadcastToRoom(room, WebSocketMessage{Type: EventPlacementMatchUpdated, Payload: "x", RoomID: room})

	select {
	case raw := <-inRoom.Send:
		var msg WebSocketMessage
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, EventPlacementMatchUpdated, msg.Type)
		assert.Equal(t, room, msg.RoomID)
	case <-time.After(time.Second):
		t.Fatal("message was not delivered")
	}
	assert.Empty(t, elsewhere.Send)

	hub.Unregister <- inRoom
	waitForClients(t, hub, room, 0)
	_, open := <-inRoom.Send
	assert.False(t, open)
}

func TestHub_SkipsFullClients(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run()

	room := TournamentRoom(5)
	client := &Client{Hub: hub, Send: make(chan []byte, 1), Room: room}
	hub.Register <- client
	waitForClients(t, hub, room, 1)

	hub.BroadcastToRoom(room, "first")
	hub.BroadcastToRoom(room, "second")

	assert.Equal(t, `"first"`, string(<-client.Send))
	assert.Empty(t, client.Send)
}
