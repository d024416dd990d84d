package lavalink

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pearl/internal/models"
)

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name   string
		msg    message
		expect models.PlayerEvent
		ok     bool
	}{
		{
			name:   "track start",
			msg:    message{Op: opEvent, Type: eventTrackStart, GuildID: "g", Track: &track{Encoded: "QAAA"}},
			expect: models.PlayerEvent{Type: models.PlayerEventTrackStart, GuildID: "g", Track: "QAAA"},
			ok:     true,
		},
		{
			name:   "track end",
			msg:    message{Op: opEvent, Type: eventTrackEnd, GuildID: "g", Reason: "finished"},
			expect: models.PlayerEvent{Type: models.PlayerEventTrackEnd, GuildID: "g", EndReason: models.TrackEndFinished},
			ok:     true,
		},
		{
			name:   "exception",
			msg:    message{Op: opEvent, Type: eventTrackException, GuildID: "g", Exception: &exceptionData{Message: "boom"}},
			expect: models.PlayerEvent{Type: models.PlayerEventTrackException, GuildID: "g", Message: "boom"},
			ok:     true,
		},
		{
			name:   "stuck",
			msg:    message{Op: opEvent, Type: eventTrackStuck, GuildID: "g", Threshold: 10000},
			expect: models.PlayerEvent{Type: models.PlayerEventTrackStuck, GuildID: "g", Position: 10 * time.Second},
			ok:     true,
		},
		{
			name:   "voice closed",
			msg:    message{Op: opEvent, Type: eventSocketClosed, GuildID: "g", Code: 4014, Reason: "Disconnected."},
			expect: models.PlayerEvent{Type: models.PlayerEventVoiceClosed, GuildID: "g", Code: 4014, Message: "Disconnected."},
			ok:     true,
		},
		{
			name: "unknown event",
			msg:  message{Op: opEvent, Type: "SomePluginEvent", GuildID: "g"},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeEvent(&tt.msg)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expect, got)
			}
		})
	}
}

func TestListenDispatchesEvents(t *testing.T) {
	upgrader := websocket.Upgrader{}
	headers := make(chan http.Header, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Clone()
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		conn.WriteMessage(websocket.TextMessage, []byte(`{"op":"ready","resumed":false,"sessionId":"session-1"}`))
		conn.WriteMessage(websocket.TextMessage, []byte(`{"op":"stats","players":1}`))
		conn.WriteMessage(websocket.TextMessage, []byte(`{"op":"playerUpdate","guildId":"guild-1","state":{"time":1,"position":4500,"connected":true,"ping":20}}`))
		conn.WriteMessage(websocket.TextMessage, []byte(`{"op":"event","type":"TrackEndEvent","guildId":"guild-1","track":{"encoded":"QAAA","info":{}},"reason":"finished"}`))

		// hold the connection until the client goes away
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	client, err := New(&Config{
		BaseURL:  server.URL,
		Password: "youshallnotpass",
		UserID:   "bot-1",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan models.PlayerEvent, 4)
	done := make(chan error, 1)
	go func() {
		done <- client.Listen(ctx, func(_ context.Context, event models.PlayerEvent) {
			events <- event
		})
	}()

	ready := <-events
	assert.Equal(t, models.PlayerEvent{Type: models.PlayerEventNodeReady}, ready)
	assert.Equal(t, "session-1", client.SessionID())

	first := <-events
	assert.Equal(t, models.PlayerEventPlayerUpdate, first.Type)
	assert.Equal(t, 4500*time.Millisecond, first.Position)

	second := <-events
	assert.Equal(t, models.PlayerEventTrackEnd, second.Type)
	assert.Equal(t, models.TrackEndFinished, second.EndReason)
	assert.Equal(t, "session-1", client.SessionID())

	h := <-headers
	assert.Equal(t, "youshallnotpass", h.Get("Authorization"))
	assert.Equal(t, "bot-1", h.Get("User-Id"))
	assert.Equal(t, "pearl", h.Get("Client-Name"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not stop")
	}
}
