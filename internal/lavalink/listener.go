package lavalink

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/pearl/internal/models"
)

const readTimeout = 90 * time.Second

// EventHandler receives decoded player events
type EventHandler func(ctx context.Context, event models.PlayerEvent)

// Listen keeps a websocket open to the node and dispatches its events until
// ctx is cancelled, reconnecting after failures
func (c *Client) Listen(ctx context.Context, handler EventHandler) error {
	for {
		err := c.listenOnce(ctx, handler)
		if ctx.Err() != nil {
			return nil
		}

		c.setSessionID("")
		c.logger.WarnContext(ctx, "lavalink websocket closed, reconnecting",
			"error", err,
			"delay", c.reconnectDelay,
		)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(c.reconnectDelay):
		}
	}
}

func (c *Client) websocketURL() string {
	u := *c.baseURL
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path += apiPrefix + "/websocket"
	return u.String()
}

func (c *Client) listenOnce(ctx context.Context, handler EventHandler) error {
	header := http.Header{}
	header.Set("Authorization", c.password)
	header.Set("User-Id", c.userID)
	header.Set("Client-Name", c.clientName)

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.websocketURL(), header)
	if err != nil {
		return fmt.Errorf("failed to connect to lavalink: %w", err)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			conn.Close()
		case <-done:
		}
	}()

	for {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return fmt.Errorf("lavalink websocket error: %w", err)
			}
			return err
		}

		c.handleMessage(ctx, data, handler)
	}
}

func (c *Client) handleMessage(ctx context.Context, data []byte, handler EventHandler) {
	var msg message
	if err := json.Unmarshal(data, &msg); err != nil {
		c.logger.WarnContext(ctx, "failed to decode lavalink message", "error", err)
		return
	}

	switch msg.Op {
	case opReady:
		c.setSessionID(msg.SessionID)
		c.logger.InfoContext(ctx, "lavalink ready",
			"session_id", msg.SessionID,
			"resumed", msg.Resumed,
		)
		handler(ctx, models.PlayerEvent{Type: models.PlayerEventNodeReady, Resumed: msg.Resumed})
	case opStats:
	case opPlayerUpdate, opEvent:
		event, ok := decodeEvent(&msg)
		if !ok {
			c.logger.DebugContext(ctx, "ignoring lavalink event", "type", msg.Type)
			return
		}
		handler(ctx, event)
	default:
		c.logger.DebugContext(ctx, "unknown lavalink op", "op", msg.Op)
	}
}

func decodeEvent(msg *message) (models.PlayerEvent, bool) {
	event := models.PlayerEvent{GuildID: msg.GuildID}
	if msg.Track != nil {
		event.Track = msg.Track.Encoded
	}

	if msg.Op == opPlayerUpdate {
		if msg.State == nil {
			return event, false
		}
		event.Type = models.PlayerEventPlayerUpdate
		event.Position = time.Duration(msg.State.Position) * time.Millisecond
		return event, true
	}

	switch msg.Type {
	case eventTrackStart:
		event.Type = models.PlayerEventTrackStart
	case eventTrackEnd:
		event.Type = models.PlayerEventTrackEnd
		event.EndReason = models.TrackEndReason(msg.Reason)
	case eventTrackException:
		event.Type = models.PlayerEventTrackException
		if msg.Exception != nil {
			event.Message = msg.Exception.Message
		}
	case eventTrackStuck:
		event.Type = models.PlayerEventTrackStuck
		event.Position = time.Duration(msg.Threshold) * time.Millisecond
	case eventSocketClosed:
		event.Type = models.PlayerEventVoiceClosed
		event.Code = msg.Code
		event.Message = msg.Reason
	default:
		return event, false
	}

	return event, true
}
