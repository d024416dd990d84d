package lavalink

import (
	"encoding/json"
	"time"

	"github.com/KirkDiggler/pearl/internal/models"
)

type trackInfo struct {
	Identifier string `json:"identifier"`
	IsSeekable bool   `json:"isSeekable"`
	Author     string `json:"author"`
	Length     int64  `json:"length"`
	IsStream   bool   `json:"isStream"`
	Position   int64  `json:"position"`
	Title      string `json:"title"`
	URI        string `json:"uri"`
	SourceName string `json:"sourceName"`
}

type track struct {
	Encoded string    `json:"encoded"`
	Info    trackInfo `json:"info"`
}

func (t track) toModel() models.Track {
	return models.Track{
		Encoded:    t.Encoded,
		Identifier: t.Info.Identifier,
		URI:        t.Info.URI,
		Title:      t.Info.Title,
		Author:     t.Info.Author,
		Length:     time.Duration(t.Info.Length) * time.Millisecond,
		IsStream:   t.Info.IsStream,
	}
}

type loadResult struct {
	LoadType string          `json:"loadType"`
	Data     json.RawMessage `json:"data"`
}

type playlistData struct {
	Info struct {
		Name          string `json:"name"`
		SelectedTrack int    `json:"selectedTrack"`
	} `json:"info"`
	Tracks []track `json:"tracks"`
}

type exceptionData struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Cause    string `json:"cause"`
}

// updateTrack marshals a nil Encoded as null, which stops the player
type updateTrack struct {
	Encoded *string `json:"encoded"`
}

type voiceState struct {
	Token     string `json:"token"`
	Endpoint  string `json:"endpoint"`
	SessionID string `json:"sessionId"`
}

type playerUpdate struct {
	Track    *updateTrack `json:"track,omitempty"`
	Position *int64       `json:"position,omitempty"`
	Paused   *bool        `json:"paused,omitempty"`
	Volume   *int         `json:"volume,omitempty"`
	Voice    *voiceState  `json:"voice,omitempty"`
}

type apiErrorBody struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// Websocket payloads

const (
	opReady        = "ready"
	opPlayerUpdate = "playerUpdate"
	opStats        = "stats"
	opEvent        = "event"
)

const (
	eventTrackStart     = "TrackStartEvent"
	eventTrackEnd       = "TrackEndEvent"
	eventTrackException = "TrackExceptionEvent"
	eventTrackStuck     = "TrackStuckEvent"
	eventSocketClosed   = "WebSocketClosedEvent"
)

type message struct {
	Op        string `json:"op"`
	Type      string `json:"type"`
	GuildID   string `json:"guildId"`
	SessionID string `json:"sessionId"`
	Resumed   bool   `json:"resumed"`

	Track     *track         `json:"track"`
	Reason    string         `json:"reason"`
	Exception *exceptionData `json:"exception"`
	Threshold int64          `json:"thresholdMs"`
	Code      int            `json:"code"`
	ByRemote  bool           `json:"byRemote"`

	State *struct {
		Time      int64 `json:"time"`
		Position  int64 `json:"position"`
		Connected bool  `json:"connected"`
		Ping      int64 `json:"ping"`
	} `json:"state"`
}
