package api

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/pearl/internal/common/uuid"
	"github.com/KirkDiggler/pearl/internal/models"
	sessionRepo "github.com/KirkDiggler/pearl/internal/repositories/session"
)

const (
	DefaultListen            = "127.0.0.1:8080"
	DefaultReadHeaderTimeout = 5 * time.Second

	pathHealth   = "/healthz"
	pathSessions = "/v1/sessions"
	pathSession  = "/v1/sessions/:guild_id"

	requestIDHeader = "X-Request-ID"
)

// StatusProvider reports whether the gateway connection is up
type StatusProvider interface {
	Connected() bool
}

// Config holds configuration for the status API
type Config struct {
	Listen string

	SessionRepo   sessionRepo.Repository
	Status        StatusProvider
	UUIDGenerator uuid.UUID
	Logger        *slog.Logger
}

type healthResponse struct {
	Status           string `json:"status"`
	DiscordConnected bool   `json:"discord_connected"`
	Sessions         int    `json:"sessions"`
}

type httpError struct {
	Error string `json:"error"`
}

type trackResponse struct {
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	URI         string    `json:"uri,omitempty"`
	LengthMS    int64     `json:"length_ms"`
	Stream      bool      `json:"stream"`
	RequesterID string    `json:"requester_id"`
	EnqueuedAt  time.Time `json:"enqueued_at"`
}

type sessionResponse struct {
	GuildID        string          `json:"guild_id"`
	VoiceChannelID string          `json:"voice_channel_id"`
	TextChannelID  string          `json:"text_channel_id"`
	DJID           string          `json:"dj_id"`
	State          string          `json:"state"`
	Paused         bool            `json:"paused"`
	Volume         int             `json:"volume"`
	Repeat         bool            `json:"repeat"`
	PositionMS     int64           `json:"position_ms"`
	SkipVotes      int             `json:"skip_votes"`
	Current        *trackResponse  `json:"current"`
	Queue          []trackResponse `json:"queue"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type sessionsResponse struct {
	Sessions []sessionResponse `json:"sessions"`
}

func newTrackResponse(entry models.QueueEntry) trackResponse {
	return trackResponse{
		Title:       entry.Track.Title,
		Author:      entry.Track.Author,
		URI:         entry.Track.URI,
		LengthMS:    entry.Track.Length.Milliseconds(),
		Stream:      entry.Track.IsStream,
		RequesterID: entry.RequesterID,
		EnqueuedAt:  entry.EnqueuedAt,
	}
}

func newSessionResponse(session *models.MusicSession) sessionResponse {
	resp := sessionResponse{
		GuildID:        session.GuildID,
		VoiceChannelID: session.VoiceChannelID,
		TextChannelID:  session.TextChannelID,
		DJID:           session.DJID,
		State:          string(session.State),
		Paused:         session.Paused,
		Volume:         session.Volume,
		Repeat:         session.Repeat,
		PositionMS:     session.Position.Milliseconds(),
		SkipVotes:      session.Votes.Count(),
		Queue:          make([]trackResponse, 0, len(session.Queue)),
		CreatedAt:      session.CreatedAt,
		UpdatedAt:      session.UpdatedAt,
	}

	if session.Current != nil {
		current := newTrackResponse(*session.Current)
		resp.Current = &current
	}
	for _, entry := range session.Queue {
		resp.Queue = append(resp.Queue, newTrackResponse(entry))
	}

	return resp
}
