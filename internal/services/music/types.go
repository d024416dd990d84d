package music

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/pearl/internal/common/clock"
	"github.com/KirkDiggler/pearl/internal/common/random"
	"github.com/KirkDiggler/pearl/internal/common/uuid"
	"github.com/KirkDiggler/pearl/internal/models"
	sessionRepo "github.com/KirkDiggler/pearl/internal/repositories/session"
)

const (
	DefaultIdleTimeout   = 300 * time.Second
	DefaultVoteRatio     = 0.7
	DefaultSearchTimeout = 60 * time.Second
	DefaultSearchLimit   = 10
	DefaultVolume        = 100
	QueuePageSize        = 12
	ProgressBarSize      = 24
)

// Config holds configuration for the music service
type Config struct {
	// IdleTimeout is how long an exhausted queue waits before the bot leaves
	IdleTimeout time.Duration

	// VoteRatio is the share of listeners needed to skip
	VoteRatio float64

	// SearchTimeout is how long search results can be picked from
	SearchTimeout time.Duration

	// SearchLimit caps the number of search results offered
	SearchLimit int

	Node        VoiceNode
	Gateway     VoiceGateway
	Notifier    Notifier
	SessionRepo sessionRepo.Repository

	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Randomizer    random.Randomizer
	Logger        *slog.Logger
}

// Requester identifies who invoked a command and where
type Requester struct {
	GuildID       string
	TextChannelID string
	UserID        string

	// VoiceChannelID is the requester's current voice channel, empty when not connected
	VoiceChannelID string

	// Privileged is true when the requester may manage channels in the guild
	Privileged bool
}

type PlayInput struct {
	Requester

	Query string

	// CanConnect is true when the bot may connect and speak in the requester's voice channel
	CanConnect bool
}

type PlayOutput struct {
	// Added lists the entries appended to the queue
	Added []models.QueueEntry

	// PlaylistName is set when a playlist was loaded
	PlaylistName string

	// Duration is the total length of the added entries
	Duration time.Duration

	// Started is true when playback began with this request
	Started bool
}

type SearchInput struct {
	Requester

	Query      string
	CanConnect bool
}

type SearchOutput struct {
	Results   []models.Track
	ExpiresAt time.Time
}

type PickInput struct {
	Requester

	// Choice is a 1-based result number or "cancel"
	Choice     string
	CanConnect bool
}

type PickOutput struct {
	Cancelled bool
	Added     *models.QueueEntry
	Started   bool
}

type RemoveInput struct {
	Requester

	// Index is the 1-based queue position
	Index int
}

type RemoveOutput struct {
	Removed models.QueueEntry
}

type ShuffleInput struct {
	Requester
}

type ShuffleOutput struct {
	Count int
}

type LoopQueueInput struct {
	Requester
}

type LoopQueueOutput struct {
	Repeat bool
}

type ClearInput struct {
	Requester
}

type ClearOutput struct {
	Removed int
}

type QueueInput struct {
	Requester

	// Page is 1-based, out of range pages are clamped
	Page int
}

type QueueOutput struct {
	Current  *models.QueueEntry
	Entries  []models.QueueEntry
	Page     int
	Pages    int
	Total    int
	Duration time.Duration

	// Offset is the 0-based queue position of Entries[0]
	Offset int

	Repeat bool
}

type NowPlayingInput struct {
	Requester
}

type NowPlayingOutput struct {
	Entry    models.QueueEntry
	Position time.Duration
	Paused   bool

	// Bar is a fixed width progress bar of the current track
	Bar string
}

type SkipInput struct {
	Requester
}

type SkipOutput struct {
	// Skipped is true when the track was skipped, false when only a vote was recorded
	Skipped bool
	Entry   models.QueueEntry
	Votes   int
	Quorum  int
}

type PauseInput struct {
	Requester
}

type PauseOutput struct{}

type ResumeInput struct {
	Requester
}

type ResumeOutput struct{}

type SeekInput struct {
	Requester

	Seconds int
}

type SeekOutput struct {
	Position time.Duration
}

type VolumeInput struct {
	Requester

	Volume int
}

type VolumeOutput struct {
	Volume int
}

type DisconnectInput struct {
	Requester
}

type DisconnectOutput struct{}

type UpdateVoiceServerInput struct {
	GuildID  string
	Token    string
	Endpoint string
}

type UpdateVoiceStateInput struct {
	GuildID string

	// ChannelID is empty when the bot left voice
	ChannelID string
	SessionID string
}
