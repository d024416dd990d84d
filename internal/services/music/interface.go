package music

//go:generate mockgen -package=mocks -destination=mocks/mock_dependencies.go github.com/KirkDiggler/pearl/internal/services/music VoiceNode,VoiceGateway,Notifier
//go:generate mockgen -package=musicmocks -destination=musicmocks/mock_service.go github.com/KirkDiggler/pearl/internal/services/music Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/pearl/internal/models"
)

// Service manages per-guild music sessions
type Service interface {
	// Play resolves a query and appends the result to the guild queue, joining voice if needed
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)

	// Search lists results for a query and keeps them for the requester to pick from
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)

	// Pick resolves the requester's pending search
	Pick(ctx context.Context, input *PickInput) (*PickOutput, error)

	// HasPendingSearch reports whether the requester has an unexpired search to pick from
	HasPendingSearch(guildID, userID string) bool

	// Remove deletes the entry at a 1-based queue position
	Remove(ctx context.Context, input *RemoveInput) (*RemoveOutput, error)

	// Shuffle randomly reorders the queue
	Shuffle(ctx context.Context, input *ShuffleInput) (*ShuffleOutput, error)

	// LoopQueue toggles re-appending finished tracks to the queue
	LoopQueue(ctx context.Context, input *LoopQueueInput) (*LoopQueueOutput, error)

	// Clear empties the queue
	Clear(ctx context.Context, input *ClearInput) (*ClearOutput, error)

	// Queue returns one page of the queue
	Queue(ctx context.Context, input *QueueInput) (*QueueOutput, error)

	// NowPlaying describes the current track and its progress
	NowPlaying(ctx context.Context, input *NowPlayingInput) (*NowPlayingOutput, error)

	// Skip skips the current track or records a vote to skip it
	Skip(ctx context.Context, input *SkipInput) (*SkipOutput, error)

	Pause(ctx context.Context, input *PauseInput) (*PauseOutput, error)

	Resume(ctx context.Context, input *ResumeInput) (*ResumeOutput, error)

	// Seek moves playback of the current track to a position
	Seek(ctx context.Context, input *SeekInput) (*SeekOutput, error)

	// Volume sets the player volume in percent
	Volume(ctx context.Context, input *VolumeInput) (*VolumeOutput, error)

	// Disconnect stops playback and leaves the voice channel
	Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error)

	// UpdateVoiceServer records voice server credentials sent to the bot
	UpdateVoiceServer(ctx context.Context, input *UpdateVoiceServerInput) error

	// UpdateVoiceState records the bot's own voice state
	UpdateVoiceState(ctx context.Context, input *UpdateVoiceStateInput) error

	// HandleEvent applies a voice node event to the guild's session
	HandleEvent(ctx context.Context, event models.PlayerEvent) error

	// ResetSessions drops snapshots left behind by a previous process
	ResetSessions(ctx context.Context) (int, error)

	// Shutdown leaves every voice channel and forgets all sessions
	Shutdown(ctx context.Context) error
}

// VoiceNode is the audio node that loads and plays tracks
type VoiceNode interface {
	LoadTracks(ctx context.Context, identifier string) (*models.LoadResult, error)
	UpdateVoice(ctx context.Context, guildID string, voice models.VoiceServer) error
	Play(ctx context.Context, guildID string, track models.Track) error
	Pause(ctx context.Context, guildID string, paused bool) error
	Seek(ctx context.Context, guildID string, position time.Duration) error
	SetVolume(ctx context.Context, guildID string, volume int) error
	Stop(ctx context.Context, guildID string) error
	Destroy(ctx context.Context, guildID string) error
}

// VoiceGateway joins and leaves voice channels on the chat platform
type VoiceGateway interface {
	JoinChannel(ctx context.Context, guildID, channelID string) error
	LeaveChannel(ctx context.Context, guildID string) error

	// ChannelMembers lists the users currently in a voice channel
	ChannelMembers(guildID, channelID string) ([]models.VoiceMember, error)
}

// Notifier posts session announcements to a text channel
type Notifier interface {
	Notify(ctx context.Context, notification *models.Notification) error
}
