package models

import (
	"time"
)

// PlayerEventType enumerates the events a voice node reports
type PlayerEventType int

const (
	// PlayerEventTrackStart is sent when a track begins playing
	PlayerEventTrackStart PlayerEventType = iota

	// PlayerEventTrackEnd is sent when a track stops for any reason
	PlayerEventTrackEnd

	// PlayerEventTrackException is sent when a track fails while playing
	PlayerEventTrackException

	// PlayerEventTrackStuck is sent when a track stops producing audio
	PlayerEventTrackStuck

	// PlayerEventQueueEnd is raised when the last queued track has finished
	PlayerEventQueueEnd

	// PlayerEventPlayerUpdate carries the periodic playback position
	PlayerEventPlayerUpdate

	// PlayerEventVoiceClosed is sent when the voice connection of the node closed
	PlayerEventVoiceClosed

	// PlayerEventNodeReady is sent for every node connection, it belongs to no guild
	PlayerEventNodeReady
)

// String returns a readable name for logs
func (t PlayerEventType) String() string {
	switch t {
	case PlayerEventTrackStart:
		return "track_start"
	case PlayerEventTrackEnd:
		return "track_end"
	case PlayerEventTrackException:
		return "track_exception"
	case PlayerEventTrackStuck:
		return "track_stuck"
	case PlayerEventQueueEnd:
		return "queue_end"
	case PlayerEventPlayerUpdate:
		return "player_update"
	case PlayerEventVoiceClosed:
		return "voice_closed"
	case PlayerEventNodeReady:
		return "node_ready"
	default:
		return "unknown"
	}
}

// TrackEndReason says why a track ended
type TrackEndReason string

const (
	TrackEndFinished   TrackEndReason = "finished"
	TrackEndLoadFailed TrackEndReason = "loadFailed"
	TrackEndStopped    TrackEndReason = "stopped"
	TrackEndReplaced   TrackEndReason = "replaced"
	TrackEndCleanup    TrackEndReason = "cleanup"
)

// MayStartNext reports whether the next queued track should be started
func (r TrackEndReason) MayStartNext() bool {
	return r == TrackEndFinished || r == TrackEndLoadFailed
}

// PlayerEvent is a single event from the voice node, discriminated by Type
type PlayerEvent struct {
	// Type selects which of the remaining fields are meaningful
	Type PlayerEventType

	// GuildID is the guild whose player produced the event
	GuildID string

	// Track is the encoded track for track events
	Track string

	// EndReason is set for PlayerEventTrackEnd
	EndReason TrackEndReason

	// Position is set for PlayerEventPlayerUpdate
	Position time.Duration

	// Code is the close code for PlayerEventVoiceClosed
	Code int

	// Message describes exceptions and close reasons
	Message string

	// Resumed is set for PlayerEventNodeReady when the node kept its players
	Resumed bool
}
