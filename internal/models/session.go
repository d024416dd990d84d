package models

import (
	"time"
)

// SessionState represents where a music session is in its lifecycle
type SessionState string

const (
	// SessionStateAbsent indicates there is no session for the guild
	SessionStateAbsent SessionState = "absent"

	// SessionStateConnecting indicates the bot asked to join a voice channel and waits for voice credentials
	SessionStateConnecting SessionState = "connecting"

	// SessionStateActive indicates the session is connected and playing or ready to play
	SessionStateActive SessionState = "active"

	// SessionStateIdlePending indicates the queue ran dry and the idle timer is armed
	SessionStateIdlePending SessionState = "idle_pending"
)

// IsConnected reports whether the bot is (or is about to be) in a voice channel
func (s SessionState) IsConnected() bool {
	return s == SessionStateConnecting || s == SessionStateActive || s == SessionStateIdlePending
}

// MusicSession represents the live playback context of a guild
type MusicSession struct {
	// ID is the unique identifier for this session
	ID string

	// GuildID is the Discord server/guild this session belongs to
	GuildID string

	// VoiceChannelID is the voice channel the bot joined
	VoiceChannelID string

	// TextChannelID is the channel announcements are sent to
	TextChannelID string

	// DJID is the user ID of the session creator
	DJID string

	// State is the current lifecycle state
	State SessionState

	// Paused indicates playback is paused on the voice node
	Paused bool

	// Volume is the player volume in percent
	Volume int

	// Repeat re-appends finished tracks to the end of the queue
	Repeat bool

	// Current is the entry being played, nil when nothing is playing
	Current *QueueEntry

	// Queue holds the upcoming entries in play order
	Queue []QueueEntry

	// Votes tracks skip votes for the current track
	Votes VoteState

	// Position is the last known playback position of the current track
	Position time.Duration

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session was last changed
	UpdatedAt time.Time
}

// IsPlaying reports whether a track is loaded on the player
func (s *MusicSession) IsPlaying() bool {
	return s.Current != nil
}

// QueueDuration sums the length of every queued entry
func (s *MusicSession) QueueDuration() time.Duration {
	var total time.Duration
	for _, entry := range s.Queue {
		total += entry.Track.Length
	}
	return total
}

// VoteState holds the skip votes cast for the current track
type VoteState struct {
	// Voters contains the IDs of users who voted, each at most once
	Voters []string
}

// HasVoted reports whether the user already voted
func (v *VoteState) HasVoted(userID string) bool {
	for _, id := range v.Voters {
		if id == userID {
			return true
		}
	}
	return false
}

// Add records a vote and reports whether it was counted
func (v *VoteState) Add(userID string) bool {
	if v.HasVoted(userID) {
		return false
	}
	v.Voters = append(v.Voters, userID)
	return true
}

// Count returns the number of votes cast
func (v *VoteState) Count() int {
	return len(v.Voters)
}

// Reset clears all votes
func (v *VoteState) Reset() {
	v.Voters = nil
}
