package models

import (
	"time"
)

// Track is a playable item as resolved by the voice node
type Track struct {
	// Encoded is the opaque track blob the voice node plays
	Encoded string

	// Identifier is the source specific identifier
	Identifier string

	// URI links to the track on its source
	URI string

	// Title is the display title
	Title string

	// Author is the display author or channel
	Author string

	// Length is the track duration, meaningless for streams
	Length time.Duration

	// IsStream indicates a live stream without a fixed length
	IsStream bool
}

// QueueEntry is a track placed in a session queue by a user
type QueueEntry struct {
	// ID is the unique identifier for this entry
	ID string

	// Track is the queued track
	Track Track

	// RequesterID is the user who queued the track
	RequesterID string

	// EnqueuedAt is when the track was queued
	EnqueuedAt time.Time
}

// LoadType describes what a track lookup produced
type LoadType string

const (
	// LoadTypeTrack indicates a single track was loaded
	LoadTypeTrack LoadType = "track"

	// LoadTypePlaylist indicates a playlist was loaded
	LoadTypePlaylist LoadType = "playlist"

	// LoadTypeSearch indicates a list of search results
	LoadTypeSearch LoadType = "search"

	// LoadTypeEmpty indicates nothing matched
	LoadTypeEmpty LoadType = "empty"

	// LoadTypeError indicates the lookup failed
	LoadTypeError LoadType = "error"
)

// LoadResult is the outcome of a track lookup
type LoadResult struct {
	Type         LoadType
	PlaylistName string
	Tracks       []Track
}

// VoiceMember is a user present in a voice channel
type VoiceMember struct {
	UserID string
	Bot    bool
}

// VoiceServer carries the credentials the voice node needs to join a call
type VoiceServer struct {
	Token     string
	Endpoint  string
	SessionID string
}
