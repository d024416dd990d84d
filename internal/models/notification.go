package models

// NotificationType says what a session announcement is about
type NotificationType int

const (
	// NotificationNowPlaying announces a track that started playing
	NotificationNowPlaying NotificationType = iota

	// NotificationIdleDisconnect announces the bot left voice after inactivity
	NotificationIdleDisconnect

	// NotificationTrackFailed announces a track that could not be played
	NotificationTrackFailed
)

// Notification is an announcement for a session's text channel
type Notification struct {
	Type      NotificationType
	GuildID   string
	ChannelID string

	// Entry is the track the notification is about, if any
	Entry *QueueEntry

	Message string
}
