package session

import "github.com/KirkDiggler/pearl/internal/models"

type SaveSessionInput struct {
	Session *models.MusicSession
}

type GetSessionInput struct {
	GuildID string
}

type DeleteSessionInput struct {
	GuildID string
}

type ListSessionsInput struct {
}

type ListSessionsOutput struct {
	Sessions []*models.MusicSession
}

type PurgeSessionsInput struct {
}

type PurgeSessionsOutput struct {
	// Removed is the number of snapshots deleted
	Removed int
}
