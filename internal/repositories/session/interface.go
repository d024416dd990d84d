package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/pearl/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/pearl/internal/models"
)

// Repository defines the interface for music session snapshot persistence
type Repository interface {
	// SaveSession stores the latest snapshot of a session
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves the snapshot for a guild
	GetSession(ctx context.Context, input *GetSessionInput) (*models.MusicSession, error)

	// DeleteSession removes the snapshot for a guild
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// ListSessions retrieves every stored snapshot
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// PurgeSessions removes every stored snapshot
	PurgeSessions(ctx context.Context, input *PurgeSessionsInput) (*PurgeSessionsOutput, error)
}
