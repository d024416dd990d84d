package cooldown

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/pearl/internal/repositories/cooldown Repository

import "context"

// Repository tracks per-key command cooldowns
type Repository interface {
	// Acquire starts a cooldown unless one is already running
	Acquire(ctx context.Context, input *AcquireInput) (*AcquireOutput, error)

	// Release ends a cooldown early
	Release(ctx context.Context, input *ReleaseInput) error
}
