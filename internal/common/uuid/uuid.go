package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/pearl/internal/common/uuid UUID

// UUID hands out identifiers for sessions and queue entries
type UUID interface {
	NewUUID() string
}

var _ UUID = (*DefaultUUID)(nil)

// DefaultUUID generates random (v4) UUIDs
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID string
func (d *DefaultUUID) NewUUID() string {
	return uuid.NewString()
}
