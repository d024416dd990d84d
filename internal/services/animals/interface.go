package animals

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/pearl/internal/services/animals Service

import "context"

// Service fetches random animal pictures
type Service interface {
	// RandomCat returns the URL of a random cat picture
	RandomCat(ctx context.Context) (*MediaOutput, error)

	// RandomDog returns the URL of a random dog picture
	RandomDog(ctx context.Context) (*MediaOutput, error)
}
