package images

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/pearl/internal/services/images Service

import "context"

// Service applies image effects to pictures, usually member avatars
type Service interface {
	// Transform downloads the effect applied to the input image
	Transform(ctx context.Context, input *TransformInput) (*TransformOutput, error)
}
