package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetErrorMessage returns a user-friendly message for a command error
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
