package messaging

import (
	"github.com/KirkDiggler/pearl/internal/common/clock"
	"github.com/KirkDiggler/pearl/internal/common/random"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"
)

// GenericErrorMessage is shown for errors without a mapping
const GenericErrorMessage = "Something went wrong while running that command. The error was reported."

// ServiceConfig holds the dependencies of the messaging service
type ServiceConfig struct {
	// Randomizer picks between message variants
	Randomizer random.Randomizer

	// Clock anchors relative cooldown times
	Clock clock.Clock
}

// GetErrorMessageInput contains the error to describe
type GetErrorMessageInput struct {
	Err error

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the message for the user
type GetErrorMessageOutput struct {
	Message string

	// Known is false when the error has no mapping and should be reported
	Known bool

	Tone MessageTone
}
