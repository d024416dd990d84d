package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/KirkDiggler/pearl/internal/common/clock"
	"github.com/KirkDiggler/pearl/internal/common/random"
	"github.com/KirkDiggler/pearl/internal/services/animals"
	"github.com/KirkDiggler/pearl/internal/services/currency"
	"github.com/KirkDiggler/pearl/internal/services/images"
	"github.com/KirkDiggler/pearl/internal/services/music"
	"github.com/KirkDiggler/pearl/internal/services/settings"
)

// errorMessages maps domain errors to message variants, keyed by tone
var errorMessages = map[error]map[MessageTone][]string{
	music.ErrRequesterNotConnected: {
		ToneNeutral: {"Join a voice channel before using music commands."},
		ToneFunny: {
			"Join a voice channel before using music commands.",
			"I can't DJ for an empty room. Hop into a voice channel first!",
		},
	},
	music.ErrBotNotConnected: {
		ToneNeutral: {"I'm not connected to a voice channel."},
	},
	music.ErrCannotConnect: {
		ToneNeutral: {"I can't join your channel. Do I have permission to **connect and speak** there?"},
	},
	music.ErrWrongChannel: {
		ToneNeutral: {"You need to be in the same voice channel as me."},
	},
	music.ErrNothingFound: {
		ToneNeutral: {"No tracks found."},
		ToneFunny: {
			"No tracks found.",
			"I searched everywhere and came back empty handed.",
		},
	},
	music.ErrAlreadyPaused: {
		ToneNeutral: {"The music is already paused."},
	},
	music.ErrAlreadyResumed: {
		ToneNeutral: {"The music isn't paused."},
	},
	music.ErrInvalidSeekTime: {
		ToneNeutral: {"That's not a valid time."},
	},
	music.ErrInvalidVolume: {
		ToneNeutral: {"Volume must be between 0 and 100."},
	},
	music.ErrNotDJ: {
		ToneNeutral: {"You're not the DJ and you don't have permission to use this command."},
	},
	music.ErrAlreadyVoted: {
		ToneNeutral: {"You already voted to skip this track."},
		ToneFunny: {
			"You already voted to skip this track.",
			"One vote per person! Convince your friends instead.",
		},
	},
	music.ErrInvalidValueIndex: {
		ToneNeutral: {"That's not a valid number."},
	},
	music.ErrInvalidMusicIndex: {
		ToneNeutral: {"That number isn't on the list."},
	},
	music.ErrCannotRemoveMusic: {
		ToneNeutral: {"There's no track at that position."},
	},
	music.ErrNothingInQueue: {
		ToneNeutral: {"The queue is empty."},
	},
	music.ErrBotNotPlaying: {
		ToneNeutral: {"I'm not playing anything."},
	},
	music.ErrNoPendingSearch: {
		ToneNeutral: {"You have no search waiting for a pick. Use search first."},
	},
	settings.ErrPrefixTooLong: {
		ToneNeutral: {"That prefix is too long."},
	},
	settings.ErrEmptyPrefix: {
		ToneNeutral: {"The prefix can't be empty."},
	},
	settings.ErrSamePrefix: {
		ToneNeutral: {"That's already this server's prefix."},
	},
	settings.ErrMissingPermission: {
		ToneNeutral: {"You need the **Manage Server** permission to do that."},
	},
	animals.ErrBadResponse: {
		ToneNeutral: {"The picture service didn't answer properly. Try again later."},
		ToneFunny: {
			"The animals are napping. Try again later.",
			"The picture service didn't answer properly. Try again later.",
		},
	},
	images.ErrMissingToken: {
		ToneNeutral: {"Image commands aren't set up on this bot."},
	},
	images.ErrBadResponse: {
		ToneNeutral: {"The image service couldn't edit that picture. Try again later."},
		ToneFunny: {
			"The image service couldn't edit that picture. Try again later.",
			"My paintbrush broke. Try again later.",
		},
	},
}

// service implements the Service interface
type service struct {
	randomizer random.Randomizer
	clock      clock.Clock
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}

	if config.Randomizer == nil {
		return nil, errors.New("randomizer cannot be nil")
	}

	if config.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &service{
		randomizer: config.Randomizer,
		clock:      config.Clock,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("error cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneNeutral
	}

	var cooldownErr *currency.CooldownError
	if errors.As(input.Err, &cooldownErr) {
		return &GetErrorMessageOutput{
			Message: s.cooldownMessage(cooldownErr),
			Known:   true,
			Tone:    tone,
		}, nil
	}

	for target, variants := range errorMessages {
		if !errors.Is(input.Err, target) {
			continue
		}

		messages, ok := variants[tone]
		if !ok {
			messages = variants[ToneNeutral]
		}

		return &GetErrorMessageOutput{
			Message: messages[s.randomizer.Intn(len(messages))],
			Known:   true,
			Tone:    tone,
		}, nil
	}

	return &GetErrorMessageOutput{
		Message: GenericErrorMessage,
		Known:   false,
		Tone:    ToneNeutral,
	}, nil
}

func (s *service) cooldownMessage(err *currency.CooldownError) string {
	now := s.clock.Now()
	wait := strings.TrimSpace(humanize.RelTime(now, now.Add(err.RetryAfter), "", ""))
	return fmt.Sprintf("Wait **%s** to use this command again.", wait)
}
