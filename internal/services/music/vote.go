package music

import (
	"context"
	"fmt"
	"math"

	"github.com/KirkDiggler/pearl/internal/models"
)

// Quorum is the number of votes needed to skip with the given number of listeners
func Quorum(ratio float64, listeners int) int {
	// the epsilon keeps exact products such as 0.7*10 from rounding up
	q := int(math.Ceil(ratio*float64(listeners) - 1e-9))
	if q < 1 {
		return 1
	}
	return q
}

// countListeners counts the non-bot members of a voice channel
func countListeners(members []models.VoiceMember) int {
	count := 0
	for _, m := range members {
		if !m.Bot {
			count++
		}
	}
	return count
}

// Skip skips the current track or records a vote to skip it
func (s *service) Skip(ctx context.Context, input *SkipInput) (*SkipOutput, error) {
	p, err := s.connected(ctx, input.Requester)
	if err != nil {
		return nil, err
	}
	defer s.players.release(p)

	session := p.session
	if !session.IsPlaying() {
		return nil, ErrBotNotPlaying
	}

	current := *session.Current

	if !isPrivileged(session, input.Requester) {
		if session.Votes.HasVoted(input.UserID) {
			return nil, ErrAlreadyVoted
		}

		members, err := s.gateway.ChannelMembers(input.GuildID, session.VoiceChannelID)
		if err != nil {
			return nil, fmt.Errorf("failed to list voice channel members: %w", err)
		}

		session.Votes.Add(input.UserID)
		votes := session.Votes.Count()
		quorum := Quorum(s.voteRatio, countListeners(members))

		if votes < quorum {
			s.persist(ctx, p)
			return &SkipOutput{
				Skipped: false,
				Entry:   current,
				Votes:   votes,
				Quorum:  quorum,
			}, nil
		}

		s.logger.InfoContext(ctx, "vote skip reached quorum",
			"guild_id", input.GuildID,
			"votes", votes,
			"quorum", quorum,
		)
	}

	session.Votes.Reset()
	if err := s.advance(ctx, p, true); err != nil {
		return nil, err
	}
	s.persist(ctx, p)

	return &SkipOutput{
		Skipped: true,
		Entry:   current,
	}, nil
}
