package music

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/pearl/internal/models"
)

// UpdateVoiceServer records voice server credentials sent to the bot
func (s *service) UpdateVoiceServer(ctx context.Context, input *UpdateVoiceServerInput) error {
	p := s.players.acquire(input.GuildID, false)
	if p == nil {
		return nil
	}
	defer s.players.release(p)

	if p.session == nil {
		return nil
	}

	p.voice.token = input.Token
	p.voice.endpoint = input.Endpoint

	return s.forwardVoice(ctx, p)
}

// UpdateVoiceState records the bot's own voice state
func (s *service) UpdateVoiceState(ctx context.Context, input *UpdateVoiceStateInput) error {
	p := s.players.acquire(input.GuildID, false)
	if p == nil {
		return nil
	}
	defer s.players.release(p)

	if p.session == nil {
		return nil
	}

	if input.ChannelID == "" {
		// a session that has not seen its own join yet is hearing the previous session's leave
		if p.session.State == models.SessionStateConnecting && p.voice.sessionID == "" {
			s.logger.DebugContext(ctx, "ignoring stale voice leave", "guild_id", input.GuildID)
			return nil
		}

		s.logger.InfoContext(ctx, "bot left voice", "guild_id", input.GuildID)
		s.teardown(ctx, p, false)
		return nil
	}

	if input.ChannelID != p.session.VoiceChannelID {
		p.session.VoiceChannelID = input.ChannelID
		p.session.Votes.Reset()
	}
	p.voice.sessionID = input.SessionID

	return s.forwardVoice(ctx, p)
}

// forwardVoice hands complete credentials to the node and activates a connecting session
func (s *service) forwardVoice(ctx context.Context, p *guildPlayer) error {
	if !p.voice.complete() {
		return nil
	}
	defer s.persist(ctx, p)

	err := s.node.UpdateVoice(ctx, p.guildID, models.VoiceServer{
		Token:     p.voice.token,
		Endpoint:  p.voice.endpoint,
		SessionID: p.voice.sessionID,
	})
	if err != nil {
		return fmt.Errorf("failed to forward voice update: %w", err)
	}

	if p.session.State != models.SessionStateConnecting {
		return nil
	}

	p.session.State = models.SessionStateActive
	s.logger.InfoContext(ctx, "music session active", "guild_id", p.guildID)

	if p.session.Volume != DefaultVolume {
		if err := s.node.SetVolume(ctx, p.guildID, p.session.Volume); err != nil {
			s.logger.WarnContext(ctx, "failed to restore volume", "guild_id", p.guildID, "error", err)
		}
	}

	return s.startNext(ctx, p)
}

// HandleEvent applies a voice node event to the guild's session
func (s *service) HandleEvent(ctx context.Context, event models.PlayerEvent) error {
	if event.Type == models.PlayerEventNodeReady {
		if !event.Resumed {
			s.restorePlayers(ctx)
		}
		return nil
	}

	p := s.players.acquire(event.GuildID, false)
	if p == nil {
		return nil
	}
	defer s.players.release(p)

	session := p.session
	if session == nil {
		return nil
	}

	switch event.Type {
	case models.PlayerEventTrackStart:
		session.Votes.Reset()
		s.cancelIdle(p)
		s.persist(ctx, p)

		if session.Current == nil {
			return nil
		}
		entry := *session.Current
		return s.notifier.Notify(ctx, &models.Notification{
			Type:      models.NotificationNowPlaying,
			GuildID:   p.guildID,
			ChannelID: session.TextChannelID,
			Entry:     &entry,
		})

	case models.PlayerEventTrackEnd:
		session.Votes.Reset()
		if !event.EndReason.MayStartNext() || !isCurrent(session, event.Track) {
			s.persist(ctx, p)
			return nil
		}
		defer s.persist(ctx, p)
		return s.advance(ctx, p, false)

	case models.PlayerEventTrackStuck:
		if !isCurrent(session, event.Track) {
			return nil
		}
		s.logger.WarnContext(ctx, "track stuck", "guild_id", p.guildID, "threshold", event.Position)
		defer s.persist(ctx, p)
		return s.advance(ctx, p, true)

	case models.PlayerEventTrackException:
		s.logger.WarnContext(ctx, "track exception", "guild_id", p.guildID, "message", event.Message)
		if session.Current == nil {
			return nil
		}
		entry := *session.Current
		return s.notifier.Notify(ctx, &models.Notification{
			Type:      models.NotificationTrackFailed,
			GuildID:   p.guildID,
			ChannelID: session.TextChannelID,
			Entry:     &entry,
			Message:   event.Message,
		})

	case models.PlayerEventQueueEnd:
		if session.IsPlaying() || session.State == models.SessionStateConnecting {
			return nil
		}
		s.armIdle(p)
		s.persist(ctx, p)

	case models.PlayerEventPlayerUpdate:
		session.Position = event.Position
		s.persist(ctx, p)

	case models.PlayerEventVoiceClosed:
		if voiceCloseRecoverable(event.Code) {
			// the gateway voice state decides whether the bot moved or left
			s.logger.InfoContext(ctx, "voice connection interrupted",
				"guild_id", p.guildID,
				"code", event.Code,
				"reason", event.Message,
			)
			return nil
		}

		s.logger.InfoContext(ctx, "voice connection closed",
			"guild_id", p.guildID,
			"code", event.Code,
			"reason", event.Message,
		)
		s.teardown(ctx, p, true)

	default:
		s.logger.DebugContext(ctx, "ignoring player event", "guild_id", p.guildID, "type", event.Type.String())
	}

	return nil
}

// restorePlayers rebuilds every connected session's player on a node that
// lost them: voice credentials, the current track at its last position,
// pause and volume
func (s *service) restorePlayers(ctx context.Context) {
	for _, guildID := range s.players.guildIDs() {
		p := s.players.acquire(guildID, false)
		if p == nil {
			continue
		}
		if err := s.restorePlayer(ctx, p); err != nil {
			s.logger.WarnContext(ctx, "failed to restore player", "guild_id", guildID, "error", err)
		}
		s.players.release(p)
	}
}

func (s *service) restorePlayer(ctx context.Context, p *guildPlayer) error {
	session := p.session
	if session == nil || session.State == models.SessionStateConnecting || !p.voice.complete() {
		return nil
	}

	err := s.node.UpdateVoice(ctx, p.guildID, models.VoiceServer{
		Token:     p.voice.token,
		Endpoint:  p.voice.endpoint,
		SessionID: p.voice.sessionID,
	})
	if err != nil {
		return fmt.Errorf("failed to forward voice update: %w", err)
	}

	if session.Volume != DefaultVolume {
		if err := s.node.SetVolume(ctx, p.guildID, session.Volume); err != nil {
			return fmt.Errorf("failed to restore volume: %w", err)
		}
	}

	if session.Current == nil {
		return nil
	}

	s.logger.InfoContext(ctx, "restoring track after node reconnect",
		"guild_id", p.guildID,
		"position", session.Position,
	)
	if err := s.node.Play(ctx, p.guildID, session.Current.Track); err != nil {
		defer s.persist(ctx, p)
		return errors.Join(fmt.Errorf("failed to restart track: %w", err), s.advance(ctx, p, false))
	}
	if session.Position > 0 {
		if err := s.node.Seek(ctx, p.guildID, session.Position); err != nil {
			return fmt.Errorf("failed to restore position: %w", err)
		}
	}
	if session.Paused {
		if err := s.node.Pause(ctx, p.guildID, true); err != nil {
			return fmt.Errorf("failed to restore pause: %w", err)
		}
	}
	return nil
}

// Discord voice close codes that a fresh voice state or server update can recover from
const (
	voiceCloseSessionInvalid = 4006
	voiceCloseDisconnected   = 4014
	voiceCloseServerCrashed  = 4015
)

func voiceCloseRecoverable(code int) bool {
	switch code {
	case voiceCloseSessionInvalid, voiceCloseDisconnected, voiceCloseServerCrashed:
		return true
	}
	return false
}

// isCurrent reports whether an event refers to the playing track
func isCurrent(session *models.MusicSession, encoded string) bool {
	if session.Current == nil {
		return false
	}
	return encoded == "" || session.Current.Track.Encoded == encoded
}
