package music

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/pearl/internal/models"
	sessionRepo "github.com/KirkDiggler/pearl/internal/repositories/session"
)

// startNext pops the queue head and plays it, arming the idle timer when the queue is empty
func (s *service) startNext(ctx context.Context, p *guildPlayer) error {
	session := p.session

	if len(session.Queue) == 0 {
		session.Current = nil
		session.Position = 0
		s.armIdle(p)
		return nil
	}

	entry := session.Queue[0]
	session.Queue = session.Queue[1:]
	session.Current = &entry
	session.Position = 0
	session.Paused = false
	session.Votes.Reset()
	s.cancelIdle(p)

	if err := s.node.Play(ctx, p.guildID, entry.Track); err != nil {
		session.Current = nil
		s.armIdle(p)
		return fmt.Errorf("failed to play track: %w", err)
	}

	return nil
}

// advance moves past the current track. With stop set, the node is told to
// stop when nothing follows.
func (s *service) advance(ctx context.Context, p *guildPlayer, stop bool) error {
	session := p.session

	if session.Repeat && session.Current != nil {
		session.Queue = append(session.Queue, *session.Current)
	}

	if len(session.Queue) == 0 && stop && session.Current != nil {
		if err := s.node.Stop(ctx, p.guildID); err != nil {
			s.logger.WarnContext(ctx, "failed to stop player", "guild_id", p.guildID, "error", err)
		}
	}

	return s.startNext(ctx, p)
}

// armIdle moves the session to idle and schedules its teardown
func (s *service) armIdle(p *guildPlayer) {
	if p.idleTimer != nil {
		p.idleTimer.Stop()
	}

	p.idleGen++
	gen := p.idleGen
	p.session.State = models.SessionStateIdlePending
	p.idleTimer = s.clock.AfterFunc(s.idleTimeout, func() {
		s.expireIdle(p, gen)
	})
}

// cancelIdle disarms the idle timer and marks the session active
func (s *service) cancelIdle(p *guildPlayer) {
	if p.idleTimer != nil {
		p.idleTimer.Stop()
		p.idleTimer = nil
	}
	p.idleGen++

	if p.session != nil && p.session.State == models.SessionStateIdlePending {
		p.session.State = models.SessionStateActive
	}
}

// expireIdle runs on the timer goroutine. A stale generation means the timer
// was cancelled or re-armed after it fired.
func (s *service) expireIdle(p *guildPlayer, gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.removed || p.session == nil || p.idleGen != gen ||
		p.session.State != models.SessionStateIdlePending {
		return
	}

	ctx := context.Background()
	textChannelID := p.session.TextChannelID

	s.logger.InfoContext(ctx, "leaving voice after inactivity", "guild_id", p.guildID)
	s.teardown(ctx, p, true)

	err := s.notifier.Notify(ctx, &models.Notification{
		Type:      models.NotificationIdleDisconnect,
		GuildID:   p.guildID,
		ChannelID: textChannelID,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to announce idle disconnect", "guild_id", p.guildID, "error", err)
	}
}

// teardown ends the session: voice, node player, snapshot and registry entry
func (s *service) teardown(ctx context.Context, p *guildPlayer, leave bool) {
	if p.idleTimer != nil {
		p.idleTimer.Stop()
		p.idleTimer = nil
	}
	p.idleGen++

	if leave {
		if err := s.gateway.LeaveChannel(ctx, p.guildID); err != nil {
			s.logger.WarnContext(ctx, "failed to leave voice channel", "guild_id", p.guildID, "error", err)
		}
	}

	if err := s.node.Destroy(ctx, p.guildID); err != nil {
		s.logger.WarnContext(ctx, "failed to destroy player", "guild_id", p.guildID, "error", err)
	}

	if s.sessionRepo != nil {
		err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{GuildID: p.guildID})
		if err != nil {
			s.logger.WarnContext(ctx, "failed to delete session snapshot", "guild_id", p.guildID, "error", err)
		}
	}

	if p.session != nil {
		p.session.State = models.SessionStateAbsent
	}
	p.session = nil
	p.voice = voiceCredentials{}
	s.players.remove(p)
}
