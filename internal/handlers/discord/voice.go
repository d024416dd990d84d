package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/pearl/internal/models"
	"github.com/KirkDiggler/pearl/internal/services/music"
)

// voicePermissions are needed to play in a voice channel
const voicePermissions = discordgo.PermissionVoiceConnect | discordgo.PermissionVoiceSpeak

var (
	_ music.VoiceGateway = (*VoiceGateway)(nil)
	_ guildState         = (*VoiceGateway)(nil)
)

// VoiceGateway joins voice channels over the gateway connection and answers
// voice lookups from the session state cache
type VoiceGateway struct {
	session *discordgo.Session
}

// NewVoiceGateway creates a VoiceGateway on an existing session
func NewVoiceGateway(session *discordgo.Session) *VoiceGateway {
	return &VoiceGateway{session: session}
}

// JoinChannel asks the gateway to move the bot into a voice channel. Audio is
// handled by the voice node, so only the voice state update is sent.
func (g *VoiceGateway) JoinChannel(_ context.Context, guildID, channelID string) error {
	return g.session.ChannelVoiceJoinManual(guildID, channelID, false, true)
}

// LeaveChannel disconnects the bot from voice in a guild
func (g *VoiceGateway) LeaveChannel(_ context.Context, guildID string) error {
	return g.session.ChannelVoiceJoinManual(guildID, "", false, true)
}

// ChannelMembers lists the users in a voice channel according to the state cache
func (g *VoiceGateway) ChannelMembers(guildID, channelID string) ([]models.VoiceMember, error) {
	guild, err := g.session.State.Guild(guildID)
	if err != nil {
		return nil, err
	}

	g.session.State.RLock()
	var members []models.VoiceMember
	var unknown []int
	for _, vs := range guild.VoiceStates {
		if vs.ChannelID != channelID {
			continue
		}

		member := models.VoiceMember{UserID: vs.UserID}
		if vs.Member != nil && vs.Member.User != nil {
			member.Bot = vs.Member.User.Bot
		} else {
			unknown = append(unknown, len(members))
		}
		members = append(members, member)
	}
	g.session.State.RUnlock()

	for _, idx := range unknown {
		if m, err := g.session.State.Member(guildID, members[idx].UserID); err == nil && m.User != nil {
			members[idx].Bot = m.User.Bot
		}
	}

	return members, nil
}

// VoiceChannelOf returns the voice channel a user is in, empty when they are not connected
func (g *VoiceGateway) VoiceChannelOf(guildID, userID string) string {
	vs, err := g.session.State.VoiceState(guildID, userID)
	if err != nil {
		return ""
	}
	return vs.ChannelID
}

// BotCanJoin reports whether the bot may connect and speak in a voice channel
func (g *VoiceGateway) BotCanJoin(channelID string) bool {
	if g.session.State.User == nil {
		return false
	}

	perms, err := g.session.State.UserChannelPermissions(g.session.State.User.ID, channelID)
	if err != nil {
		return false
	}
	if perms&discordgo.PermissionAdministrator != 0 {
		return true
	}
	return perms&voicePermissions == voicePermissions
}
