package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// avatarSize is the pixel size requested for avatars, a power of two
const avatarSize = "1024"

// memberDirectory resolves users for avatar commands, preferring the state cache
type memberDirectory struct {
	session *discordgo.Session
}

var _ userLookup = (*memberDirectory)(nil)

// newMemberDirectory creates a memberDirectory on an existing session
func newMemberDirectory(session *discordgo.Session) *memberDirectory {
	return &memberDirectory{session: session}
}

// User returns a guild member's user, or the global user outside a guild
func (d *memberDirectory) User(guildID, userID string) (*discordgo.User, error) {
	if guildID != "" {
		if m, err := d.session.State.Member(guildID, userID); err == nil && m.User != nil {
			return m.User, nil
		}
		if m, err := d.session.GuildMember(guildID, userID); err == nil && m.User != nil {
			return m.User, nil
		}
	}

	u, err := d.session.User(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %s: %w", userID, err)
	}
	return u, nil
}

// staticAvatarURL is the user's avatar as a still png, animated avatars use their first frame
func staticAvatarURL(u *discordgo.User) string {
	if strings.HasPrefix(u.Avatar, "a_") {
		return discordgo.EndpointUserAvatar(u.ID, u.Avatar) + "?size=" + avatarSize
	}
	return u.AvatarURL(avatarSize)
}
