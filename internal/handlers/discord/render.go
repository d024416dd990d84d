package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"

	"github.com/KirkDiggler/pearl/internal/models"
	"github.com/KirkDiggler/pearl/internal/services/music"
)

const (
	colorInfo  = 0x00ff00
	colorError = 0xff0000
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"~", `\~`,
	"`", "\\`",
	"|", `\|`,
	"[", `\[`,
	"]", `\]`,
)

func escapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}

// formatDuration renders a track length as m:ss or h:mm:ss
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func trackLength(track models.Track) string {
	if track.IsStream {
		return "live"
	}
	return formatDuration(track.Length)
}

func trackLink(track models.Track) string {
	title := escapeMarkdown(track.Title)
	if track.URI == "" {
		return "**" + title + "**"
	}
	return fmt.Sprintf("[%s](%s)", title, track.URI)
}

func mention(userID string) string {
	return "<@" + userID + ">"
}

func renderPlay(out *music.PlayOutput) *discordgo.MessageEmbed {
	if out.PlaylistName != "" {
		return &discordgo.MessageEmbed{
			Title: "Playlist added",
			Description: fmt.Sprintf("**%s** with %d tracks\nDuration: **%s**",
				escapeMarkdown(out.PlaylistName), len(out.Added), formatDuration(out.Duration)),
			Color: colorInfo,
		}
	}

	track := out.Added[0].Track
	return &discordgo.MessageEmbed{
		Title:       "Track added",
		Description: fmt.Sprintf("%s\nDuration: **%s**", trackLink(track), trackLength(track)),
		Color:       colorInfo,
	}
}

func renderSearch(out *music.SearchOutput, now time.Time) string {
	var b strings.Builder
	for idx, track := range out.Results {
		fmt.Fprintf(&b, "`%d.` **%s** (%s)\n", idx+1, escapeMarkdown(track.Title), trackLength(track))
	}
	fmt.Fprintf(&b, "\nType the number of a track or `cancel`. Expires %s.",
		humanize.RelTime(out.ExpiresAt, now, "ago", "from now"))
	return b.String()
}

func renderQueue(out *music.QueueOutput) *discordgo.MessageEmbed {
	var b strings.Builder

	if out.Current != nil {
		fmt.Fprintf(&b, "Now playing: %s\n\n", trackLink(out.Current.Track))
	}

	if len(out.Entries) == 0 {
		b.WriteString("There's nothing in the queue.")
	}
	for idx, entry := range out.Entries {
		fmt.Fprintf(&b, "`%d.` **%s** (%s)\n",
			out.Offset+idx+1, escapeMarkdown(entry.Track.Title), escapeMarkdown(entry.Track.Author))
	}

	footer := fmt.Sprintf("Page %d/%d · %s tracks · %s",
		out.Page, out.Pages, humanize.Comma(int64(out.Total)), formatDuration(out.Duration))
	if out.Repeat {
		footer += " · loop on"
	}

	return &discordgo.MessageEmbed{
		Title:       "Queue",
		Description: b.String(),
		Color:       colorInfo,
		Footer:      &discordgo.MessageEmbedFooter{Text: footer},
	}
}

func renderNowPlaying(out *music.NowPlayingOutput) *discordgo.MessageEmbed {
	track := out.Entry.Track

	lines := []string{
		"Track: " + trackLink(track),
		"Channel: **" + escapeMarkdown(track.Author) + "**",
		fmt.Sprintf("Duration: **%s / %s**", formatDuration(out.Position), trackLength(track)),
		"Requested by: " + mention(out.Entry.RequesterID),
		out.Bar,
	}
	if out.Paused {
		lines = append(lines, "*paused*")
	}

	return &discordgo.MessageEmbed{
		Title:       "Now playing",
		Description: strings.Join(lines, "\n"),
		Color:       colorInfo,
	}
}

func renderSkip(out *music.SkipOutput, userID string) string {
	if !out.Skipped {
		return fmt.Sprintf("Voted to skip this track, `%d/%d` votes needed.", out.Votes, out.Quorum)
	}
	return fmt.Sprintf("Track skipped by %s.", mention(userID))
}

func renderNotification(n *models.Notification) *discordgo.MessageSend {
	switch n.Type {
	case models.NotificationNowPlaying:
		track := n.Entry.Track
		return &discordgo.MessageSend{
			Embeds: []*discordgo.MessageEmbed{{
				Title: "Now playing",
				Description: fmt.Sprintf("%s\nDuration: **%s**\nRequested by: %s",
					trackLink(track), trackLength(track), mention(n.Entry.RequesterID)),
				Color: colorInfo,
			}},
		}

	case models.NotificationIdleDisconnect:
		return &discordgo.MessageSend{
			Content: "I left the voice channel due to inactivity.",
		}

	case models.NotificationTrackFailed:
		title := "a track"
		if n.Entry != nil {
			title = trackLink(n.Entry.Track)
		}
		return &discordgo.MessageSend{
			Embeds: []*discordgo.MessageEmbed{{
				Title:       "Playback failed",
				Description: fmt.Sprintf("Couldn't play %s: %s", title, escapeMarkdown(n.Message)),
				Color:       colorError,
			}},
		}

	default:
		return nil
	}
}

func renderError(message string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Error",
		Description: message,
		Color:       colorError,
	}
}

func renderImage(title, url string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: title,
		Color: colorInfo,
		Image: &discordgo.MessageEmbedImage{URL: url},
	}
}

func renderAvatar(u *discordgo.User) *discordgo.MessageEmbed {
	url := u.AvatarURL(avatarSize)
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s's avatar", escapeMarkdown(u.Username)),
		Description: fmt.Sprintf("[Download](%s)", url),
		Color:       colorInfo,
		Image:       &discordgo.MessageEmbedImage{URL: url},
	}
}
