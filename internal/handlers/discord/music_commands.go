package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/pearl/internal/common/clock"
	"github.com/KirkDiggler/pearl/internal/models"
	"github.com/KirkDiggler/pearl/internal/services/music"
)

// guildState answers voice and permission lookups from the gateway cache
type guildState interface {
	// VoiceChannelOf returns the user's voice channel, empty when not connected
	VoiceChannelOf(guildID, userID string) string

	// BotCanJoin reports whether the bot may connect and speak in a voice channel
	BotCanJoin(channelID string) bool
}

// musicCommands builds the music command handlers
type musicCommands struct {
	music music.Service
	state guildState
	clock clock.Clock
}

func (c *musicCommands) requester(inv *Invocation) music.Requester {
	return music.Requester{
		GuildID:        inv.GuildID,
		TextChannelID:  inv.ChannelID,
		UserID:         inv.User.ID,
		VoiceChannelID: c.state.VoiceChannelOf(inv.GuildID, inv.User.ID),
		Privileged:     inv.HasPermission(discordgo.PermissionManageChannels),
	}
}

func (c *musicCommands) canConnect(req music.Requester) bool {
	if req.VoiceChannelID == "" {
		return false
	}
	return c.state.BotCanJoin(req.VoiceChannelID)
}

// handlers returns every music command
func (c *musicCommands) handlers() []CommandHandler {
	return []CommandHandler{
		&command{
			BaseCommand: BaseCommand{
				Name:        "play",
				Description: "Play a track or playlist from a link or a search",
				Aliases:     []string{"p"},
				Options:     []*discordgo.ApplicationCommandOption{stringOption("query", "A link or search terms", true)},
			},
			handle: c.play,
		},
		&command{
			BaseCommand: BaseCommand{
				Name:        "search",
				Description: "Search for tracks and pick one to play",
				Options:     []*discordgo.ApplicationCommandOption{stringOption("query", "Search terms", true)},
			},
			handle: c.search,
		},
		&command{
			BaseCommand: BaseCommand{
				Name:        "pick",
				Description: "Pick one of your search results",
				Options:     []*discordgo.ApplicationCommandOption{stringOption("choice", "A result number or cancel", true)},
			},
			handle: c.pick,
		},
		&command{
			BaseCommand: BaseCommand{Name: "pause", Description: "Pause playback"},
			handle:      c.pause,
		},
		&command{
			BaseCommand: BaseCommand{Name: "resume", Description: "Resume playback"},
			handle:      c.resume,
		},
		&command{
			BaseCommand: BaseCommand{Name: "skip", Description: "Skip the current track or vote to skip it", Aliases: []string{"s"}},
			handle:      c.skip,
		},
		&command{
			BaseCommand: BaseCommand{
				Name:        "seek",
				Description: "Jump to a position in the current track",
				Options:     []*discordgo.ApplicationCommandOption{integerOption("seconds", "Position in seconds", true)},
			},
			handle: c.seek,
		},
		&command{
			BaseCommand: BaseCommand{
				Name:        "volume",
				Description: "Set the player volume",
				Aliases:     []string{"vol"},
				Options:     []*discordgo.ApplicationCommandOption{integerOption("value", "Volume from 0 to 100", true)},
			},
			handle: c.volume,
		},
		&command{
			BaseCommand: BaseCommand{Name: "nowplaying", Description: "Show the current track", Aliases: []string{"np"}},
			handle:      c.nowPlaying,
		},
		&command{
			BaseCommand: BaseCommand{Name: "disconnect", Description: "Stop playback and leave the voice channel", Aliases: []string{"dc", "stop"}},
			handle:      c.disconnect,
		},
		&command{
			BaseCommand: BaseCommand{
				Name:        "queue",
				Description: "Show the queue",
				Aliases:     []string{"q"},
				Options:     []*discordgo.ApplicationCommandOption{integerOption("page", "Page number", false)},
			},
			handle: c.queue,
		},
		&command{
			BaseCommand: BaseCommand{Name: "shuffle", Description: "Shuffle the queue"},
			handle:      c.shuffle,
		},
		&command{
			BaseCommand: BaseCommand{Name: "loopqueue", Description: "Toggle looping the queue", Aliases: []string{"lq", "repeatqueue", "rq"}},
			handle:      c.loopQueue,
		},
		&command{
			BaseCommand: BaseCommand{
				Name:        "remove",
				Description: "Remove a track from the queue",
				Options:     []*discordgo.ApplicationCommandOption{integerOption("index", "Queue position", true)},
			},
			handle: c.remove,
		},
		&command{
			BaseCommand: BaseCommand{Name: "clear", Description: "Empty the queue"},
			handle:      c.clear,
		},
	}
}

func (c *musicCommands) play(ctx context.Context, inv *Invocation) error {
	if err := inv.Defer(); err != nil {
		return err
	}

	req := c.requester(inv)
	out, err := c.music.Play(ctx, &music.PlayInput{
		Requester:  req,
		Query:      inv.String("query"),
		CanConnect: c.canConnect(req),
	})
	if err != nil {
		return err
	}

	return inv.ReplyEmbed(renderPlay(out))
}

func (c *musicCommands) search(ctx context.Context, inv *Invocation) error {
	if err := inv.Defer(); err != nil {
		return err
	}

	req := c.requester(inv)
	out, err := c.music.Search(ctx, &music.SearchInput{
		Requester:  req,
		Query:      inv.String("query"),
		CanConnect: c.canConnect(req),
	})
	if err != nil {
		return err
	}

	return inv.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       "Search results",
		Description: renderSearch(out, c.clock.Now()),
		Color:       colorInfo,
	})
}

func (c *musicCommands) pick(ctx context.Context, inv *Invocation) error {
	req := c.requester(inv)
	out, err := c.music.Pick(ctx, &music.PickInput{
		Requester:  req,
		Choice:     inv.String("choice"),
		CanConnect: c.canConnect(req),
	})
	if err != nil {
		return err
	}

	if out.Cancelled {
		return inv.Reply("Search cancelled.")
	}

	return inv.ReplyEmbed(renderPlay(&music.PlayOutput{
		Added:    []models.QueueEntry{*out.Added},
		Duration: out.Added.Track.Length,
		Started:  out.Started,
	}))
}

func (c *musicCommands) pause(ctx context.Context, inv *Invocation) error {
	if _, err := c.music.Pause(ctx, &music.PauseInput{Requester: c.requester(inv)}); err != nil {
		return err
	}
	return inv.Reply("⏸ Paused.")
}

func (c *musicCommands) resume(ctx context.Context, inv *Invocation) error {
	if _, err := c.music.Resume(ctx, &music.ResumeInput{Requester: c.requester(inv)}); err != nil {
		return err
	}
	return inv.Reply("▶ Resumed.")
}

func (c *musicCommands) skip(ctx context.Context, inv *Invocation) error {
	out, err := c.music.Skip(ctx, &music.SkipInput{Requester: c.requester(inv)})
	if err != nil {
		return err
	}
	return inv.Reply(renderSkip(out, inv.User.ID))
}

func (c *musicCommands) seek(ctx context.Context, inv *Invocation) error {
	seconds, _, err := inv.Int("seconds")
	if err != nil {
		return err
	}

	out, err := c.music.Seek(ctx, &music.SeekInput{Requester: c.requester(inv), Seconds: int(seconds)})
	if err != nil {
		return err
	}
	return inv.Reply(fmt.Sprintf("Moved to **%s**.", formatDuration(out.Position)))
}

func (c *musicCommands) volume(ctx context.Context, inv *Invocation) error {
	value, _, err := inv.Int("value")
	if err != nil {
		return err
	}

	out, err := c.music.Volume(ctx, &music.VolumeInput{Requester: c.requester(inv), Volume: int(value)})
	if err != nil {
		return err
	}
	return inv.Reply(fmt.Sprintf("🔊 Volume set to **%d%%**.", out.Volume))
}

func (c *musicCommands) nowPlaying(ctx context.Context, inv *Invocation) error {
	out, err := c.music.NowPlaying(ctx, &music.NowPlayingInput{Requester: c.requester(inv)})
	if err != nil {
		return err
	}
	return inv.ReplyEmbed(renderNowPlaying(out))
}

func (c *musicCommands) disconnect(ctx context.Context, inv *Invocation) error {
	if _, err := c.music.Disconnect(ctx, &music.DisconnectInput{Requester: c.requester(inv)}); err != nil {
		return err
	}
	return inv.Reply("Disconnected.")
}

func (c *musicCommands) queue(ctx context.Context, inv *Invocation) error {
	page, given, err := inv.Int("page")
	if err != nil {
		return err
	}
	if !given {
		page = 1
	}

	out, err := c.music.Queue(ctx, &music.QueueInput{Requester: c.requester(inv), Page: int(page)})
	if err != nil {
		return err
	}
	return inv.ReplyEmbed(renderQueue(out))
}

func (c *musicCommands) shuffle(ctx context.Context, inv *Invocation) error {
	out, err := c.music.Shuffle(ctx, &music.ShuffleInput{Requester: c.requester(inv)})
	if err != nil {
		return err
	}
	return inv.Reply(fmt.Sprintf("🔀 Shuffled %d tracks.", out.Count))
}

func (c *musicCommands) loopQueue(ctx context.Context, inv *Invocation) error {
	out, err := c.music.LoopQueue(ctx, &music.LoopQueueInput{Requester: c.requester(inv)})
	if err != nil {
		return err
	}
	if out.Repeat {
		return inv.Reply("🔁 Looping the queue.")
	}
	return inv.Reply("Stopped looping the queue.")
}

func (c *musicCommands) remove(ctx context.Context, inv *Invocation) error {
	index, _, err := inv.Int("index")
	if err != nil {
		return err
	}

	out, err := c.music.Remove(ctx, &music.RemoveInput{Requester: c.requester(inv), Index: int(index)})
	if err != nil {
		return err
	}
	return inv.Reply(fmt.Sprintf("Removed %s from the queue.", trackLink(out.Removed.Track)))
}

func (c *musicCommands) clear(ctx context.Context, inv *Invocation) error {
	out, err := c.music.Clear(ctx, &music.ClearInput{Requester: c.requester(inv)})
	if err != nil {
		return err
	}
	return inv.Reply(fmt.Sprintf("Cleared %d tracks from the queue.", out.Removed))
}
