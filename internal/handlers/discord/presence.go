package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"
)

// presenceStatus is shown next to the bot in member lists
const presenceStatus = "dnd"

// RotatePresence cycles the bot's activity between its server and user counts
// every Config.PresenceInterval until ctx is done. A non-positive interval
// disables rotation.
func (b *Bot) RotatePresence(ctx context.Context) error {
	interval := b.config.PresenceInterval
	if interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if b.Connected() {
				b.updatePresence(ctx)
			}
		}
	}
}

// updatePresence shows the next activity in the rotation
func (b *Bot) updatePresence(ctx context.Context) {
	step := b.presenceStep.Add(1) - 1
	guilds, users := audience(b.session.State)
	err := b.session.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status:     presenceStatus,
		Activities: []*discordgo.Activity{presenceActivity(step, guilds, users)},
	})
	if err != nil {
		b.logger.WarnContext(ctx, "failed to update presence", "error", err)
	}
}

// presenceActivity is the activity shown at a rotation step
func presenceActivity(step uint64, guilds, users int) *discordgo.Activity {
	if step%2 == 0 {
		return &discordgo.Activity{
			Name: fmt.Sprintf("%s servers", humanize.Comma(int64(guilds))),
			Type: discordgo.ActivityTypeWatching,
		}
	}
	return &discordgo.Activity{
		Name: fmt.Sprintf("%s users", humanize.Comma(int64(users))),
		Type: discordgo.ActivityTypeListening,
	}
}

// audience counts the guilds in the state cache and their members
func audience(state *discordgo.State) (guilds, users int) {
	state.RLock()
	defer state.RUnlock()

	for _, g := range state.Guilds {
		users += g.MemberCount
	}
	return len(state.Guilds), users
}
