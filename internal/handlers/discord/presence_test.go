package discord

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenceActivityAlternates(t *testing.T) {
	first := presenceActivity(0, 1234, 56789)
	assert.Equal(t, "1,234 servers", first.Name)
	assert.Equal(t, discordgo.ActivityTypeWatching, first.Type)

	second := presenceActivity(1, 1234, 56789)
	assert.Equal(t, "56,789 users", second.Name)
	assert.Equal(t, discordgo.ActivityTypeListening, second.Type)

	assert.Equal(t, first, presenceActivity(2, 1234, 56789))
}

func TestAudience(t *testing.T) {
	state := discordgo.NewState()
	require.NoError(t, state.GuildAdd(&discordgo.Guild{ID: "guild-1", MemberCount: 10}))
	require.NoError(t, state.GuildAdd(&discordgo.Guild{ID: "guild-2", MemberCount: 32}))

	guilds, users := audience(state)
	assert.Equal(t, 2, guilds)
	assert.Equal(t, 42, users)
}

func TestRotatePresenceStopsWithContext(t *testing.T) {
	bot := &Bot{
		session: &discordgo.Session{State: discordgo.NewState()},
		config:  &Config{PresenceInterval: time.Millisecond},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- bot.RotatePresence(ctx) }()

	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("presence rotation did not stop")
	}
}

func TestRotatePresenceDisabled(t *testing.T) {
	bot := &Bot{config: &Config{}}
	assert.NoError(t, bot.RotatePresence(context.Background()))
}
