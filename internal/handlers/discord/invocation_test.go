package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReplier records replies instead of sending them
type fakeReplier struct {
	deferred int
	replies  []*reply
	err      error
}

func (f *fakeReplier) deferReply() error {
	f.deferred++
	return nil
}

func (f *fakeReplier) send(r *reply) error {
	f.replies = append(f.replies, r)
	return f.err
}

func (f *fakeReplier) last() *reply {
	if len(f.replies) == 0 {
		return nil
	}
	return f.replies[len(f.replies)-1]
}

func TestParseTextArgs(t *testing.T) {
	play := (&BaseCommand{
		Name:    "play",
		Options: []*discordgo.ApplicationCommandOption{stringOption("query", "", true)},
	}).GetCommand()
	queue := (&BaseCommand{
		Name:    "queue",
		Options: []*discordgo.ApplicationCommandOption{integerOption("page", "", false)},
	}).GetCommand()
	prefix := (&BaseCommand{
		Name: "prefix",
		Options: []*discordgo.ApplicationCommandOption{
			subcommand("show", ""),
			subcommand("set", "", stringOption("prefix", "", true)),
		},
	}).GetCommand()

	tests := []struct {
		name    string
		def     *discordgo.ApplicationCommand
		args    []string
		sub     string
		options map[string]any
		missing string
	}{
		{
			name:    "trailing string takes the rest",
			def:     play,
			args:    []string{"never", "gonna", "give"},
			options: map[string]any{"query": "never gonna give"},
		},
		{
			name:    "missing required option",
			def:     play,
			missing: "query",
		},
		{
			name:    "optional option absent",
			def:     queue,
			options: map[string]any{},
		},
		{
			name:    "integer kept as text",
			def:     queue,
			args:    []string{"2"},
			options: map[string]any{"page": "2"},
		},
		{
			name:    "subcommand defaults to the first",
			def:     prefix,
			sub:     "show",
			options: map[string]any{},
		},
		{
			name:    "subcommand selected by name",
			def:     prefix,
			args:    []string{"SET", "!"},
			sub:     "set",
			options: map[string]any{"prefix": "!"},
		},
		{
			name:    "selected subcommand still needs its options",
			def:     prefix,
			args:    []string{"set"},
			missing: "prefix",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sub, options, err := parseTextArgs(tc.def, tc.args)
			if tc.missing != "" {
				var argErr *ArgumentError
				require.ErrorAs(t, err, &argErr)
				assert.Equal(t, tc.missing, argErr.Name)
				assert.True(t, argErr.Missing)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.sub, sub)
			assert.Equal(t, tc.options, options)
		})
	}
}

func TestInvocationInt(t *testing.T) {
	inv := &Invocation{options: map[string]any{
		"slash":  float64(42),
		"text":   " 7 ",
		"broken": "seven",
	}}

	n, given, err := inv.Int("slash")
	require.NoError(t, err)
	assert.True(t, given)
	assert.Equal(t, int64(42), n)

	n, given, err = inv.Int("text")
	require.NoError(t, err)
	assert.True(t, given)
	assert.Equal(t, int64(7), n)

	_, given, err = inv.Int("absent")
	require.NoError(t, err)
	assert.False(t, given)

	_, _, err = inv.Int("broken")
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "broken", argErr.Name)
	assert.False(t, argErr.Missing)
}

func TestInvocationUserID(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "", want: ""},
		{raw: "123456789", want: "123456789"},
		{raw: "<@123456789>", want: "123456789"},
		{raw: "<@!123456789>", want: "123456789"},
		{raw: "someone", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			inv := &Invocation{options: map[string]any{"member": tc.raw}}
			got, err := inv.UserID("member")
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInvocationHasPermission(t *testing.T) {
	inv := &Invocation{Permissions: discordgo.PermissionManageChannels}
	assert.True(t, inv.HasPermission(discordgo.PermissionManageChannels))
	assert.False(t, inv.HasPermission(discordgo.PermissionManageServer))

	admin := &Invocation{Permissions: discordgo.PermissionAdministrator}
	assert.True(t, admin.HasPermission(discordgo.PermissionManageServer))
}

func TestInvocationReplies(t *testing.T) {
	replier := &fakeReplier{}
	inv := &Invocation{replier: replier}

	require.NoError(t, inv.Defer())
	require.NoError(t, inv.ReplyEphemeral("only you"))
	require.NoError(t, inv.ReplyEmbed(renderError("oops")))

	assert.Equal(t, 1, replier.deferred)
	require.Len(t, replier.replies, 2)
	assert.True(t, replier.replies[0].Ephemeral)
	assert.Equal(t, "oops", replier.replies[1].Embeds[0].Description)
}

func TestStripPrefix(t *testing.T) {
	tests := []struct {
		content string
		prefix  string
		want    string
		ok      bool
	}{
		{content: "?play song", prefix: "?", want: "play song", ok: true},
		{content: "pearl!np", prefix: "pearl!", want: "np", ok: true},
		{content: "<@42> queue", prefix: "?", want: " queue", ok: true},
		{content: "<@!42> queue", prefix: "?", want: " queue", ok: true},
		{content: "hello there", prefix: "?", ok: false},
		{content: "<@43> queue", prefix: "?", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.content, func(t *testing.T) {
			got, ok := stripPrefix(tc.content, tc.prefix, "42")
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsSearchChoice(t *testing.T) {
	assert.True(t, isSearchChoice("3"))
	assert.True(t, isSearchChoice(" 10 "))
	assert.True(t, isSearchChoice("Cancel"))
	assert.False(t, isSearchChoice("lol"))
	assert.False(t, isSearchChoice("3 please"))
}
