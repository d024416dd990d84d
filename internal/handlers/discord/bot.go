package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/pearl/internal/common/clock"
	"github.com/KirkDiggler/pearl/internal/reporting"
	"github.com/KirkDiggler/pearl/internal/services/animals"
	"github.com/KirkDiggler/pearl/internal/services/currency"
	"github.com/KirkDiggler/pearl/internal/services/images"
	"github.com/KirkDiggler/pearl/internal/services/messaging"
	"github.com/KirkDiggler/pearl/internal/services/music"
	"github.com/KirkDiggler/pearl/internal/services/settings"
)

const (
	// Intents are the gateway intents the bot needs
	Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsMessageContent

	commandTimeout = 30 * time.Second
	eventTimeout   = 10 * time.Second
)

// Bot represents the Discord bot instance
type Bot struct {
	session      *discordgo.Session
	commands     map[string]CommandHandler
	textCommands map[string]CommandHandler // Maps names and aliases to handlers
	commandIDs   map[string]string         // Maps command name to command ID
	config       *Config

	music     music.Service
	settings  settings.Service
	messaging messaging.Service
	reporter  reporting.Reporter
	logger    *slog.Logger

	presenceStep atomic.Uint64
}

// Config holds the configuration for the bot
type Config struct {
	// Session is an unopened session from NewSession
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	MusicService     music.Service
	CurrencyService  currency.Service
	SettingsService  settings.Service
	AnimalsService   animals.Service
	ImagesService    images.Service
	MessagingService messaging.Service
	Reporter         reporting.Reporter

	// PresenceInterval is how often the activity rotates, zero leaves the presence alone
	PresenceInterval time.Duration

	// VoiceGateway answers voice lookups, defaults to one on Session
	VoiceGateway *VoiceGateway

	Clock  clock.Clock
	Logger *slog.Logger
}

// NewSession creates a Discord session with the intents the bot needs
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	session.Identify.Intents = Intents
	session.StateEnabled = true
	session.State.TrackVoice = true
	session.State.TrackMembers = true

	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.MusicService == nil {
		return nil, errors.New("music service cannot be nil")
	}

	if cfg.CurrencyService == nil {
		return nil, errors.New("currency service cannot be nil")
	}

	if cfg.SettingsService == nil {
		return nil, errors.New("settings service cannot be nil")
	}

	if cfg.AnimalsService == nil {
		return nil, errors.New("animals service cannot be nil")
	}

	if cfg.ImagesService == nil {
		return nil, errors.New("images service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Reporter == nil {
		return nil, errors.New("reporter cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	voice := cfg.VoiceGateway
	if voice == nil {
		voice = NewVoiceGateway(cfg.Session)
	}

	bot := &Bot{
		session:      cfg.Session,
		commands:     make(map[string]CommandHandler),
		textCommands: make(map[string]CommandHandler),
		commandIDs:   make(map[string]string),
		config:       cfg,
		music:        cfg.MusicService,
		settings:     cfg.SettingsService,
		messaging:    cfg.MessagingService,
		reporter:     cfg.Reporter,
		logger:       logger,
	}

	musicCmds := &musicCommands{music: cfg.MusicService, state: voice, clock: clk}
	utilityCmds := &utilityCommands{
		currency:  cfg.CurrencyService,
		settings:  cfg.SettingsService,
		animals:   cfg.AnimalsService,
		clock:     clk,
		startedAt: clk.Now(),
	}
	imageCmds := &imageCommands{images: cfg.ImagesService, users: newMemberDirectory(cfg.Session)}

	handlers := append(musicCmds.handlers(), utilityCmds.handlers()...)
	for _, cmd := range append(handlers, imageCmds.handlers()...) {
		bot.addCommand(cmd)
	}

	cfg.Session.AddHandler(bot.handleReady)
	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handleMessageCreate)
	cfg.Session.AddHandler(bot.handleVoiceStateUpdate)
	cfg.Session.AddHandler(bot.handleVoiceServerUpdate)
	cfg.Session.AddHandler(bot.handleGuildCreate)
	cfg.Session.AddHandler(bot.handleGuildDelete)

	return bot, nil
}

func (b *Bot) addCommand(cmd CommandHandler) {
	b.commands[cmd.GetName()] = cmd
	b.textCommands[cmd.GetName()] = cmd
	for _, alias := range cmd.GetAliases() {
		b.textCommands[alias] = cmd
	}
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range b.commands {
		if err := b.RegisterCommand(cmd); err != nil {
			return err
		}
	}

	b.logger.Info("bot is running", "commands", len(b.commandIDs))
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Guild commands are development builds, remove them so stale definitions don't linger
	if b.config.GuildID != "" {
		appID := b.appID()
		for cmdName, cmdID := range b.commandIDs {
			if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
				b.logger.Warn("failed to delete command", "command", cmdName, "id", cmdID, slog.Any("err", err))
			}
		}
	}

	return b.session.Close()
}

// Connected reports whether the gateway connection is ready
func (b *Bot) Connected() bool {
	return b.session.DataReady
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Debug("registered command", "command", cmd.GetName(), "id", createdCmd.ID, "guild_id", b.config.GuildID)

	return nil
}

func (b *Bot) handleReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("connected to discord",
		"user", r.User.Username,
		"guilds", len(r.Guilds),
	)

	if b.config.PresenceInterval > 0 {
		b.updatePresence(context.Background())
	}
}

// handleInteraction handles slash commands
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand || i.GuildID == "" {
		return
	}

	cmd, ok := b.commands[i.ApplicationCommandData().Name]
	if !ok {
		return
	}

	b.run(cmd, newSlashInvocation(s, i))
}

// handleMessageCreate handles prefixed text commands and replies to pending searches
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	prefix, err := b.settings.GetPrefix(ctx, &settings.GetPrefixInput{GuildID: m.GuildID})
	if err != nil {
		b.logger.ErrorContext(ctx, "failed to get prefix", "guild_id", m.GuildID, slog.Any("err", err))
		return
	}

	botID := ""
	if s.State.User != nil {
		botID = s.State.User.ID
	}

	content, ok := stripPrefix(m.Content, prefix.Prefix, botID)
	if !ok {
		if isSearchChoice(m.Content) && b.music.HasPendingSearch(m.GuildID, m.Author.ID) {
			b.runText(s, m, b.commands["pick"], []string{strings.TrimSpace(m.Content)})
		}
		return
	}

	fields := strings.Fields(content)
	if len(fields) == 0 {
		return
	}

	cmd, ok := b.textCommands[strings.ToLower(fields[0])]
	if !ok {
		return
	}

	b.runText(s, m, cmd, fields[1:])
}

func (b *Bot) runText(s *discordgo.Session, m *discordgo.MessageCreate, cmd CommandHandler, args []string) {
	permissions, err := s.State.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil {
		b.logger.Debug("permissions unavailable", "user_id", m.Author.ID, "channel_id", m.ChannelID, slog.Any("err", err))
	}

	inv, err := newTextInvocation(s, m, cmd.GetCommand(), args, permissions)
	if err != nil {
		inv = &Invocation{
			GuildID:   m.GuildID,
			ChannelID: m.ChannelID,
			User:      m.Author,
			replier:   &messageReplier{session: s, message: m.Message},
		}
		b.replyError(context.Background(), cmd.GetName(), inv, err)
		return
	}

	b.run(cmd, inv)
}

func (b *Bot) run(cmd CommandHandler, inv *Invocation) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if err := cmd.Handle(ctx, inv); err != nil {
		b.replyError(ctx, cmd.GetName(), inv, err)
	}
}

// replyError tells the invoker what went wrong, reporting errors without a friendly message
func (b *Bot) replyError(ctx context.Context, name string, inv *Invocation, err error) {
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		message := fmt.Sprintf("Invalid value for `%s`.", argErr.Name)
		if argErr.Missing {
			message = fmt.Sprintf("Missing required argument `%s`.", argErr.Name)
		}
		b.sendError(ctx, name, inv, message)
		return
	}

	message := messaging.GenericErrorMessage
	out, msgErr := b.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr == nil {
		message = out.Message
	}

	if msgErr != nil || !out.Known {
		eventID := b.reporter.Report(ctx, reporting.ErrorContext{
			Command: name,
			GuildID: inv.GuildID,
			UserID:  inv.User.ID,
		}, err)
		if eventID != "" {
			message += fmt.Sprintf(" (`%s`)", eventID)
		}
	}

	b.sendError(ctx, name, inv, message)
}

func (b *Bot) sendError(ctx context.Context, name string, inv *Invocation, message string) {
	if err := inv.ReplyEmbed(renderError(message)); err != nil {
		b.logger.WarnContext(ctx, "failed to send error reply", "command", name, slog.Any("err", err))
	}
}

func (b *Bot) handleVoiceStateUpdate(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	if s.State.User == nil || v.UserID != s.State.User.ID {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	err := b.music.UpdateVoiceState(ctx, &music.UpdateVoiceStateInput{
		GuildID:   v.GuildID,
		ChannelID: v.ChannelID,
		SessionID: v.SessionID,
	})
	if err != nil {
		b.reporter.Report(ctx, reporting.ErrorContext{Event: "voice_state_update", GuildID: v.GuildID}, err)
	}
}

func (b *Bot) handleVoiceServerUpdate(_ *discordgo.Session, v *discordgo.VoiceServerUpdate) {
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	err := b.music.UpdateVoiceServer(ctx, &music.UpdateVoiceServerInput{
		GuildID:  v.GuildID,
		Token:    v.Token,
		Endpoint: v.Endpoint,
	})
	if err != nil {
		b.reporter.Report(ctx, reporting.ErrorContext{Event: "voice_server_update", GuildID: v.GuildID}, err)
	}
}

func (b *Bot) handleGuildCreate(_ *discordgo.Session, g *discordgo.GuildCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	if err := b.settings.EnsureGuild(ctx, &settings.EnsureGuildInput{GuildID: g.ID}); err != nil {
		b.reporter.Report(ctx, reporting.ErrorContext{Event: "guild_create", GuildID: g.ID}, err)
	}
}

func (b *Bot) handleGuildDelete(_ *discordgo.Session, g *discordgo.GuildDelete) {
	// An unavailable guild is an outage, not a removal
	if g.Unavailable {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	b.logger.InfoContext(ctx, "removed from guild", "guild_id", g.ID)
	if err := b.settings.RemoveGuild(ctx, &settings.RemoveGuildInput{GuildID: g.ID}); err != nil {
		b.reporter.Report(ctx, reporting.ErrorContext{Event: "guild_delete", GuildID: g.ID}, err)
	}
}

// stripPrefix removes the guild prefix or a leading bot mention from a message
func stripPrefix(content, prefix, botID string) (string, bool) {
	if prefix != "" && strings.HasPrefix(content, prefix) {
		return content[len(prefix):], true
	}

	if botID == "" {
		return "", false
	}
	for _, m := range []string{"<@" + botID + ">", "<@!" + botID + ">"} {
		if strings.HasPrefix(content, m) {
			return content[len(m):], true
		}
	}
	return "", false
}

// isSearchChoice reports whether a plain message answers a search prompt
func isSearchChoice(content string) bool {
	content = strings.TrimSpace(content)
	if strings.EqualFold(content, "cancel") {
		return true
	}
	_, err := strconv.Atoi(content)
	return err == nil
}
