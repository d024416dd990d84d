package discord

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/KirkDiggler/pearl/internal/common/clock/mocks"
	randomMocks "github.com/KirkDiggler/pearl/internal/common/random/mocks"
	"github.com/KirkDiggler/pearl/internal/reporting"
	reportingMocks "github.com/KirkDiggler/pearl/internal/reporting/mocks"
	animalsMocks "github.com/KirkDiggler/pearl/internal/services/animals/mocks"
	currencyMocks "github.com/KirkDiggler/pearl/internal/services/currency/mocks"
	imagesMocks "github.com/KirkDiggler/pearl/internal/services/images/mocks"
	"github.com/KirkDiggler/pearl/internal/services/messaging"
	"github.com/KirkDiggler/pearl/internal/services/music"
	"github.com/KirkDiggler/pearl/internal/services/music/musicmocks"
	"github.com/KirkDiggler/pearl/internal/services/settings"
	settingsMocks "github.com/KirkDiggler/pearl/internal/services/settings/mocks"
)

type BotTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockMusic    *musicmocks.MockService
	mockSettings *settingsMocks.MockService
	mockReporter *reportingMocks.MockReporter
	mockClock    *clockMocks.MockClock
	session      *discordgo.Session
	bot          *Bot
	replier      *fakeReplier
	ctx          context.Context
}

func (s *BotTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMusic = musicmocks.NewMockService(s.mockCtrl)
	s.mockSettings = settingsMocks.NewMockService(s.mockCtrl)
	s.mockReporter = reportingMocks.NewMockReporter(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	mockRandom := randomMocks.NewMockRandomizer(s.mockCtrl)
	mockRandom.EXPECT().Intn(gomock.Any()).Return(0).AnyTimes()
	s.mockClock.EXPECT().Now().Return(time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)).AnyTimes()

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Randomizer: mockRandom,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)

	s.session = &discordgo.Session{State: discordgo.NewState()}
	s.session.State.User = &discordgo.User{ID: "bot"}

	s.bot, err = New(&Config{
		Session:          s.session,
		MusicService:     s.mockMusic,
		CurrencyService:  currencyMocks.NewMockService(s.mockCtrl),
		SettingsService:  s.mockSettings,
		AnimalsService:   animalsMocks.NewMockService(s.mockCtrl),
		ImagesService:    imagesMocks.NewMockService(s.mockCtrl),
		MessagingService: messagingSvc,
		Reporter:         s.mockReporter,
		Clock:            s.mockClock,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	s.Require().NoError(err)

	s.replier = &fakeReplier{}
}

func (s *BotTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBotTestSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}

func (s *BotTestSuite) invocation() *Invocation {
	return &Invocation{
		GuildID:   "guild-1",
		ChannelID: "text-1",
		User:      &discordgo.User{ID: "user-1"},
		options:   map[string]any{},
		replier:   s.replier,
	}
}

func (s *BotTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{Session: s.session})
	s.EqualError(err, "music service cannot be nil")
}

func (s *BotTestSuite) TestCommandsRegisteredWithAliases() {
	for _, name := range []string{"play", "p", "queue", "q", "dc", "stop", "bank", "bal", "randomcat", "prefix", "pick", "avatar", "pfp", "pixelate", "whyareyougae", "jail"} {
		_, ok := s.bot.textCommands[name]
		s.True(ok, "missing text command %q", name)
	}
	_, ok := s.bot.commands["p"]
	s.False(ok, "aliases are not slash commands")
}

func (s *BotTestSuite) TestReplyErrorArgument() {
	s.bot.replyError(s.ctx, "volume", s.invocation(), &ArgumentError{Name: "value"})

	s.Equal("Invalid value for `value`.", s.replier.last().Embeds[0].Description)
}

func (s *BotTestSuite) TestReplyErrorMissingArgument() {
	s.bot.replyError(s.ctx, "play", s.invocation(), &ArgumentError{Name: "query", Missing: true})

	s.Equal("Missing required argument `query`.", s.replier.last().Embeds[0].Description)
}

func (s *BotTestSuite) TestReplyErrorKnown() {
	s.bot.replyError(s.ctx, "play", s.invocation(), music.ErrRequesterNotConnected)

	s.Equal("Join a voice channel before using music commands.", s.replier.last().Embeds[0].Description)
}

func (s *BotTestSuite) TestReplyErrorUnknownIsReported() {
	boom := errors.New("boom")
	s.mockReporter.EXPECT().Report(s.ctx, reporting.ErrorContext{
		Command: "play",
		GuildID: "guild-1",
		UserID:  "user-1",
	}, boom).Return("abc123")

	s.bot.replyError(s.ctx, "play", s.invocation(), boom)

	s.Equal(messaging.GenericErrorMessage+" (`abc123`)", s.replier.last().Embeds[0].Description)
}

func (s *BotTestSuite) TestRunRepliesWithError() {
	cmd := &command{
		BaseCommand: BaseCommand{Name: "pause"},
		handle: func(context.Context, *Invocation) error {
			return music.ErrAlreadyPaused
		},
	}

	s.bot.run(cmd, s.invocation())

	s.Require().Len(s.replier.replies, 1)
	s.Equal("Error", s.replier.last().Embeds[0].Title)
}

func (s *BotTestSuite) TestVoiceStateUpdateForBot() {
	s.mockMusic.EXPECT().UpdateVoiceState(gomock.Any(), &music.UpdateVoiceStateInput{
		GuildID:   "guild-1",
		ChannelID: "voice-1",
		SessionID: "session-1",
	}).Return(nil)

	s.bot.handleVoiceStateUpdate(s.session, &discordgo.VoiceStateUpdate{VoiceState: &discordgo.VoiceState{
		GuildID:   "guild-1",
		ChannelID: "voice-1",
		UserID:    "bot",
		SessionID: "session-1",
	}})
}

func (s *BotTestSuite) TestVoiceStateUpdateForOthersIgnored() {
	s.bot.handleVoiceStateUpdate(s.session, &discordgo.VoiceStateUpdate{VoiceState: &discordgo.VoiceState{
		GuildID:   "guild-1",
		ChannelID: "voice-1",
		UserID:    "user-1",
	}})
}

func (s *BotTestSuite) TestVoiceServerUpdateFailureReported() {
	failure := errors.New("node down")
	s.mockMusic.EXPECT().UpdateVoiceServer(gomock.Any(), &music.UpdateVoiceServerInput{
		GuildID:  "guild-1",
		Token:    "token",
		Endpoint: "voice.example:443",
	}).Return(failure)
	s.mockReporter.EXPECT().Report(gomock.Any(), reporting.ErrorContext{Event: "voice_server_update", GuildID: "guild-1"}, failure).Return("")

	s.bot.handleVoiceServerUpdate(s.session, &discordgo.VoiceServerUpdate{
		GuildID:  "guild-1",
		Token:    "token",
		Endpoint: "voice.example:443",
	})
}

func (s *BotTestSuite) TestGuildCreateEnsuresSettings() {
	s.mockSettings.EXPECT().EnsureGuild(gomock.Any(), &settings.EnsureGuildInput{GuildID: "guild-1"}).Return(nil)

	s.bot.handleGuildCreate(s.session, &discordgo.GuildCreate{Guild: &discordgo.Guild{ID: "guild-1"}})
}

func (s *BotTestSuite) TestGuildDeleteRemovesSettings() {
	s.mockSettings.EXPECT().RemoveGuild(gomock.Any(), &settings.RemoveGuildInput{GuildID: "guild-1"}).Return(nil)

	s.bot.handleGuildDelete(s.session, &discordgo.GuildDelete{Guild: &discordgo.Guild{ID: "guild-1"}})
}

func (s *BotTestSuite) TestGuildOutageKeepsSettings() {
	s.bot.handleGuildDelete(s.session, &discordgo.GuildDelete{Guild: &discordgo.Guild{ID: "guild-1", Unavailable: true}})
}

func (s *BotTestSuite) TestMessageFromBotIgnored() {
	s.bot.handleMessageCreate(s.session, &discordgo.MessageCreate{Message: &discordgo.Message{
		GuildID: "guild-1",
		Content: "?play song",
		Author:  &discordgo.User{ID: "other-bot", Bot: true},
	}})
}

func (s *BotTestSuite) TestPlainMessageWithoutSearchIgnored() {
	s.mockSettings.EXPECT().GetPrefix(gomock.Any(), &settings.GetPrefixInput{GuildID: "guild-1"}).
		Return(&settings.GetPrefixOutput{Prefix: "?"}, nil)
	s.mockMusic.EXPECT().HasPendingSearch("guild-1", "user-1").Return(false)

	s.bot.handleMessageCreate(s.session, &discordgo.MessageCreate{Message: &discordgo.Message{
		GuildID: "guild-1",
		Content: "2",
		Author:  &discordgo.User{ID: "user-1"},
	}})
}

func (s *BotTestSuite) TestUnknownTextCommandIgnored() {
	s.mockSettings.EXPECT().GetPrefix(gomock.Any(), gomock.Any()).Return(&settings.GetPrefixOutput{Prefix: "?"}, nil)

	s.bot.handleMessageCreate(s.session, &discordgo.MessageCreate{Message: &discordgo.Message{
		GuildID: "guild-1",
		Content: "?dance",
		Author:  &discordgo.User{ID: "user-1"},
	}})
}
