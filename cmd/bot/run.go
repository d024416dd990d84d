package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pearl/internal/common/clock"
	"github.com/KirkDiggler/pearl/internal/common/random"
	"github.com/KirkDiggler/pearl/internal/common/uuid"
	"github.com/KirkDiggler/pearl/internal/database"
	"github.com/KirkDiggler/pearl/internal/handlers/api"
	"github.com/KirkDiggler/pearl/internal/handlers/discord"
	"github.com/KirkDiggler/pearl/internal/lavalink"
	"github.com/KirkDiggler/pearl/internal/logging"
	"github.com/KirkDiggler/pearl/internal/models"
	"github.com/KirkDiggler/pearl/internal/reporting"
	"github.com/KirkDiggler/pearl/internal/repositories/account"
	"github.com/KirkDiggler/pearl/internal/repositories/cooldown"
	"github.com/KirkDiggler/pearl/internal/repositories/guild_settings"
	"github.com/KirkDiggler/pearl/internal/repositories/session"
	"github.com/KirkDiggler/pearl/internal/services/animals"
	"github.com/KirkDiggler/pearl/internal/services/images"
	"github.com/KirkDiggler/pearl/internal/services/currency"
	"github.com/KirkDiggler/pearl/internal/services/messaging"
	"github.com/KirkDiggler/pearl/internal/services/music"
	"github.com/KirkDiggler/pearl/internal/services/settings"
)

const (
	redisPingTimeout = 5 * time.Second
	shutdownTimeout  = 10 * time.Second
	flushTimeout     = 2 * time.Second
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Connect to Discord and the voice node and serve commands",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func run(ctx context.Context) error {
	logger := slog.Default()
	gin.SetMode(gin.ReleaseMode)

	reporter, err := reporting.New(&reporting.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Release:     version,
		Logger:      logging.Component(logger, "reporting"),
	})
	if err != nil {
		return err
	}
	defer reporter.Flush(flushTimeout)

	db, err := database.Create(ctx, databaseConfig())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	err = redisClient.Ping(pingCtx).Err()
	cancel()
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	sessionRepo, err := session.NewRedis(&session.Config{
		RedisClient: redisClient,
		TTL:         cfg.Redis.SessionTTL,
	})
	if err != nil {
		return err
	}
	cooldownRepo, err := cooldown.NewRedis(&cooldown.Config{RedisClient: redisClient})
	if err != nil {
		return err
	}
	accountRepo, err := account.NewGorm(&account.Config{DB: db})
	if err != nil {
		return err
	}
	settingsRepo, err := guild_settings.NewGorm(&guild_settings.Config{DB: db})
	if err != nil {
		return err
	}

	dg, err := discord.NewSession(cfg.Discord.Token)
	if err != nil {
		return err
	}
	me, err := dg.User("@me", discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to look up bot user: %w", err)
	}

	node, err := lavalink.New(&lavalink.Config{
		BaseURL:           cfg.Lavalink.URL,
		Password:          cfg.Lavalink.Password,
		UserID:            me.ID,
		ClientName:        cfg.Lavalink.ClientName,
		RequestsPerSecond: cfg.Lavalink.RequestsPerSecond,
		Logger:            logging.Component(logger, "lavalink"),
	})
	if err != nil {
		return err
	}

	systemClock := &clock.DefaultClock{}
	randomizer := random.New(&random.Config{})
	uuidGenerator := uuid.New()
	gateway := discord.NewVoiceGateway(dg)

	musicSvc, err := music.New(&music.Config{
		IdleTimeout:   cfg.Music.IdleTimeout,
		VoteRatio:     cfg.Music.VoteRatio,
		SearchTimeout: cfg.Music.SearchTimeout,
		SearchLimit:   cfg.Music.SearchLimit,
		Node:          node,
		Gateway:       gateway,
		Notifier:      discord.NewNotifier(dg, logging.Component(logger, "notifier")),
		SessionRepo:   sessionRepo,
		Clock:         systemClock,
		UUIDGenerator: uuidGenerator,
		Randomizer:    randomizer,
		Logger:        logging.Component(logger, "music"),
	})
	if err != nil {
		return err
	}

	currencySvc, err := currency.New(&currency.Config{
		DailyMin:      cfg.Currency.DailyMin,
		DailyMax:      cfg.Currency.DailyMax,
		DailyCooldown: cfg.Currency.DailyCooldown,
		AccountRepo:   accountRepo,
		CooldownRepo:  cooldownRepo,
		Randomizer:    randomizer,
		Clock:         systemClock,
		Logger:        logging.Component(logger, "currency"),
	})
	if err != nil {
		return err
	}

	settingsSvc, err := settings.New(&settings.Config{
		DefaultPrefix:   cfg.Settings.DefaultPrefix,
		PrefixMaxLength: cfg.Settings.PrefixMaxLength,
		Repository:      settingsRepo,
		Clock:           systemClock,
		Logger:          logging.Component(logger, "settings"),
	})
	if err != nil {
		return err
	}
	defer settingsSvc.Close()

	animalsSvc, err := animals.New(&animals.Config{
		CatURL:            cfg.Animals.CatURL,
		DogURL:            cfg.Animals.DogURL,
		RequestsPerSecond: cfg.Animals.RequestsPerSecond,
		Logger:            logging.Component(logger, "animals"),
	})
	if err != nil {
		return err
	}

	imagesSvc, err := images.New(&images.Config{
		URL:               cfg.Images.URL,
		Token:             cfg.Images.Token,
		RequestsPerSecond: cfg.Images.RequestsPerSecond,
		Logger:            logging.Component(logger, "images"),
	})
	if err != nil {
		return err
	}
	if cfg.Images.Token == "" {
		logger.WarnContext(ctx, "images.token is not set, image commands will be unavailable")
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Randomizer: randomizer,
		Clock:      systemClock,
	})
	if err != nil {
		return err
	}

	bot, err := discord.New(&discord.Config{
		Session:          dg,
		ApplicationID:    cfg.Discord.ApplicationID,
		GuildID:          cfg.Discord.GuildID,
		MusicService:     musicSvc,
		CurrencyService:  currencySvc,
		SettingsService:  settingsSvc,
		AnimalsService:   animalsSvc,
		ImagesService:    imagesSvc,
		MessagingService: messagingSvc,
		Reporter:         reporter,
		PresenceInterval: cfg.Discord.PresenceInterval,
		VoiceGateway:     gateway,
		Clock:            systemClock,
		Logger:           logging.New("discord", cfg.Discord.LogLevel),
	})
	if err != nil {
		return err
	}

	purged, err := musicSvc.ResetSessions(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset music sessions: %w", err)
	}
	if purged > 0 {
		logger.InfoContext(ctx, "dropped stale music sessions", "count", purged)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return node.Listen(gctx, func(ctx context.Context, event models.PlayerEvent) {
			if err := musicSvc.HandleEvent(ctx, event); err != nil {
				logger.WarnContext(ctx, "failed to handle player event",
					"guild_id", event.GuildID,
					logging.Err(err),
				)
				reporter.Report(ctx, reporting.ErrorContext{Event: "player_event", GuildID: event.GuildID}, err)
			}
		})
	})

	g.Go(func() error {
		if err := bot.Start(); err != nil {
			return err
		}
		return bot.RotatePresence(gctx)
	})

	if cfg.API.Enabled {
		server, err := api.New(&api.Config{
			Listen:        cfg.API.Listen,
			SessionRepo:   sessionRepo,
			Status:        bot,
			UUIDGenerator: uuidGenerator,
			Logger:        logging.Component(logger, "api"),
		})
		if err != nil {
			return err
		}
		g.Go(func() error {
			return server.Serve(gctx)
		})
	}

	runErr := g.Wait()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := musicSvc.Shutdown(shutdownCtx); err != nil {
		logger.WarnContext(shutdownCtx, "music shutdown failed", logging.Err(err))
	}
	if err := bot.Stop(); err != nil {
		logger.WarnContext(shutdownCtx, "discord shutdown failed", logging.Err(err))
	}

	logger.Info("pearl stopped")
	return runErr
}
