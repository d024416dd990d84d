// Package config loads bot configuration from the environment, an optional
// .env file and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. PEARL_DISCORD_TOKEN
const EnvPrefix = "PEARL"

const (
	DefaultDatabaseType          = "sqlite"
	DefaultDatabase              = "pearl.sqlite3"
	DefaultDatabaseSlowThreshold = 200 * time.Millisecond
	DefaultRedisAddr             = "localhost:6379"
	DefaultLavalinkURL           = "http://localhost:2333"
	DefaultLavalinkPassword      = "youshallnotpass"
	DefaultLavalinkClientName    = "pearl"
	DefaultLavalinkRPS           = 10.0
	DefaultIdleTimeout           = 300 * time.Second
	DefaultVoteRatio             = 0.7
	DefaultSearchTimeout         = 60 * time.Second
	DefaultSearchLimit           = 10
	DefaultDailyMin              = 20
	DefaultDailyMax              = 50
	DefaultDailyCooldown         = 24 * time.Hour
	DefaultPrefix                = "?"
	DefaultPrefixMaxLength       = 6
	DefaultCatURL                = "https://aws.random.cat/meow"
	DefaultDogURL                = "https://random.dog/woof.json"
	DefaultAnimalsRPS            = 1.0
	DefaultImagesURL             = "https://api.dagpi.xyz"
	DefaultImagesRPS             = 1.0
	DefaultPresenceInterval      = 5 * time.Minute
	DefaultAPIListen             = "127.0.0.1:8080"
	DefaultSessionTTL            = 24 * time.Hour
)

type Config struct {
	LogLevel    slog.Level `mapstructure:"log_level"`
	SentryDSN   string     `mapstructure:"sentry_dsn"`
	Environment string     `mapstructure:"environment"`

	DatabaseType          string        `mapstructure:"database_type"`
	Database              string        `mapstructure:"database"`
	DatabaseLogLevel      slog.Level    `mapstructure:"database_log_level"`
	DatabaseSlowThreshold time.Duration `mapstructure:"database_slow_threshold"`

	Discord  DiscordConfig  `mapstructure:"discord"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Lavalink LavalinkConfig `mapstructure:"lavalink"`
	Music    MusicConfig    `mapstructure:"music"`
	Currency CurrencyConfig `mapstructure:"currency"`
	Settings SettingsConfig `mapstructure:"settings"`
	Animals  AnimalsConfig  `mapstructure:"animals"`
	Images   ImagesConfig   `mapstructure:"images"`
	API      APIConfig      `mapstructure:"api"`
}

type DiscordConfig struct {
	Token         string `mapstructure:"token"`
	ApplicationID string `mapstructure:"application_id"`

	// GuildID registers slash commands to a single guild when set
	GuildID string `mapstructure:"guild_id"`

	LogLevel          slog.Level `mapstructure:"log_level"`
	DiscordgoLogLevel slog.Level `mapstructure:"discordgo_log_level"`

	// PresenceInterval rotates the bot's activity, zero disables it
	PresenceInterval time.Duration `mapstructure:"presence_interval"`
}

type RedisConfig struct {
	Addr       string        `mapstructure:"addr"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

type LavalinkConfig struct {
	URL               string  `mapstructure:"url"`
	Password          string  `mapstructure:"password"`
	ClientName        string  `mapstructure:"client_name"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

type MusicConfig struct {
	IdleTimeout   time.Duration `mapstructure:"idle_timeout"`
	VoteRatio     float64       `mapstructure:"vote_ratio"`
	SearchTimeout time.Duration `mapstructure:"search_timeout"`
	SearchLimit   int           `mapstructure:"search_limit"`
}

type CurrencyConfig struct {
	DailyMin      int64         `mapstructure:"daily_min"`
	DailyMax      int64         `mapstructure:"daily_max"`
	DailyCooldown time.Duration `mapstructure:"daily_cooldown"`
}

type SettingsConfig struct {
	DefaultPrefix   string `mapstructure:"default_prefix"`
	PrefixMaxLength int    `mapstructure:"prefix_max_length"`
}

type AnimalsConfig struct {
	CatURL            string  `mapstructure:"cat_url"`
	DogURL            string  `mapstructure:"dog_url"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

type ImagesConfig struct {
	URL               string  `mapstructure:"url"`
	Token             string  `mapstructure:"token"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

type APIConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Listen  string `mapstructure:"listen"`
}

// Load reads configFile (or ./.env when empty) into the environment and
// decodes the PEARL_* variables over the defaults
func Load(configFile string) (*Config, error) {
	if configFile == "" {
		// a missing .env is fine, the environment may already be populated
		_ = godotenv.Load()
	} else if err := godotenv.Load(configFile); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	err := v.Unmarshal(cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			StringToLevelHookFunc(),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", slog.LevelInfo.String())
	v.SetDefault("sentry_dsn", "")
	v.SetDefault("environment", "development")

	v.SetDefault("database_type", DefaultDatabaseType)
	v.SetDefault("database", DefaultDatabase)
	v.SetDefault("database_log_level", slog.LevelWarn.String())
	v.SetDefault("database_slow_threshold", DefaultDatabaseSlowThreshold)

	v.SetDefault("discord.token", "")
	v.SetDefault("discord.application_id", "")
	v.SetDefault("discord.guild_id", "")
	v.SetDefault("discord.log_level", slog.LevelInfo.String())
	v.SetDefault("discord.discordgo_log_level", slog.LevelWarn.String())
	v.SetDefault("discord.presence_interval", DefaultPresenceInterval)

	v.SetDefault("redis.addr", DefaultRedisAddr)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.session_ttl", DefaultSessionTTL)

	v.SetDefault("lavalink.url", DefaultLavalinkURL)
	v.SetDefault("lavalink.password", DefaultLavalinkPassword)
	v.SetDefault("lavalink.client_name", DefaultLavalinkClientName)
	v.SetDefault("lavalink.requests_per_second", DefaultLavalinkRPS)

	v.SetDefault("music.idle_timeout", DefaultIdleTimeout)
	v.SetDefault("music.vote_ratio", DefaultVoteRatio)
	v.SetDefault("music.search_timeout", DefaultSearchTimeout)
	v.SetDefault("music.search_limit", DefaultSearchLimit)

	v.SetDefault("currency.daily_min", DefaultDailyMin)
	v.SetDefault("currency.daily_max", DefaultDailyMax)
	v.SetDefault("currency.daily_cooldown", DefaultDailyCooldown)

	v.SetDefault("settings.default_prefix", DefaultPrefix)
	v.SetDefault("settings.prefix_max_length", DefaultPrefixMaxLength)

	v.SetDefault("animals.cat_url", DefaultCatURL)
	v.SetDefault("animals.dog_url", DefaultDogURL)
	v.SetDefault("animals.requests_per_second", DefaultAnimalsRPS)

	v.SetDefault("images.url", DefaultImagesURL)
	v.SetDefault("images.token", "")
	v.SetDefault("images.requests_per_second", DefaultImagesRPS)

	v.SetDefault("api.enabled", false)
	v.SetDefault("api.listen", DefaultAPIListen)
}

// StringToLevelHookFunc decodes level names such as "debug" into slog.Level
func StringToLevelHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(slog.Level(0)) {
			return data, nil
		}

		var level slog.Level
		if err := level.UnmarshalText([]byte(data.(string))); err != nil {
			return nil, fmt.Errorf("invalid log level: %s", data)
		}
		return level, nil
	}
}

// Validate checks the settings needed to connect to Discord
func (c *Config) Validate() error {
	var errs []error

	if c.Discord.Token == "" {
		errs = append(errs, errors.New("discord.token is required"))
	}
	if c.Music.VoteRatio <= 0 || c.Music.VoteRatio > 1 {
		errs = append(errs, fmt.Errorf("music.vote_ratio must be in (0, 1], got %v", c.Music.VoteRatio))
	}
	if c.Currency.DailyMin > c.Currency.DailyMax {
		errs = append(errs, errors.New("currency.daily_min must not exceed currency.daily_max"))
	}
	if c.Settings.PrefixMaxLength < 1 {
		errs = append(errs, errors.New("settings.prefix_max_length must be positive"))
	}

	return errors.Join(errs...)
}
