// Package logging builds the slog loggers used across the bot and adapts
// discordgo and gorm logging onto them.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/lmittmann/tint"
	"gorm.io/gorm/logger"
)

// NameKey is the attribute key carrying the component name
const NameKey = "logger"

var defaultWriter io.Writer = os.Stdout

var discordgoLevels = map[int]slog.Level{
	discordgo.LogDebug:         slog.LevelDebug,
	discordgo.LogInformational: slog.LevelInfo,
	discordgo.LogWarning:       slog.LevelWarn,
	discordgo.LogError:         slog.LevelError,
}

// ParseLevel converts a config string into a slog.Level, defaulting to info
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewHandler returns a tint handler writing to stdout at the given level
func NewHandler(level slog.Level) slog.Handler {
	return newHandler(defaultWriter, level, false)
}

func newHandler(w io.Writer, level slog.Level, noColor bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		AddSource:  true,
		TimeFormat: time.DateTime,
		NoColor:    noColor,
	})
}

// New returns a named logger at the given level
func New(name string, level slog.Level) *slog.Logger {
	return slog.New(NewHandler(level)).With(NameKey, name)
}

// Component derives a named child logger
func Component(parent *slog.Logger, name string) *slog.Logger {
	if parent == nil {
		parent = slog.Default()
	}
	return parent.With(NameKey, name)
}

// Err wraps an error as a log attribute
func Err(err error) slog.Attr {
	return tint.Err(err)
}

// RedirectDiscordgo points discordgo's package-level logger at slog
func RedirectDiscordgo(level slog.Level) {
	handler := NewHandler(level).WithAttrs([]slog.Attr{slog.String(NameKey, "discordgo")})
	discordgo.Logger = DiscordgoFunc(context.Background(), handler)
}

// DiscordgoFunc adapts a slog handler to discordgo's logger signature
func DiscordgoFunc(ctx context.Context, handler slog.Handler) func(msgL int, caller int, format string, args ...any) {
	log := slog.New(handler)
	return func(msgL int, _ int, format string, args ...any) {
		level, ok := discordgoLevels[msgL]
		if !ok {
			level = slog.LevelInfo
		}
		log.LogAttrs(ctx, level, strings.ReplaceAll(fmt.Sprintf(format, args...), "\n", ""))
	}
}

// GormLogger is a gorm logger.Interface backed by slog
type GormLogger struct {
	logger        *slog.Logger
	SlowThreshold time.Duration
}

var _ logger.Interface = (*GormLogger)(nil)

// NewGormLogger builds a gorm logger that warns on queries slower than slowThreshold
func NewGormLogger(handler slog.Handler, slowThreshold time.Duration) *GormLogger {
	return &GormLogger{
		logger:        slog.New(handler).With(NameKey, "gorm"),
		SlowThreshold: slowThreshold,
	}
}

// LogMode is a no-op; the slog handler decides what is emitted
func (g *GormLogger) LogMode(_ logger.LogLevel) logger.Interface {
	return g
}

func (g *GormLogger) Info(ctx context.Context, s string, i ...any) {
	g.logger.InfoContext(ctx, fmt.Sprintf(s, i...))
}

func (g *GormLogger) Warn(ctx context.Context, s string, i ...any) {
	g.logger.WarnContext(ctx, fmt.Sprintf(s, i...))
}

func (g *GormLogger) Error(ctx context.Context, s string, i ...any) {
	g.logger.ErrorContext(ctx, fmt.Sprintf(s, i...))
}

func (g *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	attrs := []any{
		"elapsed", elapsed,
		"sql", sql,
	}
	if rows == -1 {
		attrs = append(attrs, "rows", "-")
	} else {
		attrs = append(attrs, "rows", rows)
	}
	if err != nil {
		attrs = append(attrs, Err(err))
	}

	switch {
	case err != nil && !isRecordNotFound(err):
		g.logger.ErrorContext(ctx, "sql failed", attrs...)
	case g.SlowThreshold != 0 && elapsed > g.SlowThreshold:
		g.logger.WarnContext(ctx, "slow sql", append(attrs, "threshold", g.SlowThreshold)...)
	default:
		g.logger.DebugContext(ctx, "sql completed", attrs...)
	}
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, logger.ErrRecordNotFound)
}
