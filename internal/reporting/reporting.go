// Package reporting sends unexpected errors to Sentry.
package reporting

//go:generate mockgen -package=mocks -destination=mocks/mock_reporter.go github.com/KirkDiggler/pearl/internal/reporting Reporter

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
)

// ErrorContext describes where an error happened
type ErrorContext struct {
	Command string
	Event   string
	GuildID string
	UserID  string
}

// Reporter records errors that have no user-facing mapping
type Reporter interface {
	// Report records the error and returns an event ID, empty when nothing was sent
	Report(ctx context.Context, errCtx ErrorContext, err error) string

	// Flush waits for buffered events to be delivered
	Flush(timeout time.Duration) bool
}

// Config holds configuration for the sentry reporter
type Config struct {
	// DSN disables reporting when empty
	DSN string

	Environment string
	Release     string
	Logger      *slog.Logger
}

var _ Reporter = (*sentryReporter)(nil)

type sentryReporter struct {
	hub    *sentry.Hub
	logger *slog.Logger
}

// New creates a Reporter, falling back to log-only reporting without a DSN
func New(cfg *Config) (*sentryReporter, error) {
	logger := slog.Default()
	if cfg != nil && cfg.Logger != nil {
		logger = cfg.Logger
	}

	if cfg == nil || cfg.DSN == "" {
		return &sentryReporter{logger: logger}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
	})
	if err != nil {
		return nil, err
	}

	return &sentryReporter{
		hub:    sentry.CurrentHub(),
		logger: logger,
	}, nil
}

func (r *sentryReporter) Report(ctx context.Context, errCtx ErrorContext, err error) string {
	source := errCtx.Event
	if source == "" {
		source = errCtx.Command
	}

	r.logger.ErrorContext(ctx, "unhandled error",
		"source", source,
		"guild_id", errCtx.GuildID,
		"user_id", errCtx.UserID,
		slog.Any("err", err),
	)

	if r.hub == nil {
		return ""
	}

	hub := r.hub.Clone()

	data := map[string]any{}
	if errCtx.Event != "" {
		data["event"] = errCtx.Event
	}
	if errCtx.Command != "" {
		data["command"] = errCtx.Command
	}
	if errCtx.GuildID != "" {
		data["guild"] = errCtx.GuildID
	}

	hub.ConfigureScope(func(scope *sentry.Scope) {
		if errCtx.UserID != "" {
			scope.SetUser(sentry.User{ID: errCtx.UserID})
			data["user"] = errCtx.UserID
		}
	})

	hub.AddBreadcrumb(&sentry.Breadcrumb{
		Data:      data,
		Level:     sentry.LevelError,
		Timestamp: time.Now().UTC(),
	}, nil)

	id := hub.CaptureException(err)
	if id == nil {
		return ""
	}
	return string(*id)
}

func (r *sentryReporter) Flush(timeout time.Duration) bool {
	if r.hub == nil {
		return true
	}
	return r.hub.Flush(timeout)
}
