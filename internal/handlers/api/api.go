// Package api serves a read-only HTTP view of the bot's health and music sessions.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/pearl/internal/common/uuid"
	sessionRepo "github.com/KirkDiggler/pearl/internal/repositories/session"
)

const shutdownTimeout = 5 * time.Second

// API is the gin status server
type API struct {
	listen     string
	engine     *gin.Engine
	httpServer *http.Server
	sessions   sessionRepo.Repository
	status     StatusProvider
	uuid       uuid.UUID
	logger     *slog.Logger
}

// New builds the API and its routes
func New(cfg *Config) (*API, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SessionRepo == nil {
		return nil, errors.New("session repository cannot be nil")
	}

	if cfg.Status == nil {
		return nil, errors.New("status provider cannot be nil")
	}

	listen := cfg.Listen
	if listen == "" {
		listen = DefaultListen
	}

	generator := cfg.UUIDGenerator
	if generator == nil {
		generator = uuid.New()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()

	a := &API{
		listen:   listen,
		engine:   r,
		sessions: cfg.SessionRepo,
		status:   cfg.Status,
		uuid:     generator,
		logger:   logger,
	}
	a.httpServer = &http.Server{
		Addr:              listen,
		Handler:           r,
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
	}

	r.Use(gin.Recovery(), a.requestIDMiddleware(), a.loggingMiddleware())

	r.GET(pathHealth, a.health)
	r.GET(pathSessions, a.listSessions)
	r.GET(pathSession, a.getSession)

	return a, nil
}

// Handler exposes the router
func (a *API) Handler() http.Handler {
	return a.engine
}

// Serve listens until ctx is cancelled, then shuts the server down
func (a *API) Serve(ctx context.Context) error {
	ln, err := (&net.ListenConfig{}).Listen(ctx, "tcp", a.listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.listen, err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
			a.logger.Warn("api shutdown failed", slog.Any("err", err))
		}
	}()

	a.logger.Info("api listening", "addr", ln.Addr().String())
	if err := a.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (a *API) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = a.uuid.NewUUID()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (a *API) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"request_id", c.GetString(requestIDHeader),
			"duration", time.Since(start),
			slog.Group("response",
				"status_code", c.Writer.Status(),
				"body_size", c.Writer.Size(),
			),
		}

		msg := fmt.Sprintf("%s %s finished", c.Request.Method, c.Request.URL.Path)
		if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
			a.logger.ErrorContext(c.Request.Context(), msg, append(attrs, "errors", errs.String())...)
			return
		}
		a.logger.DebugContext(c.Request.Context(), msg, attrs...)
	}
}

func (a *API) health(c *gin.Context) {
	out, err := a.sessions.ListSessions(c.Request.Context(), &sessionRepo.ListSessionsInput{})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, healthResponse{
			Status:           "degraded",
			DiscordConnected: a.status.Connected(),
		})
		return
	}

	c.JSON(http.StatusOK, healthResponse{
		Status:           "ok",
		DiscordConnected: a.status.Connected(),
		Sessions:         len(out.Sessions),
	})
}

func (a *API) listSessions(c *gin.Context) {
	out, err := a.sessions.ListSessions(c.Request.Context(), &sessionRepo.ListSessionsInput{})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, httpError{Error: "error listing sessions"})
		return
	}

	resp := sessionsResponse{Sessions: make([]sessionResponse, 0, len(out.Sessions))}
	for _, session := range out.Sessions {
		resp.Sessions = append(resp.Sessions, newSessionResponse(session))
	}
	c.JSON(http.StatusOK, resp)
}

func (a *API) getSession(c *gin.Context) {
	session, err := a.sessions.GetSession(c.Request.Context(), &sessionRepo.GetSessionInput{
		GuildID: c.Param("guild_id"),
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, httpError{Error: "session not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, httpError{Error: "error getting session"})
		return
	}

	c.JSON(http.StatusOK, newSessionResponse(session))
}
