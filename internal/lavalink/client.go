// Package lavalink talks to a Lavalink v4 voice node: REST calls for track
// loading and player control, and a websocket for player events.
package lavalink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/KirkDiggler/pearl/internal/models"
)

const (
	apiPrefix          = "/v4"
	defaultHTTPTimeout = 10 * time.Second
	defaultRPS         = 10
)

// Config holds configuration for the node client
type Config struct {
	// BaseURL is the node address, e.g. http://localhost:2333
	BaseURL string

	Password string

	// UserID is the bot's Discord user ID
	UserID string

	ClientName string

	// RequestsPerSecond caps outbound REST calls
	RequestsPerSecond float64

	HTTPClient *http.Client
	Logger     *slog.Logger

	// ReconnectDelay is the wait between websocket reconnect attempts
	ReconnectDelay time.Duration
}

// Client is a Lavalink v4 REST and websocket client
type Client struct {
	baseURL        *url.URL
	password       string
	userID         string
	clientName     string
	httpClient     *http.Client
	limiter        *rate.Limiter
	logger         *slog.Logger
	reconnectDelay time.Duration

	mu        sync.RWMutex
	sessionID string
}

// New creates a node client
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	if cfg.UserID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRPS
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	reconnectDelay := cfg.ReconnectDelay
	if reconnectDelay <= 0 {
		reconnectDelay = 5 * time.Second
	}

	clientName := cfg.ClientName
	if clientName == "" {
		clientName = "pearl"
	}

	return &Client{
		baseURL:        base,
		password:       cfg.Password,
		userID:         cfg.UserID,
		clientName:     clientName,
		httpClient:     httpClient,
		limiter:        rate.NewLimiter(rate.Limit(rps), int(rps)+1),
		logger:         logger,
		reconnectDelay: reconnectDelay,
	}, nil
}

// SessionID returns the websocket session, empty until the node is ready
func (c *Client) SessionID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionID
}

func (c *Client) setSessionID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionID = id
}

// LoadTracks resolves an identifier (URL or "ytsearch:..." query) into tracks
func (c *Client) LoadTracks(ctx context.Context, identifier string) (*models.LoadResult, error) {
	query := url.Values{"identifier": {identifier}}

	var raw loadResult
	if err := c.do(ctx, http.MethodGet, apiPrefix+"/loadtracks?"+query.Encode(), nil, &raw); err != nil {
		return nil, err
	}

	result := &models.LoadResult{Type: models.LoadType(raw.LoadType)}

	switch result.Type {
	case models.LoadTypeTrack:
		var t track
		if err := json.Unmarshal(raw.Data, &t); err != nil {
			return nil, fmt.Errorf("failed to decode track: %w", err)
		}
		result.Tracks = []models.Track{t.toModel()}
	case models.LoadTypePlaylist:
		var p playlistData
		if err := json.Unmarshal(raw.Data, &p); err != nil {
			return nil, fmt.Errorf("failed to decode playlist: %w", err)
		}
		result.PlaylistName = p.Info.Name
		result.Tracks = toModels(p.Tracks)
	case models.LoadTypeSearch:
		var ts []track
		if err := json.Unmarshal(raw.Data, &ts); err != nil {
			return nil, fmt.Errorf("failed to decode search results: %w", err)
		}
		result.Tracks = toModels(ts)
	case models.LoadTypeError:
		var e exceptionData
		if err := json.Unmarshal(raw.Data, &e); err == nil {
			c.logger.WarnContext(ctx, "track load failed",
				"identifier", identifier,
				"message", e.Message,
				"severity", e.Severity,
			)
		}
	case models.LoadTypeEmpty:
	default:
		return nil, fmt.Errorf("unknown load type %q", raw.LoadType)
	}

	return result, nil
}

func toModels(ts []track) []models.Track {
	out := make([]models.Track, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.toModel())
	}
	return out
}

// UpdateVoice hands the Discord voice credentials of a guild to the node
func (c *Client) UpdateVoice(ctx context.Context, guildID string, voice models.VoiceServer) error {
	return c.updatePlayer(ctx, guildID, &playerUpdate{
		Voice: &voiceState{
			Token:     voice.Token,
			Endpoint:  voice.Endpoint,
			SessionID: voice.SessionID,
		},
	})
}

// Play starts the track, replacing whatever is playing
func (c *Client) Play(ctx context.Context, guildID string, t models.Track) error {
	encoded := t.Encoded
	position := int64(0)
	paused := false
	return c.updatePlayer(ctx, guildID, &playerUpdate{
		Track:    &updateTrack{Encoded: &encoded},
		Position: &position,
		Paused:   &paused,
	})
}

func (c *Client) Pause(ctx context.Context, guildID string, paused bool) error {
	return c.updatePlayer(ctx, guildID, &playerUpdate{Paused: &paused})
}

func (c *Client) Seek(ctx context.Context, guildID string, position time.Duration) error {
	ms := position.Milliseconds()
	return c.updatePlayer(ctx, guildID, &playerUpdate{Position: &ms})
}

// SetVolume sets the player volume in percent
func (c *Client) SetVolume(ctx context.Context, guildID string, volume int) error {
	return c.updatePlayer(ctx, guildID, &playerUpdate{Volume: &volume})
}

// Stop ends the current track without destroying the player
func (c *Client) Stop(ctx context.Context, guildID string) error {
	return c.updatePlayer(ctx, guildID, &playerUpdate{Track: &updateTrack{}})
}

// Destroy removes the guild's player from the node
func (c *Client) Destroy(ctx context.Context, guildID string) error {
	sessionID := c.SessionID()
	if sessionID == "" {
		return ErrNoSession
	}

	return c.do(ctx, http.MethodDelete, playerPath(sessionID, guildID), nil, nil)
}

func (c *Client) updatePlayer(ctx context.Context, guildID string, update *playerUpdate) error {
	sessionID := c.SessionID()
	if sessionID == "" {
		return ErrNoSession
	}

	return c.do(ctx, http.MethodPatch, playerPath(sessionID, guildID), update, nil)
}

func playerPath(sessionID, guildID string) string {
	return fmt.Sprintf("%s/sessions/%s/players/%s", apiPrefix, url.PathEscape(sessionID), url.PathEscape(guildID))
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.password)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("lavalink request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Path: path}
		var errBody apiErrorBody
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
			apiErr.Message = errBody.Message
			if apiErr.Message == "" {
				apiErr.Message = errBody.Error
			}
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
