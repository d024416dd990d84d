package images

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultHTTPTimeout = 30 * time.Second

	// Discord rejects larger attachments for unboosted guilds
	maxImageBytes = 8 << 20
)

// service implements the Service interface
type service struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// New creates a new images service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.URL == "" {
		return nil, ErrMissingURL
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}

	s := &service{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		token:      cfg.Token,
		httpClient: cfg.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     cfg.Logger,
	}

	if s.httpClient == nil {
		s.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s, nil
}

// Transform applies an effect through the image api
func (s *service) Transform(ctx context.Context, input *TransformInput) (*TransformOutput, error) {
	if s.token == "" {
		return nil, ErrMissingToken
	}
	if input == nil || input.URL == "" {
		return nil, ErrMissingImage
	}
	if !input.Effect.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEffect, input.Effect)
	}
	if input.Effect.TwoImages() && input.SecondURL == "" {
		return nil, ErrMissingImage
	}

	query := url.Values{}
	query.Set("url", input.URL)
	if input.Effect.TwoImages() {
		query.Set("url2", input.SecondURL)
	}
	endpoint := fmt.Sprintf("%s/image/%s/?%s", s.baseURL, input.Effect, query.Encode())

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", s.token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call image api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.WarnContext(ctx, "image api returned an error",
			"effect", input.Effect,
			"status", resp.StatusCode,
		)
		return nil, ErrBadResponse
	}

	contentType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(contentType, "image/") {
		s.logger.WarnContext(ctx, "image api returned a non image body",
			"effect", input.Effect,
			"content_type", resp.Header.Get("Content-Type"),
		)
		return nil, ErrBadResponse
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) == 0 || len(data) > maxImageBytes {
		s.logger.WarnContext(ctx, "image api returned an unusable image", "effect", input.Effect, "bytes", len(data))
		return nil, ErrBadResponse
	}

	return &TransformOutput{
		Data:        data,
		ContentType: contentType,
		Extension:   strings.TrimPrefix(contentType, "image/"),
	}, nil
}
