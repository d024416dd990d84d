package animals

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const defaultHTTPTimeout = 10 * time.Second

// service implements the Service interface
type service struct {
	catURL     string
	dogURL     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// New creates a new animals service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.CatURL == "" || cfg.DogURL == "" {
		return nil, ErrMissingURL
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}

	s := &service{
		catURL:     cfg.CatURL,
		dogURL:     cfg.DogURL,
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

// RandomCat returns a random cat picture
func (s *service) RandomCat(ctx context.Context) (*MediaOutput, error) {
	var body catResponse
	if err := s.fetch(ctx, s.catURL, &body); err != nil {
		return nil, err
	}

	if body.File == "" {
		return nil, ErrBadResponse
	}

	return &MediaOutput{URL: body.File}, nil
}

// RandomDog returns a random dog picture
func (s *service) RandomDog(ctx context.Context) (*MediaOutput, error) {
	var body dogResponse
	if err := s.fetch(ctx, s.dogURL, &body); err != nil {
		return nil, err
	}

	if body.URL == "" {
		return nil, ErrBadResponse
	}

	return &MediaOutput{URL: body.URL}, nil
}

func (s *service) fetch(ctx context.Context, endpoint string, out any) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.WarnContext(ctx, "media api returned an error",
			"url", endpoint,
			"status", resp.StatusCode,
		)
		return ErrBadResponse
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		s.logger.WarnContext(ctx, "media api returned an invalid body", "url", endpoint, "error", err)
		return ErrBadResponse
	}

	return nil
}
