package randomuser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/phrazzld/persona-api/internal/config"
	"github.com/phrazzld/persona-api/internal/domain"
	"github.com/phrazzld/persona-api/internal/platform/logger"
)

// ErrInvalidConfig is returned by NewClient for unusable configuration.
var ErrInvalidConfig = errors.New("invalid upstream configuration")

// Client fetches documents from the random-user provider.
type Client struct {
	baseURL      string
	timeout      time.Duration
	maxBodyBytes int64
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewClient creates a Client from cfg. The underlying transport is a pooled
// cleanhttp client whose overall timeout matches cfg.Timeout.
func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q is not absolute", ErrInvalidConfig, cfg.BaseURL)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("%w: max body bytes must be positive", ErrInvalidConfig)
	}

	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = cfg.Timeout

	return &Client{
		baseURL:      u.String(),
		timeout:      cfg.Timeout,
		maxBodyBytes: cfg.MaxBodyBytes,
		httpClient:   httpClient,
		logger:       logger.With("component", "randomuser_client"),
	}, nil
}

// Fetch performs a single GET against the provider and returns the decoded
// JSON body.
func (c *Client) Fetch(ctx context.Context) (any, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", domain.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WarnContext(ctx, "upstream request failed",
			"error", err,
			"duration", time.Since(start))
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, c.maxBodyBytes))
		_ = resp.Body.Close()
	}()

	log.DebugContext(ctx, "upstream responded",
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", domain.ErrUpstreamUnavailable, err)
	}
	if int64(len(data)) > c.maxBodyBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", domain.ErrUpstreamUnavailable, c.maxBodyBytes)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode body: %w", domain.ErrUpstreamUnavailable, err)
	}
	return doc, nil
}
