package opencritic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"catalog-sync/core/apiclient"
	"catalog-sync/core/ratelimit"

	"go.uber.org/zap"
)

// Client talks to the critic-aggregation API.
// It owns the per-provider request pacing, so callers can issue page
// requests back to back without tracking delays themselves.
type Client struct {
	cfg        Config
	httpClient *http.Client
	pacer      *ratelimit.Pacer
	logger     *zap.Logger
}

// NewClient creates a new critic-aggregation client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: apiclient.New(cfg.TimeoutSeconds),
		pacer:      ratelimit.NewPacer(time.Duration(cfg.PageIntervalMS) * time.Millisecond),
		logger:     logger,
	}
}

// Pages returns the configured number of pages per sync run.
func (c *Client) Pages() int {
	if c.cfg.Pages <= 0 {
		return 3
	}
	return c.cfg.Pages
}

// FetchTopTitles fetches one fixed-size page of top titles at the given skip
// offset. The API has no has-more flag; callers request a predetermined
// number of pages. Any non-2xx response is an error; the page list is the
// authoritative base of a sync run and cannot be partially substituted.
func (c *Client) FetchTopTitles(ctx context.Context, skip int) ([]Game, error) {
	if err := c.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/game?skip=%d", c.cfg.BaseURL, skip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build page request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.cfg.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.cfg.APIHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("page request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("page request at skip=%d returned HTTP %d", skip, resp.StatusCode)
	}

	var games []Game
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, fmt.Errorf("failed to decode page at skip=%d: %w", skip, err)
	}

	c.logger.Debug("Fetched top-titles page",
		zap.Int("skip", skip),
		zap.Int("items", len(games)))

	return games, nil
}
