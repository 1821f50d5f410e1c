package rawg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"catalog-sync/core/apiclient"
	"catalog-sync/core/ratelimit"

	"go.uber.org/zap"
)

// SearchResult is the top-ranked search hit for a title.
type SearchResult struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Genres    []Genre         `json:"genres"`
	Platforms []PlatformEntry `json:"platforms"`
}

// Genre is a genre entry.
type Genre struct {
	Name string `json:"name"`
}

// PlatformEntry wraps the nested platform object of a search result.
type PlatformEntry struct {
	Platform PlatformRef `json:"platform"`
}

// PlatformRef is the platform reference inside a PlatformEntry.
type PlatformRef struct {
	Name string `json:"name"`
}

// Details is the long-form record of a game. The search endpoint omits
// long-form fields, so descriptions require this second call.
type Details struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	DescriptionRaw string `json:"description_raw"`
}

type searchEnvelope struct {
	Results []SearchResult `json:"results"`
}

// Client talks to the game-database enrichment API.
// Enrichment is best effort: callers treat errors and missing matches as
// "no enrichment available", never as fatal.
type Client struct {
	cfg        Config
	httpClient *http.Client
	pacer      *ratelimit.Pacer
	logger     *zap.Logger
}

// NewClient creates a new enrichment client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: apiclient.New(cfg.TimeoutSeconds),
		pacer:      ratelimit.NewPacer(time.Duration(cfg.RequestIntervalMS) * time.Millisecond),
		logger:     logger,
	}
}

// Search returns the database's top-ranked result for a free-text title, or
// nil if the result set is empty. The API ranks; the client takes the first.
func (c *Client) Search(ctx context.Context, title string) (*SearchResult, error) {
	if err := c.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/games?search=%s&page_size=1&key=%s",
		c.cfg.BaseURL, url.QueryEscape(title), url.QueryEscape(c.cfg.APIKey))

	var envelope searchEnvelope
	if err := c.getJSON(ctx, reqURL, &envelope); err != nil {
		return nil, fmt.Errorf("search %q failed: %w", title, err)
	}

	if len(envelope.Results) == 0 {
		c.logger.Debug("No enrichment match", zap.String("title", title))
		return nil, nil
	}
	return &envelope.Results[0], nil
}

// GetDetails fetches the long-form record for a previously searched id.
func (c *Client) GetDetails(ctx context.Context, id int64) (*Details, error) {
	if err := c.pacer.Wait(ctx); err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/games/%d?key=%s", c.cfg.BaseURL, id, url.QueryEscape(c.cfg.APIKey))

	var details Details
	if err := c.getJSON(ctx, reqURL, &details); err != nil {
		return nil, fmt.Errorf("details for id=%d failed: %w", id, err)
	}
	return &details, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
