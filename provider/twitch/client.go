package twitch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"catalog-sync/core/apiclient"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// tokenExpiryMargin is the fraction of the provider-declared TTL after which
// the cached token is refreshed, leaving a safety margin before the real
// expiry.
const tokenExpiryMargin = 0.9

// tokenCache holds the process-wide app access token.
// The mutex makes the cache safe regardless of the caller's concurrency
// model; the singleflight group collapses simultaneous refreshes into one
// token exchange.
type tokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
	sf        singleflight.Group
}

func (tc *tokenCache) get() (string, bool) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if tc.token != "" && time.Now().Before(tc.expiresAt) {
		return tc.token, true
	}
	return "", false
}

func (tc *tokenCache) set(token string, ttl time.Duration) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.token = token
	tc.expiresAt = time.Now().Add(time.Duration(float64(ttl) * tokenExpiryMargin))
}

// Client talks to the livestream provider's Helix API.
// It owns its OAuth2 token cache; the id resolver and the stream and clip
// fetchers all share the same cached token.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
	tokens     tokenCache
}

// NewClient creates a new livestream client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: apiclient.New(cfg.TimeoutSeconds),
		logger:     logger,
	}
}

// Game is a game entry of the provider's catalog.
type Game struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Stream is one live broadcast of a game.
type Stream struct {
	ID           string `json:"id"`
	UserName     string `json:"user_name"`
	Title        string `json:"title"`
	ViewerCount  int    `json:"viewer_count"`
	ThumbnailURL string `json:"thumbnail_url"`
	Language     string `json:"language"`
}

// Clip is one recorded clip of a game.
type Clip struct {
	ID              string `json:"id"`
	URL             string `json:"url"`
	Title           string `json:"title"`
	BroadcasterName string `json:"broadcaster_name"`
	ViewCount       int    `json:"view_count"`
	ThumbnailURL    string `json:"thumbnail_url"`
}

type dataEnvelope[T any] struct {
	Data []T `json:"data"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Token returns a valid app access token, performing the client-credentials
// exchange only when the cached token has passed its refresh point.
func (c *Client) Token(ctx context.Context) (string, error) {
	if token, ok := c.tokens.get(); ok {
		return token, nil
	}

	// Collapse concurrent refreshes into a single exchange.
	v, err, _ := c.tokens.sf.Do("token", func() (any, error) {
		if token, ok := c.tokens.get(); ok {
			return token, nil
		}
		return c.exchangeToken(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Client) exchangeToken(ctx context.Context) (string, error) {
	form := url.Values{
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"grant_type":    {"client_credentials"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("token exchange returned HTTP %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("token exchange returned an empty token")
	}

	c.tokens.set(tr.AccessToken, time.Duration(tr.ExpiresIn)*time.Second)
	c.logger.Debug("Refreshed app access token", zap.Int("expires_in", tr.ExpiresIn))

	return tr.AccessToken, nil
}

// LookupGame resolves an exact game name to its id, or "" if unknown.
// The endpoint matches names case-insensitively but offers no fuzzy search;
// see Resolver for the fallback chain built on top of this.
func (c *Client) LookupGame(ctx context.Context, name string) (string, error) {
	var envelope dataEnvelope[Game]
	reqURL := fmt.Sprintf("%s/games?name=%s", c.cfg.BaseURL, url.QueryEscape(name))
	if err := c.getJSON(ctx, reqURL, &envelope); err != nil {
		return "", err
	}
	if len(envelope.Data) == 0 {
		return "", nil
	}
	return envelope.Data[0].ID, nil
}

// LiveStreams returns up to first live broadcasts of the given game id,
// ordered by viewer count by the provider.
func (c *Client) LiveStreams(ctx context.Context, gameID string, first int) ([]Stream, error) {
	var envelope dataEnvelope[Stream]
	reqURL := fmt.Sprintf("%s/streams?game_id=%s&first=%d", c.cfg.BaseURL, url.QueryEscape(gameID), first)
	if err := c.getJSON(ctx, reqURL, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// TopClips returns up to first clips of the given game id.
func (c *Client) TopClips(ctx context.Context, gameID string, first int) ([]Clip, error) {
	var envelope dataEnvelope[Clip]
	reqURL := fmt.Sprintf("%s/clips?game_id=%s&first=%d", c.cfg.BaseURL, url.QueryEscape(gameID), first)
	if err := c.getJSON(ctx, reqURL, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	token, err := c.Token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Client-Id", c.cfg.ClientID)

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
