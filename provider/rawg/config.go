package rawg

import "errors"

// Config holds configuration for the game-database enrichment provider.
type Config struct {
	// BaseURL is the API base address.
	BaseURL string `mapstructure:"base_url" default:"https://api.rawg.io/api"`
	// APIKey is the static key passed as a query parameter.
	APIKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
	// RequestIntervalMS is the minimum delay between enrichment requests in
	// milliseconds, sized to the free-tier request quota.
	RequestIntervalMS int `mapstructure:"request_interval_ms" default:"300"`
}

// Validate reports whether the provider credentials are present.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("rawg: api key is required")
	}
	return nil
}
