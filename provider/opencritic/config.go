package opencritic

import "errors"

// Config holds configuration for the critic-aggregation provider.
type Config struct {
	// BaseURL is the API base address.
	BaseURL string `mapstructure:"base_url" default:"https://opencritic-api.p.rapidapi.com"`
	// APIKey is the static API key sent with every request.
	APIKey string `mapstructure:"api_key" default:""`
	// APIHost is the API host header paired with the key.
	APIHost string `mapstructure:"api_host" default:"opencritic-api.p.rapidapi.com"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
	// PageIntervalMS is the minimum delay between page requests in
	// milliseconds, sized to the free-tier request quota.
	PageIntervalMS int `mapstructure:"page_interval_ms" default:"1000"`
	// Pages is the number of pages fetched per sync run. The API has no
	// has-more flag, so the page count is predetermined.
	Pages int `mapstructure:"pages" default:"3"`
}

// Validate reports whether the provider credentials are present.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("opencritic: api key is required")
	}
	return nil
}
