package twitch

import "errors"

// Config holds configuration for the livestream provider.
type Config struct {
	// TokenURL is the OAuth2 client-credentials token endpoint.
	TokenURL string `mapstructure:"token_url" default:"https://id.twitch.tv/oauth2/token"`
	// BaseURL is the Helix API base address.
	BaseURL string `mapstructure:"base_url" default:"https://api.twitch.tv/helix"`
	// ClientID is the application client id.
	ClientID string `mapstructure:"client_id" default:""`
	// ClientSecret is the application client secret.
	ClientSecret string `mapstructure:"client_secret" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
}

// Validate reports whether the provider credentials are present.
func (c Config) Validate() error {
	if c.ClientID == "" {
		return errors.New("twitch: client id is required")
	}
	if c.ClientSecret == "" {
		return errors.New("twitch: client secret is required")
	}
	return nil
}
