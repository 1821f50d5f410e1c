package config_test

import (
	"testing"

	"catalog-sync/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "catalog", cfg.Database.Name)
	assert.Equal(t, "boxart", cfg.Storage.Bucket)

	// Pacing defaults are tied to the upstream request quotas.
	assert.Equal(t, 1000, cfg.Providers.OpenCritic.PageIntervalMS)
	assert.Equal(t, 300, cfg.Providers.Rawg.RequestIntervalMS)
	assert.Equal(t, 3, cfg.Providers.OpenCritic.Pages)
	assert.Equal(t, "https://id.twitch.tv/oauth2/token", cfg.Providers.Twitch.TokenURL)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PROVIDERS_OPENCRITIC_PAGES", "5")
	t.Setenv("PROVIDERS_TWITCH_CLIENT_ID", "abc123")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Providers.OpenCritic.Pages)
	assert.Equal(t, "abc123", cfg.Providers.Twitch.ClientID)
}

func TestConfig_Validate(t *testing.T) {
	// Credentials default to empty, so a bare config must not pass: a run
	// attempted without them would fail mid-pipeline instead of at startup.
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)
	require.Error(t, cfg.Validate())

	cfg.Providers.OpenCritic.APIKey = "oc-key"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rawg")

	cfg.Providers.Rawg.APIKey = "rawg-key"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "twitch")

	cfg.Providers.Twitch.ClientID = "id"
	require.Error(t, cfg.Validate(), "client secret still missing")

	cfg.Providers.Twitch.ClientSecret = "secret"
	assert.NoError(t, cfg.Validate())
}
