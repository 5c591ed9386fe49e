package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "NOTION_API_TOKEN", "NOTION_DATABASE_ID",
		"NOTION_EVENTS_API_TOKEN", "NOTION_EVENTS_DATABASE_ID",
		"UPSTREAM_TIMEOUT", "SITE_TIMEZONE", "API_PORT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.Team.Configured())
	assert.False(t, cfg.Events.Configured())
	assert.Equal(t, "NOTION_EVENTS_API_TOKEN", cfg.Events.TokenVar)
	assert.Equal(t, 15*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, "8080", cfg.APIPort)
	require.NoError(t, cfg.Validate())
}

func TestLoadDatasets(t *testing.T) {
	t.Setenv("NOTION_EVENTS_API_TOKEN", "secret_x")
	t.Setenv("NOTION_EVENTS_DATABASE_ID", "db-events")
	t.Setenv("NOTION_API_TOKEN", "secret_y")
	t.Setenv("NOTION_DATABASE_ID", "")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.Events.Configured())
	assert.Equal(t, "db-events", cfg.Events.DatabaseID)
	// A token without a database id is not enough.
	assert.False(t, cfg.Team.Configured())
}

func TestLoadBadTimeout(t *testing.T) {
	t.Setenv("UPSTREAM_TIMEOUT", "soon")

	_, err := Load()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "UPSTREAM_TIMEOUT", cfgErr.Field)
}

func TestValidate(t *testing.T) {
	base := Config{Environment: EnvDevelopment, Timezone: "America/New_York", UpstreamTimeout: time.Second}
	require.NoError(t, base.Validate())

	bad := base
	bad.Environment = "staging"
	assert.EqualError(t, bad.Validate(), "APP_ENV: must be 'development' or 'production'")

	bad = base
	bad.Timezone = "Mars/Olympus_Mons"
	assert.Error(t, bad.Validate())
	assert.Equal(t, time.UTC, bad.Location())
}
