package config

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_NAME", "matchups")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("TURSO_PRIMARY_URL", "")
	t.Setenv("TURSO_AUTH_TOKEN", "")
	t.Setenv("PICKS_SUBSCRIPTION", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PUSH_RATE_LIMIT", "")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "matchups", cfg.DBName)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "matchup-picks", cfg.PubSub.Topic)
	assert.Empty(t, cfg.PubSub.Subscription)
	assert.Contains(t, cfg.Roster.PictureURLTemplate, "%s")
	assert.Equal(t, 100, cfg.PushRateLimit)
	assert.True(t, cfg.IsDev())
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_NAME", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_NAME")
}

func TestLoad_RejectsUnknownEnvironment(t *testing.T) {
	setRequired(t)
	t.Setenv("ENVIRONMENT", "staging")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_PushRateLimit(t *testing.T) {
	setRequired(t)
	t.Setenv("PUSH_RATE_LIMIT", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.PushRateLimit)

	t.Setenv("PUSH_RATE_LIMIT", "fast")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_TursoNeedsToken(t *testing.T) {
	setRequired(t)
	t.Setenv("TURSO_PRIMARY_URL", "libsql://stats.turso.io")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabasePath(t *testing.T) {
	assert.Equal(t, "stats-dev.db", Config{DBName: "stats.db", Environment: "dev"}.DatabasePath())
	assert.Equal(t, "stats.db", Config{DBName: "stats", Environment: "prod"}.DatabasePath())
	assert.Equal(t, ":memory:", Config{DBName: ":memory:", Environment: "prod"}.DatabasePath())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, Config{LogLevel: "debug"}.ParseLevel())
	assert.Equal(t, log.InfoLevel, Config{LogLevel: "loud"}.ParseLevel())
}
