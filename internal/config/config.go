package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const defaultPictureURLTemplate = "https://img.mlbstatic.com/mlb-photos/image/upload/w_213,q_auto:best/v1/people/%s/headshot/67/current"

// Load reads configuration from environment variables and .env file.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	var missing []string
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value
		}
		missing = append(missing, key)
		return ""
	}
	getEnvOr := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value
		}
		return fallback
	}

	cfg := Config{
		DBName:      getEnv("DB_NAME"),
		Environment: strings.ToLower(getEnvOr("ENVIRONMENT", "dev")),
		Port:        getEnvOr("PORT", "8080"),
		LogLevel:    getEnvOr("LOG_LEVEL", "info"),
		Turso: TursoConfig{
			PrimaryURL: getEnvOr("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvOr("TURSO_AUTH_TOKEN", ""),
		},
		Roster: RosterConfig{
			PictureURLTemplate: getEnvOr("PICTURE_URL_TEMPLATE", defaultPictureURLTemplate),
		},
		PubSub: PubSubConfig{
			ProjectID:    getEnvOr("GCP_PROJECT", ""),
			Topic:        getEnvOr("PICKS_TOPIC", "matchup-picks"),
			Subscription: getEnvOr("PICKS_SUBSCRIPTION", ""),
		},
	}
	pushRateLimit, err := strconv.Atoi(getEnvOr("PUSH_RATE_LIMIT", "100"))
	if err != nil || pushRateLimit < 0 {
		return Config{}, fmt.Errorf("PUSH_RATE_LIMIT must be a non-negative integer")
	}
	cfg.PushRateLimit = pushRateLimit

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}
	if cfg.Environment != "dev" && cfg.Environment != "prod" {
		return Config{}, fmt.Errorf("ENVIRONMENT must be dev or prod, got %q", cfg.Environment)
	}
	if cfg.Turso.PrimaryURL != "" && cfg.Turso.AuthToken == "" {
		return Config{}, fmt.Errorf("TURSO_AUTH_TOKEN is required when TURSO_PRIMARY_URL is set")
	}
	return cfg, nil
}

// DatabasePath returns the local database file, kept apart per environment so
// dev runs never write into the prod statistics.
func (c Config) DatabasePath() string {
	if c.DBName == ":memory:" {
		return c.DBName
	}
	name := strings.TrimSuffix(c.DBName, ".db")
	if c.IsDev() {
		return name + "-dev.db"
	}
	return name + ".db"
}

// ParseLevel maps LOG_LEVEL onto a charmbracelet log level, defaulting to info.
func (c Config) ParseLevel() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warn("Unknown LOG_LEVEL, falling back to info", "value", c.LogLevel)
		return log.InfoLevel
	}
	return level
}
