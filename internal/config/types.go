package config

// Config holds all configuration for the application.
// PushRateLimit caps Pub/Sub push deliveries per second; 0 disables the cap.
type Config struct {
	DBName        string
	Environment   string
	Port          string
	LogLevel      string
	PushRateLimit int
	Turso         TursoConfig
	Roster        RosterConfig
	PubSub        PubSubConfig
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type RosterConfig struct {
	PictureURLTemplate string
}

// PubSubConfig is optional; an empty Subscription disables pick ingestion.
type PubSubConfig struct {
	ProjectID    string
	Topic        string
	Subscription string
}

// IsDev reports whether the dev database should be used.
func (c Config) IsDev() bool {
	return c.Environment != "prod"
}
