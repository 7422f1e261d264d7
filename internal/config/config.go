package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	LogLevel     string
	LogFormat    string
	Provider     string
	StoreBackend string
	SQLitePath   string
	ShareBaseURL string
	AdminToken   string
	Scoreboard   ScoreboardConfig
	Archive      ArchiveConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		LogLevel:     envOrDefault(envLogLevel, ""),
		LogFormat:    envOrDefault(envLogFormat, ""),
		Provider:     envOrDefault(envProvider, defaultProvider),
		StoreBackend: envOrDefault(envStoreBackend, defaultStoreBackend),
		SQLitePath:   envOrDefault(envSQLitePath, defaultSQLitePath),
		ShareBaseURL: envOrDefault(envShareBaseURL, defaultShareBaseURL),
		AdminToken:   envOrDefault(envAdminToken, ""),
		Scoreboard:   loadScoreboard(),
		Archive:      loadArchive(),
		Metrics:      loadMetrics(),
	}
}
