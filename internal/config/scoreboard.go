package config

import "time"

const (
	envScoreboardBaseURL = "SCOREBOARD_BASE_URL"
	envScoreboardAPIKey  = "SCOREBOARD_API_KEY"
	envScoreboardTimeout = "SCOREBOARD_TIMEOUT"

	defaultScoreboardBaseURL = "https://scores.bracket.build/v1"
)

// ScoreboardConfig controls how we talk to the upstream scoreboard API.
type ScoreboardConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func loadScoreboard() ScoreboardConfig {
	return ScoreboardConfig{
		BaseURL: envOrDefault(envScoreboardBaseURL, defaultScoreboardBaseURL),
		APIKey:  envOrDefault(envScoreboardAPIKey, ""),
		Timeout: durationEnvOrDefault(envScoreboardTimeout, defaultScoreboardTimeout),
	}
}
