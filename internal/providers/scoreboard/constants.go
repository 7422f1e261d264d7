package scoreboard

import "time"

const (
	providerName       = "scoreboard"
	defaultBaseURL     = "https://scores.bracket.build/v1"
	defaultHTTPTimeout = 10 * time.Second
)
