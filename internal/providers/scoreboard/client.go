package scoreboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/avatarneil/bracket.build/internal/domain/results"
	"github.com/avatarneil/bracket.build/internal/providers"
)

// Config controls how the scoreboard client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches live playoff games from the scoreboard API and maps
// them onto bracket matchups.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	logger     *slog.Logger
}

// NewClient builds a scoreboard client, applying defaults for any
// unset config fields.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
	}
}

// FetchResults retrieves the current playoff scoreboard and returns
// one result per game that maps onto a bracket matchup. Games that
// cannot be mapped (unknown teams, malformed rounds) are skipped.
func (c *Client) FetchResults(ctx context.Context) ([]results.Result, error) {
	req, err := c.buildRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scoreboard: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    "scoreboard rate limit exceeded",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("scoreboard: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("scoreboard: decode response: %w", err)
	}

	mapped := make([]results.Result, 0, len(payload.Data))
	skipped := 0
	for _, game := range payload.Data {
		result, ok := mapResult(game)
		if !ok {
			skipped++
			continue
		}
		mapped = append(mapped, result)
	}
	if skipped > 0 {
		providers.LogWithProvider(ctx, c.logger, slog.LevelWarn, providerName,
			"skipped unmappable scoreboard games",
			"skipped", skipped,
			"total", len(payload.Data),
		)
	}

	return mapped, nil
}

func (c *Client) buildRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/scoreboard", nil)
	if err != nil {
		return nil, fmt.Errorf("scoreboard: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	return req, nil
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	secs, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
