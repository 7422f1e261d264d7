package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.StoreBackend != defaultStoreBackend {
		t.Fatalf("expected default store backend %s, got %s", defaultStoreBackend, cfg.StoreBackend)
	}
	if cfg.SQLitePath != defaultSQLitePath {
		t.Fatalf("expected default sqlite path %s, got %s", defaultSQLitePath, cfg.SQLitePath)
	}
	if cfg.ShareBaseURL != defaultShareBaseURL {
		t.Fatalf("expected default share base url %s, got %s", defaultShareBaseURL, cfg.ShareBaseURL)
	}
	if cfg.AdminToken != "" {
		t.Fatalf("expected empty admin token by default, got %s", cfg.AdminToken)
	}
	if cfg.Scoreboard.BaseURL != defaultScoreboardBaseURL {
		t.Fatalf("expected default scoreboard base url %s, got %s", defaultScoreboardBaseURL, cfg.Scoreboard.BaseURL)
	}
	if cfg.Scoreboard.Timeout != defaultScoreboardTimeout {
		t.Fatalf("expected default scoreboard timeout %s, got %s", defaultScoreboardTimeout, cfg.Scoreboard.Timeout)
	}
	if !cfg.Archive.Enabled {
		t.Fatalf("expected archive enabled by default")
	}
	if cfg.Archive.Dir != defaultArchiveDir {
		t.Fatalf("expected default archive dir %s, got %s", defaultArchiveDir, cfg.Archive.Dir)
	}
	if cfg.Archive.RetentionDays != defaultArchiveDays {
		t.Fatalf("expected default retention %d, got %d", defaultArchiveDays, cfg.Archive.RetentionDays)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "scoreboard")
	t.Setenv(envStoreBackend, "sqlite")
	t.Setenv(envSQLitePath, "/tmp/test.db")
	t.Setenv(envShareBaseURL, "http://localhost:4000")
	t.Setenv(envAdminToken, "secret-token")
	t.Setenv(envScoreboardBaseURL, "http://example.com/v2")
	t.Setenv(envScoreboardAPIKey, "secret-key")
	t.Setenv(envScoreboardTimeout, "3s")
	t.Setenv(envArchiveOn, "false")
	t.Setenv(envArchiveDays, "7")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != "scoreboard" {
		t.Fatalf("expected provider scoreboard, got %s", cfg.Provider)
	}
	if cfg.StoreBackend != "sqlite" {
		t.Fatalf("expected sqlite backend, got %s", cfg.StoreBackend)
	}
	if cfg.SQLitePath != "/tmp/test.db" {
		t.Fatalf("expected sqlite path override, got %s", cfg.SQLitePath)
	}
	if cfg.ShareBaseURL != "http://localhost:4000" {
		t.Fatalf("expected share base url override, got %s", cfg.ShareBaseURL)
	}
	if cfg.AdminToken != "secret-token" {
		t.Fatalf("expected admin token override, got %s", cfg.AdminToken)
	}
	if cfg.Scoreboard.BaseURL != "http://example.com/v2" {
		t.Fatalf("expected scoreboard base url override, got %s", cfg.Scoreboard.BaseURL)
	}
	if cfg.Scoreboard.APIKey != "secret-key" {
		t.Fatalf("expected scoreboard api key override, got %s", cfg.Scoreboard.APIKey)
	}
	if cfg.Scoreboard.Timeout != 3*time.Second {
		t.Fatalf("expected scoreboard timeout 3s, got %s", cfg.Scoreboard.Timeout)
	}
	if cfg.Archive.Enabled {
		t.Fatalf("expected archive disabled")
	}
	if cfg.Archive.RetentionDays != 7 {
		t.Fatalf("expected retention 7, got %d", cfg.Archive.RetentionDays)
	}
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv(envScoreboardTimeout, "not-a-duration")
	t.Setenv(envArchiveDays, "-4")

	cfg := Load()

	if cfg.Scoreboard.Timeout != defaultScoreboardTimeout {
		t.Fatalf("expected invalid timeout to fall back, got %s", cfg.Scoreboard.Timeout)
	}
	if cfg.Archive.RetentionDays != defaultArchiveDays {
		t.Fatalf("expected invalid retention to fall back, got %d", cfg.Archive.RetentionDays)
	}
}
