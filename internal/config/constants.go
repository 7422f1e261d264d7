package config

import "time"

const (
	envPort         = "PORT"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envProvider     = "RESULTS_PROVIDER"
	envStoreBackend = "STORE_BACKEND"
	envSQLitePath   = "SQLITE_PATH"
	envShareBaseURL = "SHARE_BASE_URL"
	envAdminToken   = "ADMIN_TOKEN"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envArchiveOn    = "ARCHIVE_ENABLED"
	envArchiveDir   = "ARCHIVE_DIR"
	envArchiveDays  = "ARCHIVE_RETENTION_DAYS"

	defaultPort         = "4000"
	defaultProvider     = "fixture"
	defaultStoreBackend = "memory"
	defaultSQLitePath   = "data/brackets.db"
	defaultShareBaseURL = "https://bracket.build"
	defaultMetricsPort  = "9090"
	defaultArchiveOn    = true
	defaultArchiveDir   = "data/archive"
	// Unclaimed shares age out of the archive after a month.
	defaultArchiveDays = 30
	// Conservative default scoreboard timeout; the admin refresh endpoint is
	// request-driven and should fail fast rather than hold the connection.
	defaultScoreboardTimeout = 10 * Duration(time.Second)
)
