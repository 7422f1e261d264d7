package providers

import (
	"context"
	"log/slog"
)

// LogWithProvider emits a log entry if logger is non-nil and always tags the
// entry with the provider name. Provider implementations share it so their
// log lines stay filterable by provider.
func LogWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String("provider", provider))
	logger.Log(ctx, level, msg, args...)
}
