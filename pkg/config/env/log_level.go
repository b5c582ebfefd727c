package env

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const LogLevelKey = "CALC_LOG_LEVEL"

// ParseLogLevel maps debug, info, warn and error (any case) to a slog level.
// An empty string is info.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %q (must be debug, info, warn or error)", s)
	}
}

// SetupLogger installs a text handler on stderr as the default slog logger,
// with the level taken from CALC_LOG_LEVEL.
func SetupLogger() error {
	level, err := ParseLogLevel(os.Getenv(LogLevelKey))
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return err
}
