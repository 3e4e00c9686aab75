// Package logger standardizes slog configuration for the service: JSON
// output with lowercase level values so log lines aggregate uniformly.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects the output level and the service_name attribute stamped on
// every record.
type Config struct {
	Level       string
	ServiceName string
}

// LoadConfigFromEnv reads LOG_LEVEL and SERVICE_NAME with sane defaults.
func LoadConfigFromEnv() *Config {
	return &Config{
		Level:       envOrDefault("LOG_LEVEL", "info"),
		ServiceName: envOrDefault("SERVICE_NAME", "newsdeck"),
	}
}

// New builds a slog.Logger writing JSON records to output.
func New(output io.Writer, cfg *Config) *slog.Logger {
	options := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if level, ok := a.Value.Any().(slog.Level); ok {
					return slog.Attr{Key: slog.LevelKey, Value: slog.StringValue(strings.ToLower(level.String()))}
				}
			}
			return a
		},
	}

	handler := slog.NewJSONHandler(output, options)
	return slog.New(handler).With("service_name", cfg.ServiceName)
}

// Init builds the process logger from the environment and installs it as the
// slog default.
func Init() *slog.Logger {
	log := New(os.Stdout, LoadConfigFromEnv())
	slog.SetDefault(log)
	return log
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
