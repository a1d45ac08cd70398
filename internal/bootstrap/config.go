// Package bootstrap wires configuration, infrastructure, and the HTTP
// server into a runnable gateway.
package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/fireproject/fire-engine-bridge/config"
)

// InitLogger initializes the structured logger. Development mode
// lowers the level to debug.
func InitLogger(isDev bool) *slog.Logger {
	level := slog.LevelInfo
	if isDev {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (config.AppConfig, error) {
	// Load .env file if it exists (development)
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return config.AppConfig{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg config.AppConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}

// WarnOnInsecureConfig logs when the gateway is running with settings
// that must not reach production.
func WarnOnInsecureConfig(logger *slog.Logger, cfg *config.AppConfig) {
	if cfg == nil || logger == nil {
		return
	}
	if cfg.Auth.UsesInsecureSecret() {
		logger.Warn("token signing secret is the built-in default; set API_SECURITY_SECRET before production use")
	}
}
