package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	envKeyEnvFile  = "MCP_ENV_FILE"
	envKeyName     = "MCP_SERVER_NAME"
	envKeyVersion  = "MCP_SERVER_VERSION"
	envKeyTrans    = "MCP_TRANSPORT"
	envKeyHTTPAddr = "MCP_HTTP_ADDR"
	envKeyLogLevel = "MCP_LOG_LEVEL"

	defaultEnvFile = ".env"
)

// Env is the environment-derived part of the configuration.
type Env struct {
	Options
	LogLevel slog.Level
}

// FromEnv loads an optional .env file and reads configuration from the
// environment. Variables already set in the process take precedence over the
// file. With nothing set it returns the stdio defaults.
func FromEnv() (Env, error) {
	envFile := envOr(envKeyEnvFile, defaultEnvFile)
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	transport, err := ParseTransportKind(os.Getenv(envKeyTrans))
	if err != nil {
		return Env{}, err
	}

	level, err := ParseLogLevel(os.Getenv(envKeyLogLevel))
	if err != nil {
		return Env{}, err
	}

	opts := Options{
		Name:      os.Getenv(envKeyName),
		Version:   os.Getenv(envKeyVersion),
		Transport: transport,
		HTTPAddr:  os.Getenv(envKeyHTTPAddr),
	}

	return Env{Options: opts.WithDefaults(), LogLevel: level}, nil
}

// ParseLogLevel maps debug, info, warn and error to slog levels.
// The empty string selects info.
func ParseLogLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid %s: %w", envKeyLogLevel, err)
	}

	return level, nil
}

// envOr returns the value of the environment variable key, or fallback if not set.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
