package api

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read before the environment when present.
const DefaultEnvFile = ".env"

// Config carries environment-driven settings for the API process.
type Config struct {
	Port            string
	GinMode         string
	SeedFile        string
	ShutdownTimeout time.Duration
	Environment     string

	OTLPEndpoint   string
	OTLPInsecure   bool
	TracesDisabled bool
}

// LoadConfig loads the optional env files, then reads environment variables,
// applies defaults, and validates numeric settings. Variables already set in
// the environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := Config{
		Port:            envDefault("PORT", "8080"),
		GinMode:         strings.TrimSpace(os.Getenv("GIN_MODE")),
		SeedFile:        strings.TrimSpace(os.Getenv("SEED_FILE")),
		ShutdownTimeout: 5 * time.Second,
		Environment:     envDefault("ENVIRONMENT", "local"),
		OTLPEndpoint:    strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")),
		OTLPInsecure:    os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") != "0",
		TracesDisabled:  isTruthy(os.Getenv("OTEL_TRACES_DISABLED")),
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}
	if raw := strings.TrimSpace(os.Getenv("SHUTDOWN_TIMEOUT_SECONDS")); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be a positive integer")
		}
		cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
	}
	return cfg, nil
}

// Addr is the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
