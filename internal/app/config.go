package app

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"tripgen.codingchallenge.net/internal/appconf"
	"tripgen.codingchallenge.net/internal/logging"
)

// Environment variables read by LoadConfig.
const (
	EnvVarEnv       = "TRIPGEN_ENV"
	EnvVarLogLevel  = "TRIPGEN_LOG_LEVEL"
	EnvVarFaresFile = "TRIPGEN_FARES_FILE"
	EnvVarPort      = "TRIPGEN_PORT"
	EnvVarAPIKeys   = "TRIPGEN_API_KEYS"
	EnvVarRateLimit = "TRIPGEN_RATE_LIMIT"
	EnvVarGTFSFile  = "TRIPGEN_GTFS_FILE"
)

// Config holds all the configuration settings for the Application.
// Values come from the environment first; each binary may override them with flags.
type Config struct {
	Env       appconf.Environment
	LogLevel  slog.Level
	FaresPath string
	Port      int
	ApiKeys   []string
	RateLimit int
	// GTFSPath optionally names a GTFS static zip whose stops the fare table must cover.
	GTFSPath string
}

// DefaultConfig is used for anything the environment leaves unset.
func DefaultConfig() Config {
	return Config{
		Env:       appconf.Development,
		LogLevel:  slog.LevelInfo,
		Port:      4000,
		ApiKeys:   []string{"test"},
		RateLimit: 100,
	}
}

// LoadConfig loads any of envFiles that exist into the process environment,
// without overriding variables that are already set, then reads Config from it.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return Config{}, fmt.Errorf("loading %s: %w", file, err)
		}
	}
	return ConfigFromEnv(os.LookupEnv)
}

// ConfigFromEnv builds a Config from lookup, starting from DefaultConfig.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if value, ok := lookup(EnvVarEnv); ok {
		env, err := appconf.ParseEnvironment(value)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvVarEnv, err)
		}
		cfg.Env = env
	}

	if value, ok := lookup(EnvVarLogLevel); ok {
		level, err := logging.ParseLevel(value)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvVarLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if value, ok := lookup(EnvVarFaresFile); ok {
		cfg.FaresPath = strings.TrimSpace(value)
	}

	if value, ok := lookup(EnvVarPort); ok {
		port, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("%s: invalid port %q", EnvVarPort, value)
		}
		cfg.Port = port
	}

	if value, ok := lookup(EnvVarAPIKeys); ok {
		cfg.ApiKeys = ParseAPIKeys(value)
	}

	if value, ok := lookup(EnvVarRateLimit); ok {
		limit, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || limit < 0 {
			return Config{}, fmt.Errorf("%s: invalid rate limit %q", EnvVarRateLimit, value)
		}
		cfg.RateLimit = limit
	}

	if value, ok := lookup(EnvVarGTFSFile); ok {
		cfg.GTFSPath = strings.TrimSpace(value)
	}

	return cfg, nil
}

// ParseAPIKeys splits a comma separated key list, dropping blanks.
func ParseAPIKeys(value string) []string {
	var keys []string
	for _, key := range strings.Split(value, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
