package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by the CLI
const (
	EnvConfigPath  = "JOB_RANKER_CONFIG"
	EnvDatabaseURL = "DATABASE_URL"
	EnvMaxJobs     = "JOB_RANKER_MAX_JOBS"
)

// EnvConfig holds settings taken from the process environment (and .env).
type EnvConfig struct {
	ConfigPath  string
	DatabaseURL string
	MaxJobs     int
}

// NewEnvConfig reads JOB_RANKER_CONFIG, DATABASE_URL and JOB_RANKER_MAX_JOBS.
// All are optional; an unset JOB_RANKER_MAX_JOBS leaves MaxJobs at zero.
func NewEnvConfig() (*EnvConfig, error) {
	cfg := &EnvConfig{
		ConfigPath:  os.Getenv(EnvConfigPath),
		DatabaseURL: os.Getenv(EnvDatabaseURL),
	}

	if maxJobs := os.Getenv(EnvMaxJobs); maxJobs != "" {
		n, err := strconv.Atoi(maxJobs)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %v", EnvMaxJobs, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("%s must be non-negative, got %d", EnvMaxJobs, n)
		}
		cfg.MaxJobs = n
	}

	return cfg, nil
}

// Defaults converts the environment into Config defaults for MergeWithDefaults.
func (e *EnvConfig) Defaults() Config {
	return Config{
		DatabaseURL: e.DatabaseURL,
		MaxJobs:     e.MaxJobs,
	}
}
