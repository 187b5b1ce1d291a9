package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	databaseURLKey   = "database_url"
	databaseURLEnv   = "DATABASE_URL"
	dataDirKey       = "data_dir"
	outputDirKey     = "output_dir"
	defaultDataDir   = "data"
	defaultOutputDir = "output"
)

// DatabaseURL returns the database_url setting, falling back to the
// DATABASE_URL environment variable.
func DatabaseURL(cfg *Config) (string, error) {
	if url := cfg.GetString(databaseURLKey, ""); url != "" {
		return url, nil
	}
	if url := os.Getenv(databaseURLEnv); url != "" {
		return url, nil
	}
	return "", fmt.Errorf("%w: database URL not configured (set %s or %s)",
		ErrMissingConfiguration, databaseURLKey, databaseURLEnv)
}

// DataDir returns the data directory, "data" when unset.
func DataDir(cfg *Config) string {
	return filepath.Clean(cfg.GetString(dataDirKey, defaultDataDir))
}

// OutputDir returns the output directory, "output" when unset.
func OutputDir(cfg *Config) string {
	return filepath.Clean(cfg.GetString(outputDirKey, defaultOutputDir))
}
