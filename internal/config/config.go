package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP server
	Port string

	// Transaction source
	DataSource   string // csv | sqlite | memory
	CSVPath      string
	SQLiteDBPath string
	SQLiteTable  string

	// Grantee metadata table (TOML); optional
	MetadataPath string

	// Logging
	LogLevel string
	LogJSON  bool
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8082"),

		DataSource:   getEnv("DATA_SOURCE", "csv"),
		CSVPath:      getEnv("CSV_PATH", "./data/grants.csv"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", ""),
		SQLiteTable:  getEnv("SQLITE_TABLE", "transactions"),

		MetadataPath: getEnv("METADATA_PATH", ""),

		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogJSON:  getEnvBool("LOG_JSON", false),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataSource {
	case "csv":
		if c.CSVPath == "" {
			errors = append(errors, "CSV path cannot be empty when using the csv source")
		}
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using the sqlite source")
		} else if _, err := os.Stat(c.SQLiteDBPath); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("SQLite database does not exist: %s", c.SQLiteDBPath))
		}
		if c.SQLiteTable == "" {
			errors = append(errors, "SQLite table name cannot be empty when using the sqlite source")
		}
	case "memory":
		// Nothing to validate; used by tests and demos.
	default:
		errors = append(errors, fmt.Sprintf("invalid data source '%s': must be one of [csv sqlite memory]", c.DataSource))
	}

	if c.MetadataPath != "" {
		if _, err := os.Stat(c.MetadataPath); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("metadata file does not exist: %s", c.MetadataPath))
		}
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
