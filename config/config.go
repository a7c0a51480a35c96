// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Recurring RecurringConfig
	Backup    BackupConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// StorageConfig holds the JSON file store configuration.
type StorageConfig struct {
	DataDir string
}

// RecurringConfig holds recurring payment behaviour configuration.
type RecurringConfig struct {
	// PendingWindowDays is how far past today occurrences are offered
	// for approval.
	PendingWindowDays int
	// CountSkipped makes skipped occurrences count towards an
	// after_occurrences end condition.
	CountSkipped bool
}

// BackupConfig holds the automatic backup scheduler configuration.
type BackupConfig struct {
	Dir      string
	Interval time.Duration
	Retain   int
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Storage: StorageConfig{
			DataDir: getEnv("DATA_DIR", "./data"),
		},
		Recurring: RecurringConfig{
			PendingWindowDays: getEnvAsInt("RECURRING_PENDING_WINDOW_DAYS", 3),
			CountSkipped:      getEnvAsBool("RECURRING_COUNT_SKIPPED", false),
		},
		Backup: BackupConfig{
			Dir:      getEnv("BACKUP_DIR", "./backups"),
			Interval: getEnvAsDuration("BACKUP_INTERVAL", time.Hour),
			Retain:   getEnvAsInt("BACKUP_RETAIN", 24),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
