// Package config provides configuration structures and validation for the
// application. Everything is environment-based: server settings, logging,
// snapshot storage, and dashboard tuning.
package config

import (
	"errors"
	"strings"
	"time"
)

// Storage drivers
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config holds the complete application configuration
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
	Server      ServerConfig
	Storage     StorageConfig
	Dashboard   DashboardConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Port            int           // Port to listen on
	ShutdownTimeout time.Duration // Grace period for server shutdown
	ReadTimeout     time.Duration // Maximum duration for reading entire request
	WriteTimeout    time.Duration // Maximum duration for writing response
	IdleTimeout     time.Duration // Maximum duration to wait for next request
}

// StorageConfig selects where ledger snapshots live. The memory driver keeps
// everything volatile; the sqlite driver write-through persists snapshots.
type StorageConfig struct {
	Driver     string
	SQLitePath string
}

// DashboardConfig contains dashboard tuning parameters
type DashboardConfig struct {
	RecentEntries int // Number of money entries shown in the recent list
}

// validate performs validation of all configuration values
func (c *Config) validate() error {
	var validationErrors []string

	if c.Server.Port <= 0 {
		validationErrors = append(validationErrors, "SERVER_PORT must be greater than 0")
	}
	if c.Server.ShutdownTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_SHUTDOWN_TIMEOUT must be greater than 0")
	}
	if c.Server.ReadTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_READ_TIMEOUT must be greater than 0")
	}
	if c.Server.WriteTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_WRITE_TIMEOUT must be greater than 0")
	}
	if c.Server.IdleTimeout <= 0 {
		validationErrors = append(validationErrors, "SERVER_IDLE_TIMEOUT must be greater than 0")
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StorageSQLite:
		if c.Storage.SQLitePath == "" {
			validationErrors = append(validationErrors, "STORAGE_SQLITE_PATH is required when STORAGE_DRIVER is sqlite")
		}
	default:
		validationErrors = append(validationErrors, "STORAGE_DRIVER must be one of: memory, sqlite")
	}

	if c.Dashboard.RecentEntries <= 0 {
		validationErrors = append(validationErrors, "DASHBOARD_RECENT_ENTRIES must be greater than 0")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
