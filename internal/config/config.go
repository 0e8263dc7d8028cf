package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Database drivers
const (
	DriverSurrealDB = "surrealdb"
	DriverMemory    = "memory"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Metrics  MetricsConfig
	LogLevel string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string
	Env            string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
	StaticDir      string
}

// DatabaseConfig holds persistence backend settings
type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        string
	Namespace   string
	Database    string
	User        string
	Password    string
	AutoMigrate bool
}

// MetricsConfig holds Prometheus settings
type MetricsConfig struct {
	Enabled        bool
	SampleInterval time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// Values from a .env file in the working directory are applied first; variables
// already present in the environment win.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "3001"),
			Env:            getEnv("SERVER_ENV", "development"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			AllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
			StaticDir:      getEnv("STATIC_DIR", "build"),
		},
		Database: DatabaseConfig{
			Driver:      getEnv("DB_DRIVER", DriverSurrealDB),
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "8000"),
			Namespace:   getEnv("DB_NAMESPACE", "phonebook"),
			Database:    getEnv("DB_DATABASE", "main"),
			User:        getEnv("DB_USER", "root"),
			Password:    getEnv("DB_PASSWORD", "root"),
			AutoMigrate: getBoolEnv("DB_AUTO_MIGRATE", true),
		},
		Metrics: MetricsConfig{
			Enabled:        getBoolEnv("METRICS_ENABLED", true),
			SampleInterval: getDurationEnv("METRICS_SAMPLE_INTERVAL", time.Minute),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// SlogLevel maps LOG_LEVEL onto a slog level. Unknown values fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
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

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	} else if p, err := strconv.Atoi(c.Server.Port); err != nil || p < 0 || p > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be a number between 0 and 65535, got '%s'", c.Server.Port))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}

	// Database validation
	switch c.Database.Driver {
	case DriverMemory:
	case DriverSurrealDB:
		if c.Database.Host == "" {
			errs = append(errs, errors.New("DB_HOST is required"))
		}
		if c.Database.Port == "" {
			errs = append(errs, errors.New("DB_PORT is required"))
		}
		if c.Database.Namespace == "" {
			errs = append(errs, errors.New("DB_NAMESPACE is required"))
		}
		if c.Database.Database == "" {
			errs = append(errs, errors.New("DB_DATABASE is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be '%s' or '%s', got '%s'", DriverSurrealDB, DriverMemory, c.Database.Driver))
	}

	if c.IsProduction() && c.Database.Driver == DriverMemory {
		errs = append(errs, errors.New("DB_DRIVER 'memory' is not allowed in production"))
	}

	if c.Metrics.Enabled && c.Metrics.SampleInterval <= 0 {
		errs = append(errs, errors.New("METRICS_SAMPLE_INTERVAL must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
