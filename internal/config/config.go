// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Logging   LoggingConfig
	App       AppConfig
	Booking   BookingConfig
	Inventory InventoryConfig
	Payment   PaymentConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	// LoginURL is the external sign-in flow; 401 responses carry it as a
	// hint.
	LoginURL string `env:"APP_LOGIN_URL" envDefault:"/auth/login"`
}

// BookingConfig holds booking pipeline settings.
type BookingConfig struct {
	// TaxRate is applied to every fare subtotal.
	TaxRate float64 `env:"BOOKING_TAX_RATE" envDefault:"0.15"`

	// SessionTTL bounds how long an idle wizard session is kept.
	SessionTTL time.Duration `env:"BOOKING_SESSION_TTL" envDefault:"30m"`
}

// InventoryConfig holds seed catalogue file paths.
type InventoryConfig struct {
	FlightsPath  string `env:"INVENTORY_FLIGHTS_PATH" envDefault:"data/flights.json"`
	PackagesPath string `env:"INVENTORY_PACKAGES_PATH" envDefault:"data/packages.json"`
}

// PaymentConfig holds sandbox submission gateway settings.
type PaymentConfig struct {
	// Latency is the simulated processing delay per attempt.
	Latency time.Duration `env:"PAYMENT_LATENCY" envDefault:"150ms"`

	// FailSubmissions forces every submission to fail. Demo/testing knob.
	FailSubmissions bool `env:"PAYMENT_FAIL_SUBMISSIONS" envDefault:"false"`
}

// RateLimitConfig holds per-client throttling settings.
type RateLimitConfig struct {
	Enabled bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	Rate    float64 `env:"RATE_LIMIT_RATE" envDefault:"20"`
	Burst   int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Booking.TaxRate < 0 || cfg.Booking.TaxRate >= 1 {
		return fmt.Errorf("BOOKING_TAX_RATE must be in [0, 1), got %g", cfg.Booking.TaxRate)
	}
	if cfg.Booking.SessionTTL <= 0 {
		return fmt.Errorf("BOOKING_SESSION_TTL must be positive")
	}

	if cfg.Inventory.FlightsPath == "" {
		return fmt.Errorf("INVENTORY_FLIGHTS_PATH must not be empty")
	}
	if cfg.Inventory.PackagesPath == "" {
		return fmt.Errorf("INVENTORY_PACKAGES_PATH must not be empty")
	}

	if cfg.Payment.Latency < 0 {
		return fmt.Errorf("PAYMENT_LATENCY must not be negative")
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.Rate <= 0 {
			return fmt.Errorf("RATE_LIMIT_RATE must be positive")
		}
		if cfg.RateLimit.Burst < 1 {
			return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
		}
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
