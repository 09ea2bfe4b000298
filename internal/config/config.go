// Package config loads server configuration from the environment.
//
// Environment variables (an optional .env file is read first):
//
//	PORT              listen port (default: 8080)
//	DB_PATH           SQLite database file (default: ./data/restauflow.db)
//	TAX_RATE_PERCENT  sales tax in percent (default: 8.5)
//	CURRENCY_CODE     ISO currency code (default: USD)
//	SESSION_SECRET    HMAC key for session tokens (required)
//	SESSION_TTL       session lifetime, e.g. 2h (default: 4h)
//	STAFF_API_KEY     bearer key for the staff AdminService; unset disables it
//	LOG_LEVEL         debug, info, warn, error (default: info)
//	LOG_FORMAT        text or json (default: text)
//	SEED_MENU         load the house menu when the catalog is empty (default: true)
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/mmynk/restauflow/internal/pricing"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const minStaffKeyLen = 16

// Settings are the business settings applied to every order.
type Settings struct {
	TaxRatePercent decimal.Decimal
	Currency       string
}

// TaxRate returns the tax rate as a fraction (8.5% is 0.085).
func (s Settings) TaxRate() decimal.Decimal {
	return pricing.RateFromPercent(s.TaxRatePercent)
}

// CurrencyCode returns the currency orders are priced in.
func (s Settings) CurrencyCode() string {
	return s.Currency
}

// Config holds everything the server needs at start-up.
type Config struct {
	Port          int
	DBPath        string
	SessionSecret string
	SessionTTL    time.Duration
	StaffAPIKey   string
	LogLevel      string
	LogFormat     string
	SeedMenu      bool

	Settings Settings
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load reads .env (when present) and the environment, then validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("%w: PORT: %v", ErrInvalidConfig, err)
	}

	taxRate, err := decimal.NewFromString(getEnv("TAX_RATE_PERCENT", "8.5"))
	if err != nil {
		return nil, fmt.Errorf("%w: TAX_RATE_PERCENT: %v", ErrInvalidConfig, err)
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "4h"))
	if err != nil {
		return nil, fmt.Errorf("%w: SESSION_TTL: %v", ErrInvalidConfig, err)
	}

	seed, err := strconv.ParseBool(getEnv("SEED_MENU", "true"))
	if err != nil {
		return nil, fmt.Errorf("%w: SEED_MENU: %v", ErrInvalidConfig, err)
	}

	cfg := &Config{
		Port:          port,
		DBPath:        getEnv("DB_PATH", "./data/restauflow.db"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    ttl,
		StaffAPIKey:   os.Getenv("STAFF_API_KEY"),
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "text")),
		SeedMenu:      seed,
		Settings: Settings{
			TaxRatePercent: taxRate,
			Currency:       strings.ToUpper(getEnv("CURRENCY_CODE", "USD")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values Load cannot check while parsing.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: PORT %d out of range", ErrInvalidConfig, c.Port)
	}
	if c.Settings.TaxRatePercent.IsNegative() {
		return fmt.Errorf("%w: TAX_RATE_PERCENT must not be negative", ErrInvalidConfig)
	}
	if len(c.Settings.Currency) != 3 {
		return fmt.Errorf("%w: CURRENCY_CODE %q is not a 3-letter code", ErrInvalidConfig, c.Settings.Currency)
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("%w: SESSION_SECRET is required", ErrInvalidConfig)
	}
	if c.StaffAPIKey != "" && len(c.StaffAPIKey) < minStaffKeyLen {
		return fmt.Errorf("%w: STAFF_API_KEY must be at least %d characters", ErrInvalidConfig, minStaffKeyLen)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("%w: SESSION_TTL must be positive", ErrInvalidConfig)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: LOG_FORMAT %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
