package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMock   = "mock"
	StoreRemote = "remote"
)

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string
	LogLevel string

	// Record store selection and remote connection.
	StoreMode        string
	RecordsURL       string
	RecordsProjectID string
	RecordsPublicKey string
	RecordsPort      string
	StrictReads      bool
	RequestTimeout   time.Duration

	MockLatency  time.Duration
	CacheTTL     time.Duration
	CacheSize    int
	ForecastDays int
}

// Load reads .env (if present) and the environment. A missing .env is not an
// error; malformed values are.
func Load() (AppConfig, error) {
	envErr := godotenv.Load()
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		return AppConfig{}, fmt.Errorf("load .env: %w", envErr)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from a lookup function.
func FromEnv(getenv func(string) string) (AppConfig, error) {
	get := func(k, def string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return def
	}
	var errs []error
	duration := func(k, def string) time.Duration {
		d, err := time.ParseDuration(get(k, def))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", k, err))
		}
		return d
	}
	integer := func(k, def string) int {
		n, err := strconv.Atoi(get(k, def))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", k, err))
		}
		return n
	}
	boolean := func(k, def string) bool {
		b, err := strconv.ParseBool(get(k, def))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", k, err))
		}
		return b
	}

	cfg := AppConfig{
		Port:     get("PORT", "8080"),
		Timezone: get("TZ", "UTC"),
		DBPath:   get("DB_PATH", "farmdash.db"),
		LogLevel: get("LOG_LEVEL", "info"),

		StoreMode:        get("STORE_MODE", StoreMock),
		RecordsURL:       get("RECORDS_URL", "http://localhost:8081"),
		RecordsProjectID: get("RECORDS_PROJECT_ID", "farmdash"),
		RecordsPublicKey: get("RECORDS_PUBLIC_KEY", ""),
		RecordsPort:      get("RECORDS_PORT", "8081"),
		StrictReads:      boolean("STORE_STRICT_READS", "false"),
		RequestTimeout:   duration("REQUEST_TIMEOUT", "10s"),

		MockLatency:  duration("MOCK_LATENCY", "250ms"),
		CacheTTL:     duration("CACHE_TTL", "30s"),
		CacheSize:    integer("CACHE_SIZE", "128"),
		ForecastDays: integer("FORECAST_DAYS", "7"),
	}
	if cfg.StoreMode != StoreMock && cfg.StoreMode != StoreRemote {
		errs = append(errs, fmt.Errorf("STORE_MODE: want %q or %q, got %q", StoreMock, StoreRemote, cfg.StoreMode))
	}
	if err := errors.Join(errs...); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Location resolves the configured timezone, falling back to UTC.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
