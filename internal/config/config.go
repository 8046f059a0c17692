package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Port          string
	PostgresURL   string
	JWTSecret     string
	JWTTTL        time.Duration
	LogLevel      zapcore.Level
	AutoMigrate   bool
	AuthRateLimit int
	AuthRateBurst int
	CORSOrigins   []string
	GinMode       string
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary variable source.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		Port:        get("PORT", "8080"),
		PostgresURL: get("POSTGRES_URL", ""),
		JWTSecret:   get("JWT_SECRET", ""),
		GinMode:     get("GIN_MODE", "release"),
	}

	var errs []error

	if cfg.PostgresURL == "" {
		errs = append(errs, errors.New("POSTGRES_URL is required"))
	}
	if cfg.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE: unknown mode %q", cfg.GinMode))
	}

	ttl, err := time.ParseDuration(get("JWT_TTL", "60m"))
	if err != nil || ttl <= 0 {
		errs = append(errs, fmt.Errorf("JWT_TTL: invalid duration %q", get("JWT_TTL", "60m")))
	}
	cfg.JWTTTL = ttl

	level, err := zapcore.ParseLevel(get("LOG_LEVEL", "info"))
	if err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	cfg.LogLevel = level

	migrate, err := strconv.ParseBool(get("AUTO_MIGRATE", "true"))
	if err != nil {
		errs = append(errs, fmt.Errorf("AUTO_MIGRATE: invalid bool %q", get("AUTO_MIGRATE", "true")))
	}
	cfg.AutoMigrate = migrate

	cfg.AuthRateLimit, err = positiveInt(get("AUTH_RATE_LIMIT", "10"))
	if err != nil {
		errs = append(errs, fmt.Errorf("AUTH_RATE_LIMIT: %w", err))
	}
	cfg.AuthRateBurst, err = positiveInt(get("AUTH_RATE_BURST", "5"))
	if err != nil {
		errs = append(errs, fmt.Errorf("AUTH_RATE_BURST: %w", err))
	}

	for _, origin := range strings.Split(get("CORS_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func positiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("expected a positive integer, got %q", s)
	}
	return n, nil
}
