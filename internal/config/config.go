package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MigrationsPath  string
}

type Config struct {
	App struct {
		Port string
	}
	Auth struct {
		JWTSecret string
		TokenTTL  time.Duration
	}
	// TaxRate is the VAT rate applied when order totals are recalculated.
	TaxRate  float64
	Postgres PostgresConfig
}

// Load reads configuration from the environment, optionally seeding it from a
// .env file first. A missing .env file is not an error.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}

	cfg.App.Port = getEnv("APP_PORT", "8080")

	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	ttl := getEnv("TOKEN_TTL", "12h")
	tokenTTL, err := time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttl, err)
	}
	cfg.Auth.TokenTTL = tokenTTL

	rate := getEnv("TAX_RATE", "0.21")
	cfg.TaxRate, err = strconv.ParseFloat(rate, 64)
	if err != nil || cfg.TaxRate < 0 {
		return nil, fmt.Errorf("invalid TAX_RATE %q", rate)
	}

	cfg.Postgres.Host = os.Getenv("DB_HOST")
	if cfg.Postgres.Host == "" {
		return nil, fmt.Errorf("DB_HOST is required")
	}
	cfg.Postgres.Port = getEnv("DB_PORT", "5432")
	cfg.Postgres.User = os.Getenv("DB_USER")
	if cfg.Postgres.User == "" {
		return nil, fmt.Errorf("DB_USER is required")
	}
	cfg.Postgres.Password = os.Getenv("DB_PASSWORD")
	if cfg.Postgres.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	cfg.Postgres.DBName = os.Getenv("DB_NAME")
	if cfg.Postgres.DBName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	cfg.Postgres.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Postgres.MigrationsPath = getEnv("DB_MIGRATIONS_PATH", "migrations")

	maxConns, err := strconv.ParseInt(getEnv("DB_MAX_CONNS", "10"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	cfg.Postgres.MaxConns = int32(maxConns)

	minConns, err := strconv.ParseInt(getEnv("DB_MIN_CONNS", "2"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}
	cfg.Postgres.MinConns = int32(minConns)

	lifetime := getEnv("DB_MAX_CONN_LIFETIME", "30m")
	cfg.Postgres.MaxConnLifetime, err = time.ParseDuration(lifetime)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONN_LIFETIME %q: %w", lifetime, err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
