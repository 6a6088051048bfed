package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

const (
	CounterPostgres = "postgres"
	CounterRedis    = "redis"
	CounterSupabase = "supabase"
	CounterNone     = "none"
)

type Config struct {
	HTTPAddr        string
	InternalToken   string
	CORSAllowOrigin string
	LogLevel        string
	LogFormat       string

	CounterBackend         string
	CounterTimeout         time.Duration
	DatabaseURL            string
	RedisURL               string
	SupabaseURL            string
	SupabaseServiceRoleKey string

	CompanyName       string
	CompanyShortCode  string
	ReferenceTimezone string
}

// MustLoad reads the environment, after applying a .env file if one exists.
func MustLoad() Config {
	_ = godotenv.Load()

	cfg, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:               env("HTTP_ADDR", ":8080"),
		InternalToken:          env("INTERNAL_TOKEN", ""),
		CORSAllowOrigin:        env("CORS_ALLOW_ORIGIN", "*"),
		LogLevel:               env("LOG_LEVEL", "info"),
		LogFormat:              env("LOG_FORMAT", "console"),
		CounterBackend:         strings.ToLower(env("COUNTER_BACKEND", CounterPostgres)),
		DatabaseURL:            env("DATABASE_URL", ""),
		RedisURL:               env("REDIS_URL", ""),
		SupabaseURL:            env("SUPABASE_URL", ""),
		SupabaseServiceRoleKey: env("SUPABASE_SERVICE_ROLE_KEY", ""),
		CompanyName:            env("COMPANY_NAME", ""),
		CompanyShortCode:       env("COMPANY_SHORT_CODE", ""),
		ReferenceTimezone:      env("REFERENCE_TIMEZONE", "Asia/Kolkata"),
	}

	timeout, err := time.ParseDuration(env("COUNTER_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("COUNTER_TIMEOUT: %w", err)
	}
	cfg.CounterTimeout = timeout

	if cfg.InternalToken == "" {
		return Config{}, missing("INTERNAL_TOKEN")
	}

	switch cfg.CounterBackend {
	case CounterPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, missing("DATABASE_URL")
		}
	case CounterRedis:
		if cfg.RedisURL == "" {
			return Config{}, missing("REDIS_URL")
		}
	case CounterSupabase:
		if cfg.SupabaseURL == "" {
			return Config{}, missing("SUPABASE_URL")
		}
		if cfg.SupabaseServiceRoleKey == "" {
			return Config{}, missing("SUPABASE_SERVICE_ROLE_KEY")
		}
	case CounterNone:
	default:
		return Config{}, fmt.Errorf("unknown COUNTER_BACKEND %q", cfg.CounterBackend)
	}

	if _, err := time.LoadLocation(cfg.ReferenceTimezone); err != nil {
		return Config{}, fmt.Errorf("REFERENCE_TIMEZONE: %w", err)
	}
	return cfg, nil
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func missing(k string) error {
	return fmt.Errorf("missing env %s", k)
}
