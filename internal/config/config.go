package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Cheertaboi/coupon-feed-service/internal/core"
	"github.com/Cheertaboi/coupon-feed-service/pkg/db"
	pkgredis "github.com/Cheertaboi/coupon-feed-service/pkg/redis"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

// Config is sourced from environment variables (loaded from .env for local runs).
type Config struct {
	Env  string `envconfig:"APP_ENV" default:"development"`
	Addr string `envconfig:"HTTP_ADDR" default:":8080"`

	// Ingestion
	APIKey       string `envconfig:"COUPON_API_KEY" required:"true"`
	KeyParam     string `envconfig:"COUPON_KEY_PARAM" default:"api_key"`
	TriggerParam string `envconfig:"COUPON_TRIGGER_PARAM" default:"coupon_update"`
	TriggerValue string `envconfig:"COUPON_TRIGGER_VALUE" default:"gas_update"`

	// Storage
	Store    string            `envconfig:"SNAPSHOT_STORE" default:"memory"`
	Postgres db.PostgresConfig `envconfig:"DB"`
	Redis    pkgredis.Config

	// Rendering
	IconDir     string `envconfig:"ICON_DIR"`
	IconDesktop string `envconfig:"ICON_DESKTOP" default:"content_copy_24dp.svg"`
	IconMobile  string `envconfig:"ICON_MOBILE" default:"content_copy_16dp.svg"`
	PageTitle   string `envconfig:"PAGE_TITLE" default:"クーポン一覧"`

	// Logging & metrics
	LogFile        string `envconfig:"LOG_FILE"`
	LogMaxSizeMB   int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
}

func (c *Config) Environment() core.Environment {
	return core.ParseEnvironment(c.Env)
}

// Load reads .env when present and processes the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StorePostgres:
	case StoreRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("SNAPSHOT_STORE=redis requires REDIS_URL")
		}
	default:
		return fmt.Errorf("unknown SNAPSHOT_STORE %q", c.Store)
	}
	if c.KeyParam == "" || c.TriggerParam == "" || c.TriggerValue == "" {
		return fmt.Errorf("COUPON_KEY_PARAM, COUPON_TRIGGER_PARAM and COUPON_TRIGGER_VALUE must not be empty")
	}
	return nil
}
