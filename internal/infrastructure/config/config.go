package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds every runtime setting, populated from the environment.
type Config struct {
	Port     int    `env:"PORT, default=8000"`
	Env      string `env:"APP_ENV, default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=3h"`

	BcryptCost  int `env:"BCRYPT_COST, default=12"`
	HashWorkers int `env:"HASH_WORKERS, default=8"`

	Database DatabaseConfig `env:", prefix=DB_"`
	Redis    RedisConfig    `env:", prefix=REDIS_"`
}

// DatabaseConfig selects the SQL backend. A postgres:// URL uses pgx;
// anything else is treated as a SQLite DSN.
type DatabaseConfig struct {
	URL string `env:"URL, default=thingful.db"`
}

// RedisConfig controls the things-listing cache. An empty Addr disables
// caching entirely.
type RedisConfig struct {
	Addr     string        `env:"ADDR"`
	DB       int           `env:"DB, default=0"`
	CacheTTL time.Duration `env:"CACHE_TTL, default=30s"`
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	return &cfg, nil
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
