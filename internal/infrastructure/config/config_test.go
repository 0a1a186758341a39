package config

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Port)
	}
	if cfg.TokenTTL != 3*time.Hour {
		t.Errorf("expected default token ttl 3h, got %v", cfg.TokenTTL)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("expected default bcrypt cost 12, got %d", cfg.BcryptCost)
	}
	if cfg.Database.URL != "thingful.db" {
		t.Errorf("unexpected default database url: %q", cfg.Database.URL)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("redis should be disabled by default, got %q", cfg.Redis.Addr)
	}
	if cfg.IsProduction() {
		t.Errorf("default env must not be production")
	}
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "placeholder") // register restore
	os.Unsetenv("JWT_SECRET")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error when JWT_SECRET is unset")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "9001")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_URL", "postgres://user:pw@localhost/thingful")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_CACHE_TTL", "1m")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != 9001 || !cfg.IsProduction() {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Database.URL != "postgres://user:pw@localhost/thingful" {
		t.Errorf("unexpected database url: %q", cfg.Database.URL)
	}
	if cfg.Redis.CacheTTL != time.Minute {
		t.Errorf("unexpected cache ttl: %v", cfg.Redis.CacheTTL)
	}
}
