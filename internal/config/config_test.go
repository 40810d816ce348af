package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Database: DatabaseConfig{
			DSN:      "postgres://u:p@localhost:5432/election",
			MaxConns: 25,
			MinConns: 5,
		},
		Auth: AuthConfig{
			JWTSecret:      strings.Repeat("s", 32),
			JWTIssuer:      "reinafiec",
			AccessTokenTTL: 2 * time.Hour,
			BcryptCost:     10,
		},
	}
}

func TestConfig_Validate_OK(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConfig_Validate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"short jwt secret", func(c *Config) { c.Auth.JWTSecret = "short" }},
		{"bcrypt cost too low", func(c *Config) { c.Auth.BcryptCost = 1 }},
		{"bcrypt cost too high", func(c *Config) { c.Auth.BcryptCost = 99 }},
		{"zero max conns", func(c *Config) { c.Database.MaxConns = 0 }},
		{"min conns above max", func(c *Config) { c.Database.MinConns = 50 }},
		{"zero token ttl", func(c *Config) { c.Auth.AccessTokenTTL = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/election")
	t.Setenv("AUTH_JWT_SECRET", strings.Repeat("x", 40))
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port: got %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 10*time.Second {
		t.Errorf("read timeout default: got %s, want 10s", cfg.Server.ReadTimeout)
	}
	if cfg.Auth.JWTIssuer != "reinafiec" {
		t.Errorf("issuer default: got %s", cfg.Auth.JWTIssuer)
	}
	if !cfg.Database.MigrateOnStart {
		t.Error("migrate_on_start must default to true")
	}
}
