package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadContext_Defaults(t *testing.T) {
	cfg, err := LoadContext(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.Session.Backend != BackendMemory {
		t.Fatalf("expected memory backend, got %q", cfg.Session.Backend)
	}
	if cfg.Session.TTL != 8*time.Hour {
		t.Fatalf("expected 8h ttl, got %s", cfg.Session.TTL)
	}
	if cfg.Ledger.Timeout != 15*time.Second {
		t.Fatalf("expected 15s ledger timeout, got %s", cfg.Ledger.Timeout)
	}
	if !cfg.Pretty() {
		t.Fatal("expected pretty logs in development")
	}
}

func TestLoadContext_Overrides(t *testing.T) {
	cfg, err := LoadContext(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_BACKEND": "redis",
		"REDIS_DB":        "3",
		"LEDGER_BASE_URL": "https://ledger.internal",
		"ENV":             "production",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Session.Backend != BackendRedis || cfg.Redis.DB != 3 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Ledger.BaseURL != "https://ledger.internal" {
		t.Fatalf("unexpected ledger url %q", cfg.Ledger.BaseURL)
	}
	if cfg.Pretty() {
		t.Fatal("expected JSON logs outside development")
	}
}

func TestLoadContext_UnknownBackend(t *testing.T) {
	_, err := LoadContext(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_BACKEND": "etcd",
	}))
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestLoadContext_MalformedDuration(t *testing.T) {
	_, err := LoadContext(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_TTL": "forever",
	}))
	if err == nil {
		t.Fatal("expected error for malformed duration")
	}
}
