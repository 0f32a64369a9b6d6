package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAndEnvOverride(t *testing.T) {
	path := writeConfig(t, "port: \"8080\"\ndatabaseURL: postgres://file\nsessionTTL: 1h\n")
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabaseURL != "postgres://env" {
		t.Fatalf("databaseURL = %s, env must win", cfg.DatabaseURL)
	}
	if cfg.JWTSecret != "from-env" {
		t.Fatalf("jwtSecret = %s", cfg.JWTSecret)
	}

	ttl, err := ParseSessionTTL(cfg.SessionTTL)
	if err != nil {
		t.Fatalf("parse ttl: %v", err)
	}
	if ttl != time.Hour {
		t.Fatalf("ttl = %v, want 1h", ttl)
	}
}

func TestLoadRequiresPortAndDatabase(t *testing.T) {
	path := writeConfig(t, "port: \"8080\"\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("missing databaseURL must fail")
	}
	path = writeConfig(t, "databaseURL: postgres://x\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("missing port must fail")
	}
}

func TestLoadProductionNeedsSecret(t *testing.T) {
	path := writeConfig(t, "port: \"8080\"\ndatabaseURL: postgres://x\nenvironment: production\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("production without jwtSecret must fail")
	}
	t.Setenv("JWT_SECRET", "real-secret")
	if _, err := Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
}

func TestLoadMinioAllOrNothing(t *testing.T) {
	path := writeConfig(t, "port: \"8080\"\ndatabaseURL: postgres://x\nminioEndpoint: localhost:9000\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("partial minio config must fail")
	}
}

func TestLoadTrustedProxiesFromEnv(t *testing.T) {
	path := writeConfig(t, "port: \"8080\"\ndatabaseURL: postgres://x\n")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.1")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.TrustedProxies) != 2 || cfg.TrustedProxies[0] != "10.0.0.0/8" {
		t.Fatalf("trustedProxies = %v", cfg.TrustedProxies)
	}
}
