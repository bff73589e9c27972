package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"auth": map[string]any{
			"tokenTtl":   "168h",
			"bcryptCost": 10,
		},
		"storage": map[string]any{
			"inMemory": false,
		},
		"qrcode": map[string]any{
			"errorCorrectionLevel": "medium",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTtl"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
		{envKey: "STORAGE_INMEMORY", want: "storage.inMemory"},
		{envKey: "QRCODE_ERRORCORRECTIONLEVEL", want: "qrcode.errorCorrectionLevel"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func writeTestConfig(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
}

func TestLoadWithEnvReadsYAML(t *testing.T) {
	writeTestConfig(t, `
env:
  env: test
  serviceName: medifinder
http:
  port: 8080
auth:
  secret: yaml-secret
  tokenTtl: 24h
storage:
  inMemory: true
`)

	cfg, err := LoadWithEnv[Config]("config")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Env.ServiceName != "medifinder" {
		t.Fatalf("serviceName = %q", cfg.Env.ServiceName)
	}
	if cfg.HTTP.Port != 8080 {
		t.Fatalf("port = %d", cfg.HTTP.Port)
	}
	if cfg.Auth == nil || cfg.Auth.Secret != "yaml-secret" {
		t.Fatalf("auth = %+v", cfg.Auth)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Fatalf("tokenTtl = %v", cfg.Auth.TokenTTL)
	}
	if cfg.Storage == nil || !cfg.Storage.InMemory {
		t.Fatalf("storage = %+v", cfg.Storage)
	}
}

func TestLoadWithEnvOverridesFromEnvironment(t *testing.T) {
	writeTestConfig(t, `
auth:
  secret: yaml-secret
  tokenTtl: 24h
`)
	t.Setenv("AUTH_SECRET", "env-secret")
	t.Setenv("AUTH_TOKENTTL", "48h")

	cfg, err := LoadWithEnv[Config]("config")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Auth.Secret != "env-secret" {
		t.Fatalf("secret = %q", cfg.Auth.Secret)
	}
	if cfg.Auth.TokenTTL != 48*time.Hour {
		t.Fatalf("tokenTtl = %v", cfg.Auth.TokenTTL)
	}
}

func TestLoadWithEnvMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := LoadWithEnv[Config]("config"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Auth.TokenTTL != 7*24*time.Hour {
		t.Fatalf("tokenTtl = %v", cfg.Auth.TokenTTL)
	}
	if cfg.Storage.Path != "data" {
		t.Fatalf("storage path = %q", cfg.Storage.Path)
	}
	if cfg.Reminder.Tick != time.Minute {
		t.Fatalf("tick = %v", cfg.Reminder.Tick)
	}
	if cfg.Cart == nil || cfg.Cart.Persist {
		t.Fatalf("cart = %+v", cfg.Cart)
	}
}
