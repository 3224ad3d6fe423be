package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":8080" || cfg.Actor != "agent" || cfg.SandboxRoot != "." {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acton.yaml")
	data := `
addr: ":9090"
actor: alice
sandbox_root: /srv/work
history_dsn: sqlite:history.db
permissions: [fs:read, fs:write]
resolver:
  provider: openai
  model: gpt-5-nano
  max_catalog_tokens: 2048
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9090" || cfg.Actor != "alice" {
		t.Fatalf("cfg=%+v", cfg)
	}
	if len(cfg.Permissions) != 2 || cfg.Permissions[1] != "fs:write" {
		t.Fatalf("permissions=%v", cfg.Permissions)
	}
	if cfg.Resolver.Provider != "openai" || cfg.Resolver.MaxCatalogTokens != 2048 {
		t.Fatalf("resolver=%+v", cfg.Resolver)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acton.yaml")
	if err := os.WriteFile(path, []byte("actor: fromfile\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ACTON_ACTOR", "fromenv")
	t.Setenv("ACTON_PERMISSIONS", "fs:read, net:fetch")
	t.Setenv("ACTON_WEATHER_API_KEY", "owm-key")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Actor != "fromenv" {
		t.Fatalf("actor=%q", cfg.Actor)
	}
	if len(cfg.Permissions) != 2 || cfg.Permissions[1] != "net:fetch" {
		t.Fatalf("permissions=%v", cfg.Permissions)
	}
	if cfg.Weather.APIKey != "owm-key" {
		t.Fatalf("weather=%+v", cfg.Weather)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acton.yaml")
	if err := os.WriteFile(path, []byte("actor: \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ACTON_ACTOR", "")
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected read error")
	}
}
