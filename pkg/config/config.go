// Package config loads agent configuration from a YAML file with
// environment variable overrides. Environment always wins so deployments
// can keep secrets out of files.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ResolverConfig selects and tunes the model-backed intent resolver.
type ResolverConfig struct {
	// Provider names a registered LLM adapter ("openai", "gemini").
	// Empty means keyword-only resolution.
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
	// MaxCatalogTokens caps the token budget spent on the action catalog
	// in the resolution prompt. 0 means no cap.
	MaxCatalogTokens int `yaml:"max_catalog_tokens"`
	// SystemPromptFile overrides the built-in resolution instructions.
	// The file content is linted before it is accepted.
	SystemPromptFile string `yaml:"system_prompt_file"`
}

// WeatherConfig enables the weather action set when an API key is present.
type WeatherConfig struct {
	APIKey string `yaml:"api_key"`
	// BaseURL overrides the default OpenWeatherMap endpoint, mainly for
	// pointing the actions at a proxy or a test double.
	BaseURL string `yaml:"base_url"`
}

// Config is the full agent configuration.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `yaml:"addr"`
	// Actor is the identity attributed to executed actions.
	Actor string `yaml:"actor"`
	// SandboxRoot is the directory the file actions are confined to.
	SandboxRoot string `yaml:"sandbox_root"`
	// HistoryDSN selects the history store. Supported forms:
	// "sqlite:file.db" or a postgres URL. Empty disables history.
	HistoryDSN string `yaml:"history_dsn"`
	// Permissions are granted to the agent at startup.
	Permissions []string       `yaml:"permissions"`
	Resolver    ResolverConfig `yaml:"resolver"`
	Weather     WeatherConfig  `yaml:"weather"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr:        ":8080",
		Actor:       "agent",
		SandboxRoot: ".",
	}
}

// Load reads the YAML file at path, applies environment overrides, and
// validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ACTON_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("ACTON_ACTOR"); v != "" {
		c.Actor = v
	}
	if v := os.Getenv("ACTON_SANDBOX_ROOT"); v != "" {
		c.SandboxRoot = v
	}
	if v := os.Getenv("ACTON_HISTORY_DSN"); v != "" {
		c.HistoryDSN = v
	}
	if v := os.Getenv("ACTON_PERMISSIONS"); v != "" {
		c.Permissions = splitList(v)
	}
	if v := os.Getenv("ACTON_RESOLVER_PROVIDER"); v != "" {
		c.Resolver.Provider = v
	}
	if v := os.Getenv("ACTON_RESOLVER_MODEL"); v != "" {
		c.Resolver.Model = v
	}
	if v := os.Getenv("ACTON_RESOLVER_API_KEY"); v != "" {
		c.Resolver.APIKey = v
	}
	if v := os.Getenv("ACTON_RESOLVER_SYSTEM_PROMPT_FILE"); v != "" {
		c.Resolver.SystemPromptFile = v
	}
	if v := os.Getenv("ACTON_RESOLVER_MAX_CATALOG_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Resolver.MaxCatalogTokens = n
		}
	}
	if v := os.Getenv("ACTON_WEATHER_API_KEY"); v != "" {
		c.Weather.APIKey = v
	}
	if v := os.Getenv("ACTON_WEATHER_BASE_URL"); v != "" {
		c.Weather.BaseURL = v
	}
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.Actor == "" {
		return fmt.Errorf("actor must not be empty")
	}
	if c.Resolver.MaxCatalogTokens < 0 {
		return fmt.Errorf("resolver.max_catalog_tokens must not be negative")
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
