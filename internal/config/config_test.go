package config

import (
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := Validate(DefaultConfig()); err != nil {
		t.Fatalf("default config must validate, got: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad fetcher type", func(c *Config) { c.Fetcher.Type = "carrier-pigeon" }},
		{"zero timeout", func(c *Config) { c.Fetcher.RequestTimeout = 0 }},
		{"zero body size", func(c *Config) { c.Fetcher.MaxBodySize = 0 }},
		{"negative delay", func(c *Config) { c.Batch.Delay = -time.Second }},
		{"bad storage type", func(c *Config) { c.Storage.Type = "xml" }},
		{"missing output path", func(c *Config) { c.Storage.OutputPath = "" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"bad metrics port", func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Port = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateMongoRequiresURI(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Type = "mongodb"
	cfg.Storage.MongoURI = ""
	if err := Validate(cfg); err == nil {
		t.Error("expected validation error for missing mongo URI")
	}
}

func TestValidateURL(t *testing.T) {
	if err := ValidateURL("https://bulbapedia.bulbagarden.net/wiki/Pikachu_(Pok%C3%A9mon)"); err != nil {
		t.Errorf("valid URL rejected: %v", err)
	}
	if err := ValidateURL("ftp://example.com"); err == nil {
		t.Error("expected error for non-http scheme")
	}
	if err := ValidateURL("https://"); err == nil {
		t.Error("expected error for missing host")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Fetcher.Type != "http" {
		t.Errorf("fetcher.type = %q, want http", cfg.Fetcher.Type)
	}
	if cfg.Batch.Delay != time.Second {
		t.Errorf("batch.delay = %s, want 1s", cfg.Batch.Delay)
	}
	if cfg.Storage.Type != "text" {
		t.Errorf("storage.type = %q, want text", cfg.Storage.Type)
	}
}
