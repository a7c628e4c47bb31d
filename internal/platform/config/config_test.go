package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("REMINDER_INTERVAL", "")
	t.Setenv("ALLOW_DOCUMENT_REUPLOAD", "")

	cfg := Load()
	if cfg.Addr != ":8080" || cfg.DefaultActor != "Admin" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ReminderInterval != time.Hour || cfg.AllowDocumentReupload {
		t.Fatalf("unexpected reminder defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ALLOW_DOCUMENT_REUPLOAD", "true")
	t.Setenv("REMINDER_INTERVAL", "0")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if !cfg.AllowDocumentReupload {
		t.Fatal("expected re-upload enabled")
	}
	if cfg.ReminderInterval != 0 {
		t.Fatalf("expected reminders disabled, got %v", cfg.ReminderInterval)
	}
	if cfg.RateLimitPerMinute != 120 {
		t.Fatalf("expected fallback on bad int, got %d", cfg.RateLimitPerMinute)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	base := Load()
	cases := map[string]func(*Config){
		"blank actor":    func(c *Config) { c.DefaultActor = " " },
		"bad level":      func(c *Config) { c.LogLevel = "loud" },
		"small body":     func(c *Config) { c.MaxBodyBytes = 10 },
		"zero rate":      func(c *Config) { c.RateLimitPerMinute = 0 },
		"negative sweep": func(c *Config) { c.ReminderInterval = -time.Second },
		"log size":       func(c *Config) { c.LogFile = "app.log"; c.LogMaxSizeMB = 0 },
	}
	for name, mutate := range cases {
		cfg := base
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
