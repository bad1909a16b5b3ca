package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// =============================================================================
// UNIFIED CONFIG TESTS
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "folio" {
		t.Errorf("expected Name=folio, got %s", cfg.Name)
	}
	if cfg.Backdrop.ParticleCount != 100 {
		t.Errorf("expected ParticleCount=100, got %d", cfg.Backdrop.ParticleCount)
	}
	if cfg.Backdrop.LinkDistance != 100 {
		t.Errorf("expected LinkDistance=100, got %v", cfg.Backdrop.LinkDistance)
	}
	if cfg.Tracker.Offset != 100 {
		t.Errorf("expected tracker Offset=100, got %v", cfg.Tracker.Offset)
	}
	if cfg.Contact.Transport != "log" {
		t.Errorf("expected Transport=log, got %s", cfg.Contact.Transport)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("FOLIO_CONTENT", "")
	t.Setenv("FOLIO_THEME", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "folio.yaml")

	cfg := DefaultConfig()
	cfg.Backdrop.ParticleCount = 42
	cfg.UI.Theme = "dark"
	cfg.Tracker.Order = []string{"hero", "contact"}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Backdrop.ParticleCount != 42 {
		t.Errorf("expected ParticleCount=42, got %d", loaded.Backdrop.ParticleCount)
	}
	if loaded.UI.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.UI.Theme)
	}
	if len(loaded.Tracker.Order) != 2 || loaded.Tracker.Order[1] != "contact" {
		t.Errorf("unexpected tracker order: %v", loaded.Tracker.Order)
	}
}

func TestConfig_LoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backdrop.Color != "#8261D0" {
		t.Errorf("expected default color, got %s", cfg.Backdrop.Color)
	}
}

func TestConfig_LoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	if err := os.WriteFile(path, []byte("backdrop:\n  particle_count: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backdrop.ParticleCount != 7 {
		t.Errorf("expected ParticleCount=7, got %d", cfg.Backdrop.ParticleCount)
	}
	if cfg.Backdrop.LinkDistance != 100 {
		t.Errorf("expected default LinkDistance to survive, got %v", cfg.Backdrop.LinkDistance)
	}
}

func TestConfig_LoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	if err := os.WriteFile(path, []byte("backdrop: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative count", func(c *Config) { c.Backdrop.ParticleCount = -1 }},
		{"zero link distance", func(c *Config) { c.Backdrop.LinkDistance = 0 }},
		{"inverted radius", func(c *Config) { c.Backdrop.MinRadius = 4 }},
		{"restitution above one", func(c *Config) { c.Backdrop.Restitution = 1.5 }},
		{"bad color", func(c *Config) { c.Backdrop.Color = "purple" }},
		{"negative offset", func(c *Config) { c.Tracker.Offset = -5 }},
		{"duplicate order", func(c *Config) { c.Tracker.Order = []string{"hero", "hero"} }},
		{"unknown section", func(c *Config) { c.Tracker.Order = []string{"hero", "nope"} }},
		{"color without hash", func(c *Config) { c.Backdrop.Color = "8261D0" }},
		{"bad background", func(c *Config) { c.Backdrop.Background = "#zzzzzz" }},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }},
		{"bad transport", func(c *Config) { c.Contact.Transport = "pigeon" }},
		{"webhook without url", func(c *Config) { c.Contact.Transport = "webhook" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

func TestContactConfig_Redacted(t *testing.T) {
	cc := DefaultContactConfig()
	cc.SMTP.Password = "hunter2"
	cc.Webhook.Headers = map[string]string{"Authorization": "Bearer abc", "X-Api-Key": "k"}

	red := cc.Redacted()
	if red.SMTP.Password != "" {
		t.Errorf("password not blanked: %q", red.SMTP.Password)
	}
	for k, v := range red.Webhook.Headers {
		if v != "" {
			t.Errorf("header %s not blanked: %q", k, v)
		}
	}
	if len(red.Webhook.Headers) != 2 {
		t.Errorf("expected header names kept, got %v", red.Webhook.Headers)
	}
	if cc.Webhook.Headers["Authorization"] != "Bearer abc" {
		t.Error("Redacted must not modify the receiver's headers")
	}
}

func TestConfig_Durations(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.GetContactTimeout(); got != 15*time.Second {
		t.Errorf("expected 15s, got %v", got)
	}
	cfg.Contact.Timeout = "garbage"
	if got := cfg.GetContactTimeout(); got != 15*time.Second {
		t.Errorf("expected fallback 15s, got %v", got)
	}

	cfg.Backdrop.FPS = 50
	if got := cfg.GetFrameInterval(); got != 20*time.Millisecond {
		t.Errorf("expected 20ms, got %v", got)
	}
	cfg.Backdrop.FPS = 0
	if got := cfg.GetFrameInterval(); got != time.Second/60 {
		t.Errorf("expected 60fps fallback, got %v", got)
	}
}

func TestLoggingConfig_IsCategoryEnabled(t *testing.T) {
	lc := LoggingConfig{DebugMode: false}
	if lc.IsCategoryEnabled("backdrop") {
		t.Error("production mode should disable all categories")
	}

	lc = LoggingConfig{DebugMode: true, Categories: map[string]bool{"backdrop": false}}
	if lc.IsCategoryEnabled("backdrop") {
		t.Error("explicitly disabled category should be off")
	}
	if !lc.IsCategoryEnabled("contact") {
		t.Error("unlisted category should default to on")
	}
}
