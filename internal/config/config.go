package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"folio/internal/sections"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "folio.yaml"

// Config holds all folio configuration.
type Config struct {
	// Core settings
	Name string `yaml:"name"`

	// Portfolio content source
	Content ContentConfig `yaml:"content"`

	// Particle backdrop
	Backdrop BackdropConfig `yaml:"backdrop"`

	// Active-section detection
	Tracker TrackerConfig `yaml:"tracker"`

	// Interactive UI
	UI UIConfig `yaml:"ui"`

	// Contact form delivery
	Contact ContactConfig `yaml:"contact"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ContentConfig locates the portfolio content file.
type ContentConfig struct {
	// Path to a YAML content file; empty uses the embedded default content
	Path string `yaml:"path"`

	// Watch reloads the content when the file changes
	Watch bool `yaml:"watch"`
}

// TrackerConfig configures the scroll-section tracker.
type TrackerConfig struct {
	// Offset is the detection line in pixels from the viewport top
	Offset float64 `yaml:"offset"`

	// Order is the section scan order; empty uses the built-in order
	Order []string `yaml:"order"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name: "folio",

		Content: ContentConfig{
			Path:  "",
			Watch: true,
		},

		Backdrop: DefaultBackdropConfig(),

		Tracker: TrackerConfig{
			Offset: 100,
		},

		UI: DefaultUIConfig(),

		Contact: DefaultContactConfig(),

		Logging: LoggingConfig{
			Level:     "info",
			Format:    "text",
			File:      ".folio/logs/folio.log",
			DebugMode: false,
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("FOLIO_CONTENT"); path != "" {
		c.Content.Path = path
	}
	if theme := os.Getenv("FOLIO_THEME"); theme != "" {
		c.UI.Theme = strings.ToLower(theme)
	}
	if transport := os.Getenv("FOLIO_CONTACT_TRANSPORT"); transport != "" {
		c.Contact.Transport = strings.ToLower(transport)
	}

	// Credentials never need to live in the YAML file
	if user := os.Getenv("FOLIO_SMTP_USERNAME"); user != "" {
		c.Contact.SMTP.Username = user
	}
	if pass := os.Getenv("FOLIO_SMTP_PASSWORD"); pass != "" {
		c.Contact.SMTP.Password = pass
	}
	if url := os.Getenv("FOLIO_WEBHOOK_URL"); url != "" {
		c.Contact.Webhook.URL = url
	}
}

// GetContactTimeout returns the delivery timeout as a duration.
func (c *Config) GetContactTimeout() time.Duration {
	d, err := time.ParseDuration(c.Contact.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// GetFrameInterval returns the animation frame interval.
func (c *Config) GetFrameInterval() time.Duration {
	fps := c.Backdrop.FPS
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Backdrop.Validate(); err != nil {
		return err
	}
	if c.Tracker.Offset < 0 {
		return fmt.Errorf("tracker offset must be >= 0, got %v", c.Tracker.Offset)
	}
	seen := make(map[string]bool, len(c.Tracker.Order))
	for _, id := range c.Tracker.Order {
		if _, ok := sections.KindFromID(id); !ok {
			return fmt.Errorf("tracker order lists unknown section %q", id)
		}
		if seen[id] {
			return fmt.Errorf("tracker order lists section %q twice", id)
		}
		seen[id] = true
	}
	if err := c.UI.Validate(); err != nil {
		return err
	}
	return c.Contact.Validate()
}
