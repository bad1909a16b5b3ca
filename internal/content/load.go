package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"folio/internal/logging"
)

//go:embed default.yaml
var defaultYAML []byte

// Parse decodes a portfolio document.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}
	if p.Profile.Name == "" {
		return nil, fmt.Errorf("content has no profile.name")
	}
	return &p, nil
}

// Default returns the built-in portfolio.
func Default() *Portfolio {
	p, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded content is invalid: %v", err))
	}
	return p
}

// DefaultYAML returns the built-in document, for writing a starter file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}

// Load reads path, or returns the built-in portfolio when path is empty.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.Content("loaded content from %s", path)
	return p, nil
}
