package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// BackdropConfig holds the particle field constants. The defaults are 100 slow
// particles linked within 100px.
type BackdropConfig struct {
	Enabled       bool    `yaml:"enabled"`
	ParticleCount int     `yaml:"particle_count"`
	LinkDistance  float64 `yaml:"link_distance"` // px; pairs closer than this are joined
	Speed         float64 `yaml:"speed"`         // max |velocity| per axis, px/frame
	MinRadius     float64 `yaml:"min_radius"`
	MaxRadius     float64 `yaml:"max_radius"`
	Restitution   float64 `yaml:"restitution"` // velocity kept on a wall bounce
	Color         string  `yaml:"color"`       // hex, particles and links
	Background    string  `yaml:"background"`  // hex, raster snapshots only
	LineWidth     float64 `yaml:"line_width"`
	FPS           int     `yaml:"fps"`
}

// DefaultBackdropConfig returns the backdrop defaults.
func DefaultBackdropConfig() BackdropConfig {
	return BackdropConfig{
		Enabled:       true,
		ParticleCount: 100,
		LinkDistance:  100,
		Speed:         0.1,
		MinRadius:     1,
		MaxRadius:     3,
		Restitution:   1,
		Color:         "#8261D0",
		Background:    "#0f0b1a",
		LineWidth:     0.5,
		FPS:           60,
	}
}

// Validate checks the numeric ranges.
func (b BackdropConfig) Validate() error {
	switch {
	case b.ParticleCount < 0:
		return fmt.Errorf("backdrop particle_count must be >= 0, got %d", b.ParticleCount)
	case b.LinkDistance <= 0:
		return fmt.Errorf("backdrop link_distance must be > 0, got %v", b.LinkDistance)
	case b.Speed < 0:
		return fmt.Errorf("backdrop speed must be >= 0, got %v", b.Speed)
	case b.MinRadius <= 0 || b.MaxRadius < b.MinRadius:
		return fmt.Errorf("backdrop radius range [%v, %v] is invalid", b.MinRadius, b.MaxRadius)
	case b.Restitution < 0 || b.Restitution > 1:
		return fmt.Errorf("backdrop restitution must be within [0, 1], got %v", b.Restitution)
	case b.FPS < 0 || b.FPS > 240:
		return fmt.Errorf("backdrop fps must be within [0, 240], got %d", b.FPS)
	}
	if !isHexColor(b.Color) {
		return fmt.Errorf("backdrop color %q is not a hex color", b.Color)
	}
	if b.Background != "" && !isHexColor(b.Background) {
		return fmt.Errorf("backdrop background %q is not a hex color", b.Background)
	}
	return nil
}

func isHexColor(s string) bool {
	_, err := colorful.Hex(s)
	return err == nil
}
