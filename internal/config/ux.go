package config

import "fmt"

// UIConfig holds user interface configuration.
type UIConfig struct {
	// Theme is "light", "dark" or empty to detect from the terminal
	Theme string `yaml:"theme"`

	// Approximate pixel size of a terminal cell. Section geometry and the
	// backdrop are expressed in pixels so the tracker offset keeps its meaning.
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`

	// Smooth-scroll spring
	ScrollFrequency float64 `yaml:"scroll_frequency"`
	ScrollDamping   float64 `yaml:"scroll_damping"`

	// ResumeURL is opened by the palette's Resume command; empty uses the content's
	ResumeURL string `yaml:"resume_url,omitempty"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() UIConfig {
	return UIConfig{
		Theme:           "",
		CellWidth:       8,
		CellHeight:      16,
		ScrollFrequency: 6.0,
		ScrollDamping:   1.0,
	}
}

// Validate checks theme name and cell geometry.
func (u UIConfig) Validate() error {
	switch u.Theme {
	case "", "light", "dark":
	default:
		return fmt.Errorf("invalid ui theme: %s (valid: light, dark)", u.Theme)
	}
	if u.CellWidth <= 0 || u.CellHeight <= 0 {
		return fmt.Errorf("ui cell size must be positive, got %vx%v", u.CellWidth, u.CellHeight)
	}
	if u.ScrollFrequency <= 0 || u.ScrollDamping <= 0 {
		return fmt.Errorf("ui scroll spring needs positive frequency and damping")
	}
	return nil
}
