package main

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"folio/internal/config"
	"folio/internal/particles"
)

// parseHex turns a #rrggbb value into an opaque color.
func parseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// newField builds the particle field from the backdrop config. A zero seed
// uses the clock.
func newField(cfg config.BackdropConfig, seed int64) (*particles.Field, error) {
	c, err := parseHex(cfg.Color)
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return particles.NewField(particles.Config{
		Count:        cfg.ParticleCount,
		LinkDistance: cfg.LinkDistance,
		Speed:        cfg.Speed,
		MinRadius:    cfg.MinRadius,
		MaxRadius:    cfg.MaxRadius,
		Restitution:  cfg.Restitution,
		LineWidth:    cfg.LineWidth,
		Color:        c,
	}, rand.New(rand.NewSource(seed))), nil
}
