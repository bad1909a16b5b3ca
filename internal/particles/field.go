package particles

import (
	"image/color"
	"math"
	"math/rand"
	"time"
)

// Particle is one animated point.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Config holds the field constants.
type Config struct {
	Count        int
	LinkDistance float64
	Speed        float64 // per-axis velocity is drawn from [-Speed, Speed)
	MinRadius    float64
	MaxRadius    float64
	Restitution  float64
	LineWidth    float64
	Color        color.NRGBA
}

// DefaultConfig is 100 slow particles linked within 100px.
func DefaultConfig() Config {
	return Config{
		Count:        100,
		LinkDistance: 100,
		Speed:        0.1,
		MinRadius:    1,
		MaxRadius:    3,
		Restitution:  1,
		LineWidth:    0.5,
		Color:        color.NRGBA{R: 0x82, G: 0x61, B: 0xD0, A: 0xFF},
	}
}

// Field is the particle simulation. It is not safe for concurrent use; see Backdrop.
type Field struct {
	cfg       Config
	rng       *rand.Rand
	width     float64
	height    float64
	count     int
	particles []Particle
	populated bool
}

// NewField creates an empty field. A nil rng seeds one from the clock.
func NewField(cfg Config, rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Field{cfg: cfg, rng: rng, count: cfg.Count}
}

// Initialize (re)creates count particles spread uniformly over the viewport.
// A zero-size viewport leaves the field empty until Resize provides one.
func (f *Field) Initialize(width, height float64, count int) {
	f.width, f.height = width, height
	f.count = count
	f.particles = f.particles[:0]
	f.populated = false

	if width <= 0 || height <= 0 || count <= 0 {
		return
	}

	if cap(f.particles) < count {
		f.particles = make([]Particle, 0, count)
	}
	for i := 0; i < count; i++ {
		f.particles = append(f.particles, Particle{
			X:      f.rng.Float64() * width,
			Y:      f.rng.Float64() * height,
			VX:     f.rng.Float64()*2*f.cfg.Speed - f.cfg.Speed,
			VY:     f.rng.Float64()*2*f.cfg.Speed - f.cfg.Speed,
			Radius: f.cfg.MinRadius + f.rng.Float64()*(f.cfg.MaxRadius-f.cfg.MinRadius),
		})
	}
	f.populated = true
}

// Advance moves every particle by its velocity and bounces it off the edges.
func (f *Field) Advance() {
	for i := range f.particles {
		p := &f.particles[i]
		p.X, p.VX = reflect(p.X+p.VX, p.VX, f.width, f.cfg.Restitution)
		p.Y, p.VY = reflect(p.Y+p.VY, p.VY, f.height, f.cfg.Restitution)
	}
}

// reflect mirrors pos back into [0, limit]. The velocity is pointed inward
// rather than negated so a particle stranded outside by a shrink cannot
// oscillate on the wrong side of the wall.
func reflect(pos, vel, limit, restitution float64) (float64, float64) {
	switch {
	case pos < 0:
		pos = -pos
		vel = math.Abs(vel) * restitution
	case pos > limit:
		pos = 2*limit - pos
		vel = -math.Abs(vel) * restitution
	default:
		return pos, vel
	}
	// Far outside after a shrink the mirror image can overshoot the other wall.
	return math.Min(math.Max(pos, 0), limit), vel
}

// Render clears s, draws the particles, then links every pair closer than
// LinkDistance with a line that fades out linearly with distance.
func (f *Field) Render(s Surface) {
	if s == nil {
		return
	}
	s.Clear()

	for _, p := range f.particles {
		s.FillCircle(p.X, p.Y, p.Radius, f.cfg.Color)
	}

	st := Stroke{Color: f.cfg.Color, Width: f.cfg.LineWidth}
	limit := f.cfg.LinkDistance * f.cfg.LinkDistance
	for i := 0; i < len(f.particles); i++ {
		a := f.particles[i]
		for j := i + 1; j < len(f.particles); j++ {
			b := f.particles[j]
			dx, dy := a.X-b.X, a.Y-b.Y
			d2 := dx*dx + dy*dy
			if d2 >= limit {
				continue
			}
			alpha, ok := LinkOpacity(math.Sqrt(d2), f.cfg.LinkDistance)
			if !ok {
				continue
			}
			st.Alpha = alpha
			s.Line(a.X, a.Y, b.X, b.Y, st)
		}
	}
}

// Resize updates the bounds. Existing particles keep their coordinates and
// are folded back in by the next Advance. A field that never had a usable
// viewport is populated now.
func (f *Field) Resize(width, height float64) {
	if !f.populated {
		f.Initialize(width, height, f.count)
		return
	}
	f.width, f.height = width, height
}

// LinkOpacity returns the alpha of a link between points d apart: 1 at
// distance 0 falling linearly to 0 at threshold. ok is false when no line
// should be drawn.
func LinkOpacity(d, threshold float64) (alpha float64, ok bool) {
	if threshold <= 0 || d < 0 || d >= threshold {
		return 0, false
	}
	return 1 - d/threshold, true
}

// Particles returns a copy of the current particle set.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Len returns the number of particles.
func (f *Field) Len() int { return len(f.particles) }

// Bounds returns the viewport the particles bounce within.
func (f *Field) Bounds() (width, height float64) { return f.width, f.height }
