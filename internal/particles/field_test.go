package particles

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	x1, y1, x2, y2 float64
	st             Stroke
}

// recorder is a Surface that remembers what was drawn since the last Clear.
type recorder struct {
	clears  int
	circles int
	lines   []line
	size    [2]float64
}

func (r *recorder) Clear() {
	r.clears++
	r.circles = 0
	r.lines = r.lines[:0]
}

func (r *recorder) FillCircle(x, y, rad float64, c color.NRGBA) { r.circles++ }

func (r *recorder) Line(x1, y1, x2, y2 float64, st Stroke) {
	r.lines = append(r.lines, line{x1, y1, x2, y2, st})
}

func (r *recorder) Resize(w, h float64) { r.size = [2]float64{w, h} }

func seeded(cfg Config) *Field {
	return NewField(cfg, rand.New(rand.NewSource(7)))
}

func TestInitialize(t *testing.T) {
	f := seeded(DefaultConfig())
	f.Initialize(800, 600, 100)

	require.Equal(t, 100, f.Len())
	for _, p := range f.Particles() {
		assert.True(t, p.X >= 0 && p.X <= 800, "x out of range: %v", p.X)
		assert.True(t, p.Y >= 0 && p.Y <= 600, "y out of range: %v", p.Y)
		assert.True(t, p.VX >= -0.1 && p.VX < 0.1, "vx out of range: %v", p.VX)
		assert.True(t, p.VY >= -0.1 && p.VY < 0.1, "vy out of range: %v", p.VY)
		assert.True(t, p.Radius >= 1 && p.Radius < 3, "radius out of range: %v", p.Radius)
	}
}

func TestInitializeZeroViewportIsEmpty(t *testing.T) {
	f := seeded(DefaultConfig())
	f.Initialize(0, 600, 100)
	assert.Equal(t, 0, f.Len())

	rec := &recorder{}
	f.Advance()
	f.Render(rec)
	assert.Equal(t, 1, rec.clears)
	assert.Zero(t, rec.circles)
	assert.Empty(t, rec.lines)

	// The first usable viewport populates the field.
	f.Resize(320, 200)
	assert.Equal(t, 100, f.Len())
}

func TestAdvanceKeepsParticlesInBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Speed = 7 // large steps exercise many bounces
	f := seeded(cfg)
	f.Initialize(120, 80, 50)

	for n := 0; n < 5000; n++ {
		f.Advance()
		for _, p := range f.Particles() {
			require.True(t, p.X >= 0 && p.X <= 120, "frame %d: x=%v", n, p.X)
			require.True(t, p.Y >= 0 && p.Y <= 80, "frame %d: y=%v", n, p.Y)
		}
	}
}

func TestAdvanceReflectsAtEdge(t *testing.T) {
	f := seeded(DefaultConfig())
	f.width, f.height = 100, 100
	f.particles = []Particle{
		{X: 100, Y: 50, VX: 0.1, VY: 0},
		{X: 0, Y: 50, VX: -0.1, VY: 0},
		{X: 50, Y: 100, VX: 0, VY: 0.05},
	}
	f.populated = true

	f.Advance()
	ps := f.Particles()

	assert.Less(t, ps[0].VX, 0.0)
	assert.LessOrEqual(t, ps[0].X, 100.0+0.1)
	assert.InDelta(t, 99.9, ps[0].X, 1e-9)

	assert.Greater(t, ps[1].VX, 0.0)
	assert.InDelta(t, 0.1, ps[1].X, 1e-9)

	assert.Less(t, ps[2].VY, 0.0)
	assert.InDelta(t, 99.95, ps[2].Y, 1e-9)
}

func TestAdvanceIsDeterministic(t *testing.T) {
	a := seeded(DefaultConfig())
	b := seeded(DefaultConfig())
	a.Initialize(300, 300, 20)
	b.Initialize(300, 300, 20)

	for i := 0; i < 100; i++ {
		a.Advance()
		b.Advance()
	}
	assert.Equal(t, a.Particles(), b.Particles())
}

func TestResizeKeepsCoordinatesThenFoldsBackIn(t *testing.T) {
	f := seeded(DefaultConfig())
	f.Initialize(1000, 1000, 100)
	before := f.Particles()

	f.Resize(200, 150)
	assert.Equal(t, before, f.Particles(), "resize must not reposition particles")

	f.Advance()
	for _, p := range f.Particles() {
		assert.True(t, p.X >= 0 && p.X <= 200, "x=%v", p.X)
		assert.True(t, p.Y >= 0 && p.Y <= 150, "y=%v", p.Y)
	}
}

func TestStrandedParticleDoesNotOscillate(t *testing.T) {
	f := seeded(DefaultConfig())
	f.width, f.height = 300, 300
	f.particles = []Particle{{X: 500, Y: 10, VX: 0.1, VY: 0}}
	f.populated = true

	f.Advance()
	p := f.Particles()[0]
	assert.True(t, p.X >= 0 && p.X <= 300, "x=%v", p.X)
	assert.Less(t, p.VX, 0.0)
}

func TestLinkOpacity(t *testing.T) {
	const threshold = 100.0

	a0, ok := LinkOpacity(0, threshold)
	require.True(t, ok)
	assert.Equal(t, 1.0, a0)

	a1, ok1 := LinkOpacity(20, threshold)
	a2, ok2 := LinkOpacity(60, threshold)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Greater(t, a1, a2)
	assert.InDelta(t, 0.4, a2, 1e-12)

	for _, d := range []float64{100, 100.5, 1e6} {
		_, ok := LinkOpacity(d, threshold)
		assert.False(t, ok, "no line at d=%v", d)
	}

	// Monotone over a fine sweep.
	prev := math.Inf(1)
	for d := 0.0; d < threshold; d += 0.5 {
		a, ok := LinkOpacity(d, threshold)
		require.True(t, ok)
		require.Less(t, a, prev)
		prev = a
	}
}

func TestRenderDrawsCirclesAndFadingLinks(t *testing.T) {
	f := seeded(DefaultConfig())
	f.width, f.height = 500, 500
	f.particles = []Particle{
		{X: 0, Y: 0, Radius: 1},
		{X: 30, Y: 40, Radius: 1},   // 50 from the first
		{X: 300, Y: 300, Radius: 2}, // far from both
	}
	f.populated = true

	rec := &recorder{}
	f.Render(rec)

	assert.Equal(t, 1, rec.clears)
	assert.Equal(t, 3, rec.circles)
	require.Len(t, rec.lines, 1)
	assert.InDelta(t, 0.5, rec.lines[0].st.Alpha, 1e-12)
	assert.Equal(t, 0.5, rec.lines[0].st.Width)
	assert.Equal(t, DefaultConfig().Color, rec.lines[0].st.Color)
}

func TestRenderLinkCountMatchesPairScan(t *testing.T) {
	f := seeded(DefaultConfig())
	f.Initialize(400, 300, 60)

	want := 0
	ps := f.Particles()
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			if math.Hypot(ps[i].X-ps[j].X, ps[i].Y-ps[j].Y) < 100 {
				want++
			}
		}
	}

	rec := &recorder{}
	f.Render(rec)
	assert.Len(t, rec.lines, want)
}

func TestRenderNilSurface(t *testing.T) {
	f := seeded(DefaultConfig())
	f.Initialize(100, 100, 10)
	assert.NotPanics(t, func() { f.Render(nil) })
}
