package particles

import (
	"sync"

	"folio/internal/logging"
)

// Backdrop binds a Field to the Surface it renders into. Frames run on the
// animation loop while readers (the UI, a PNG writer) inspect the surface, so
// every access goes through one mutex.
type Backdrop struct {
	mu      sync.Mutex
	field   *Field
	surface Surface
	frames  uint64
}

// Mount acquires a surface and seeds the field for a width x height viewport.
// When acquire fails the backdrop stays inert: nothing is initialised and
// Frame, Resize and Draw do nothing.
func Mount(field *Field, width, height float64, acquire func() (Surface, error)) *Backdrop {
	b := &Backdrop{field: field}

	var s Surface
	var err error
	if acquire != nil {
		s, err = acquire()
	}
	if err != nil || s == nil {
		logging.BackdropDebug("no drawable surface, backdrop disabled: %v", err)
		return b
	}

	b.surface = s
	if r, ok := s.(Resizable); ok {
		r.Resize(width, height)
	}
	field.Initialize(width, height, field.count)
	logging.Backdrop("backdrop mounted: %.0fx%.0f, %d particles", width, height, field.Len())
	return b
}

// Active reports whether a surface was acquired.
func (b *Backdrop) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.surface != nil
}

// Frame advances the simulation one step and redraws it.
func (b *Backdrop) Frame() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.surface == nil {
		return
	}
	b.field.Advance()
	b.field.Render(b.surface)
	b.frames++
}

// Resize follows a viewport change.
func (b *Backdrop) Resize(width, height float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.surface == nil {
		return
	}
	if r, ok := b.surface.(Resizable); ok {
		r.Resize(width, height)
	}
	b.field.Resize(width, height)
	logging.BackdropDebug("backdrop resized to %.0fx%.0f (%d particles)", width, height, b.field.Len())
}

// Draw runs fn with exclusive access to the surface.
func (b *Backdrop) Draw(fn func(Surface)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.surface == nil {
		return
	}
	fn(b.surface)
}

// Frames returns the number of frames rendered so far.
func (b *Backdrop) Frames() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frames
}

// Particles returns a snapshot of the particle set.
func (b *Backdrop) Particles() []Particle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.field.Particles()
}
