package sections

import (
	"errors"
	"fmt"
	"sync"

	"folio/internal/logging"
)

// DefaultOffset is the detection line, in pixels below the viewport top.
const DefaultOffset = 100.0

var (
	ErrAlreadyConfigured = errors.New("sections: tracker already configured")
	ErrDuplicateID       = errors.New("sections: duplicate section id")
)

// Box is a section's vertical extent relative to the viewport top.
type Box struct {
	Top, Bottom float64
}

// Contains reports whether the horizontal line at y crosses the box.
func (b Box) Contains(y float64) bool { return b.Top <= y && b.Bottom >= y }

// Geometry answers bounding-box queries for section ids. ok is false when the
// section has no element on screen.
type Geometry interface {
	Bounds(id string) (Box, bool)
}

// GeometryFunc adapts a function to Geometry.
type GeometryFunc func(id string) (Box, bool)

func (f GeometryFunc) Bounds(id string) (Box, bool) { return f(id) }

// Tracker picks the active section on each scroll.
type Tracker struct {
	offset float64
	active *ActiveCell

	once  sync.Once
	order []string
}

// NewTracker creates a tracker that writes into active. A negative offset
// falls back to DefaultOffset.
func NewTracker(offset float64, active *ActiveCell) *Tracker {
	if offset < 0 {
		offset = DefaultOffset
	}
	if active == nil {
		active = NewActiveCell("")
	}
	return &Tracker{offset: offset, active: active}
}

// Configure fixes the ordered list of section ids. It can only succeed once.
func (t *Tracker) Configure(ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
	}

	err := ErrAlreadyConfigured
	t.once.Do(func() {
		t.order = append([]string(nil), ids...)
		err = nil
	})
	if err == nil {
		logging.SectionsDebug("tracker configured: %d sections, offset %.0f", len(ids), t.offset)
	}
	return err
}

// Recompute scans the configured order and activates the first section whose
// box crosses the offset line. When nothing matches the active section is
// left as it was. It returns the active id and whether a section matched.
func (t *Tracker) Recompute(g Geometry) (string, bool) {
	if g == nil {
		return t.active.Get(), false
	}
	for _, id := range t.order {
		box, ok := g.Bounds(id)
		if !ok {
			continue
		}
		if box.Contains(t.offset) {
			if t.active.Set(id) {
				logging.SectionsDebug("active section: %s", id)
			}
			return id, true
		}
	}
	return t.active.Get(), false
}

// Order returns the configured ids.
func (t *Tracker) Order() []string { return append([]string(nil), t.order...) }

// Offset returns the detection line.
func (t *Tracker) Offset() float64 { return t.offset }

// Active returns the cell the tracker writes.
func (t *Tracker) Active() *ActiveCell { return t.active }
