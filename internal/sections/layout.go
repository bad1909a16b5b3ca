package sections

// Layout records where each section sits in the scrolled document, in pixels
// from the document top, and turns a scroll position into viewport geometry.
type Layout struct {
	spans map[string]Box
	order []string
	end   float64
}

// NewLayout returns an empty layout.
func NewLayout() *Layout {
	return &Layout{spans: make(map[string]Box)}
}

// Append places id directly below the previous section.
func (l *Layout) Append(id string, height float64) {
	l.spans[id] = Box{Top: l.end, Bottom: l.end + height}
	l.order = append(l.order, id)
	l.end += height
}

// Start returns the document offset of id.
func (l *Layout) Start(id string) (float64, bool) {
	b, ok := l.spans[id]
	return b.Top, ok
}

// Height returns the total document height.
func (l *Layout) Height() float64 { return l.end }

// IDs returns the placed ids in document order.
func (l *Layout) IDs() []string { return append([]string(nil), l.order...) }

// At returns the geometry seen with the viewport scrolled to scrollY.
func (l *Layout) At(scrollY float64) Geometry {
	return GeometryFunc(func(id string) (Box, bool) {
		b, ok := l.spans[id]
		if !ok {
			return Box{}, false
		}
		return Box{Top: b.Top - scrollY, Bottom: b.Bottom - scrollY}, true
	})
}
