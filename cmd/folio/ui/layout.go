package ui

// Screen geometry, in terminal cells unless noted.
const (
	HeaderHeight = 2
	FooterHeight = 1

	ContentPaddingH = 2
	ContentMaxWidth = 96

	PaletteWidth      = 44
	PaletteMaxResults = 9

	FormWidth         = 64
	FormMessageHeight = 5

	MinimumTerminalWidth  = 40
	MinimumTerminalHeight = 12
	CompactModeWidth      = 72

	// Pixel thresholds, matching the scroll behaviour of the header.
	ScrolledThreshold  = 10
	ScrollTopThreshold = 500
)

// Layout is the screen split for one terminal size.
type Layout struct {
	Width     int
	Height    int
	IsCompact bool
}

// NewLayout computes the split for a width x height terminal.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:     width,
		Height:    height,
		IsCompact: width < CompactModeWidth,
	}
}

// BodyHeight is the number of rows between header and footer.
func (l Layout) BodyHeight() int {
	return max(l.Height-HeaderHeight-FooterHeight, 1)
}

// ContentWidth is the wrap width for section text.
func (l Layout) ContentWidth() int {
	return max(min(l.Width-2*ContentPaddingH, ContentMaxWidth), 10)
}

// ContentLeft is the column where the centered content column starts.
func (l Layout) ContentLeft() int {
	return max((l.Width-l.ContentWidth())/2, 0)
}

// OverlayWidth clamps a preferred overlay width to the terminal.
func (l Layout) OverlayWidth(preferred int) int {
	return max(min(preferred, l.Width-4), 10)
}

// TooSmall reports whether the terminal is below the usable minimum.
func (l Layout) TooSmall() bool {
	return l.Width < MinimumTerminalWidth || l.Height < MinimumTerminalHeight
}
