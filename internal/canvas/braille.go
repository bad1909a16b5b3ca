package canvas

import (
	"image/color"
	"math"
	"strings"

	"folio/internal/particles"
)

// Each terminal cell holds a 2x4 Braille dot matrix.
const (
	dotsX = 2
	dotsY = 4

	brailleBase = 0x2800
)

var dotBits = [dotsY][dotsX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Braille rasterizes into terminal cells. Coordinates are in pixels; a cell
// is cellW x cellH pixels and each dot covers a quarter of its height and
// half its width.
type Braille struct {
	cellW, cellH float64
	minAlpha     float64
	cols, rows   int
	mask         []uint8
	ink          []float64
}

var _ particles.Surface = (*Braille)(nil)
var _ particles.Resizable = (*Braille)(nil)

// NewBraille creates an empty grid. Lines fainter than minAlpha are skipped,
// since a dot has no intensity of its own.
func NewBraille(cellW, cellH int, minAlpha float64) *Braille {
	if cellW <= 0 {
		cellW = 8
	}
	if cellH <= 0 {
		cellH = 16
	}
	return &Braille{cellW: float64(cellW), cellH: float64(cellH), minAlpha: minAlpha}
}

// Resize sets the grid to cover a width x height pixel area.
func (b *Braille) Resize(width, height float64) {
	cols := int(math.Ceil(width / b.cellW))
	rows := int(math.Ceil(height / b.cellH))
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	b.cols, b.rows = cols, rows
	n := cols * rows
	if cap(b.mask) < n {
		b.mask = make([]uint8, n)
		b.ink = make([]float64, n)
	}
	b.mask = b.mask[:n]
	b.ink = b.ink[:n]
	b.Clear()
}

// Clear removes every dot.
func (b *Braille) Clear() {
	clear(b.mask)
	clear(b.ink)
}

// FillCircle sets every dot whose center lies within the disc, and at least
// the dot under the center.
func (b *Braille) FillCircle(x, y, radius float64, _ color.NRGBA) {
	dw, dh := b.cellW/dotsX, b.cellH/dotsY
	cx, cy := int(math.Floor(x/dw)), int(math.Floor(y/dh))
	b.set(cx, cy, 1)

	rx, ry := int(math.Ceil(radius/dw)), int(math.Ceil(radius/dh))
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			px := (float64(cx+dx) + 0.5) * dw
			py := (float64(cy+dy) + 0.5) * dh
			if math.Hypot(px-x, py-y) <= radius {
				b.set(cx+dx, cy+dy, 1)
			}
		}
	}
}

// Line plots a segment in dot space with Bresenham's algorithm.
func (b *Braille) Line(x1, y1, x2, y2 float64, st particles.Stroke) {
	if st.Alpha < b.minAlpha {
		return
	}
	dw, dh := b.cellW/dotsX, b.cellH/dotsY
	x0, y0 := int(math.Floor(x1/dw)), int(math.Floor(y1/dh))
	xe, ye := int(math.Floor(x2/dw)), int(math.Floor(y2/dh))

	dx := abs(xe - x0)
	dy := -abs(ye - y0)
	sx, sy := 1, 1
	if x0 > xe {
		sx = -1
	}
	if y0 > ye {
		sy = -1
	}
	e := dx + dy
	for {
		b.set(x0, y0, st.Alpha)
		if x0 == xe && y0 == ye {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (b *Braille) set(dx, dy int, ink float64) {
	col, row := dx/dotsX, dy/dotsY
	if dx < 0 || dy < 0 || col >= b.cols || row >= b.rows {
		return
	}
	i := row*b.cols + col
	b.mask[i] |= dotBits[dy%dotsY][dx%dotsX]
	if ink > b.ink[i] {
		b.ink[i] = ink
	}
}

// Size returns the grid dimensions in cells.
func (b *Braille) Size() (cols, rows int) { return b.cols, b.rows }

// Cell returns the glyph at (col, row) and the strongest ink that touched it.
// ok is false for empty or out-of-range cells.
func (b *Braille) Cell(col, row int) (r rune, ink float64, ok bool) {
	if col < 0 || row < 0 || col >= b.cols || row >= b.rows {
		return ' ', 0, false
	}
	i := row*b.cols + col
	if b.mask[i] == 0 {
		return ' ', 0, false
	}
	return rune(brailleBase + int(b.mask[i])), b.ink[i], true
}

// Row renders one row of glyphs with spaces for empty cells.
func (b *Braille) Row(row int) string {
	var sb strings.Builder
	sb.Grow(b.cols * 3)
	for col := 0; col < b.cols; col++ {
		r, _, _ := b.Cell(col, row)
		sb.WriteRune(r)
	}
	return sb.String()
}

// String renders the whole grid.
func (b *Braille) String() string {
	rows := make([]string, b.rows)
	for i := range rows {
		rows[i] = b.Row(i)
	}
	return strings.Join(rows, "\n")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
