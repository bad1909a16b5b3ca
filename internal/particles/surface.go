package particles

import (
	"errors"
	"image/color"
)

// ErrNoSurface is returned by a surface provider that cannot hand out a
// drawable target. A Backdrop treats it as "render nothing".
var ErrNoSurface = errors.New("particles: no drawable surface")

// Stroke describes a connecting line.
type Stroke struct {
	Color color.NRGBA
	Alpha float64 // 0..1, multiplied into Color.A
	Width float64
}

// Surface is the 2-D drawing target the field renders into.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c color.NRGBA)
	Line(x1, y1, x2, y2 float64, st Stroke)
}

// Resizable is implemented by surfaces whose drawable area follows the viewport.
type Resizable interface {
	Resize(width, height float64)
}
