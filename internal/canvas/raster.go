// Package canvas provides the drawing surfaces the particle backdrop renders
// into: an anti-aliased pixel raster for image output and a Braille cell grid
// for the terminal.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"

	"folio/internal/particles"
)

// Raster is a pixel surface backed by a gg software context.
type Raster struct {
	dc  *gg.Context
	bg  gg.RGBA
	err error
}

var _ particles.Surface = (*Raster)(nil)
var _ particles.Resizable = (*Raster)(nil)

// NewRaster allocates a width x height raster cleared to bg.
func NewRaster(width, height int, bg color.NRGBA) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: raster %dx%d", particles.ErrNoSurface, width, height)
	}
	r := &Raster{dc: gg.NewContext(width, height), bg: gg.FromColor(bg)}
	r.Clear()
	return r, nil
}

// Clear paints the whole raster with the background color.
func (r *Raster) Clear() {
	r.dc.ClearWithColor(r.bg)
}

// FillCircle draws a filled disc.
func (r *Raster) FillCircle(x, y, radius float64, c color.NRGBA) {
	r.dc.SetColor(c)
	r.dc.DrawCircle(x, y, radius)
	r.keep(r.dc.Fill())
}

// Line strokes a segment, scaling the stroke color's alpha by st.Alpha.
func (r *Raster) Line(x1, y1, x2, y2 float64, st particles.Stroke) {
	a := float64(st.Color.A) / 255 * st.Alpha
	r.dc.SetRGBA(float64(st.Color.R)/255, float64(st.Color.G)/255, float64(st.Color.B)/255, a)
	r.dc.SetLineWidth(st.Width)
	r.dc.DrawLine(x1, y1, x2, y2)
	r.keep(r.dc.Stroke())
}

// Resize reallocates the pixel buffer. Non-positive sizes are ignored.
func (r *Raster) Resize(width, height float64) {
	w, h := int(math.Ceil(width)), int(math.Ceil(height))
	if w <= 0 || h <= 0 {
		return
	}
	r.keep(r.dc.Resize(w, h))
	r.Clear()
}

// Size returns the raster dimensions in pixels.
func (r *Raster) Size() (width, height int) { return r.dc.Width(), r.dc.Height() }

// Image returns the current pixels.
func (r *Raster) Image() image.Image { return r.dc.Image() }

// SavePNG writes the raster to path.
func (r *Raster) SavePNG(path string) error { return r.dc.SavePNG(path) }

// WritePNG encodes the raster to w.
func (r *Raster) WritePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

// Err returns the first drawing error, if any.
func (r *Raster) Err() error { return r.err }

// Close releases the context.
func (r *Raster) Close() error { return r.dc.Close() }

func (r *Raster) keep(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}
