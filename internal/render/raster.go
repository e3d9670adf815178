package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/paperplane/internal/anim"
)

const (
	title  = "Flight Animation"
	xLabel = "Distance (m)"
)

// Renderer rasterises animation frames onto a fixed plot.
type Renderer struct {
	Plot Plot
	DPI  float64
	// Trail draws the frames already visited behind the marker.
	Trail bool
}

func NewRenderer(width, height int, xMax float64) *Renderer {
	return &Renderer{
		Plot: NewPlot(width, height, xMax),
		DPI:  DefaultDPI,
	}
}

// Background draws everything that does not move: axes, ticks and labels.
func (r *Renderer) Background() *image.Paletted {
	p := r.Plot
	img := image.NewPaletted(image.Rect(0, 0, p.Width, p.Height), palette)
	draw.Draw(img, img.Bounds(), &image.Uniform{C: colorBackground}, image.Point{}, draw.Src)

	area := p.Area()
	for _, v := range p.Ticks() {
		px := p.ToPixel(anim.Point{X: v}).X
		vline(img, px, area.Min.Y+1, area.Max.Y-1, colorGrid)
		vline(img, px, area.Max.Y, area.Max.Y+4, colorAxis)
		drawTextCentered(img, px, area.Max.Y+16, formatTick(v), colorAxis)
	}

	hline(img, area.Min.X, area.Max.X-1, area.Min.Y, colorAxis)
	hline(img, area.Min.X, area.Max.X-1, area.Max.Y-1, colorAxis)
	vline(img, area.Min.X, area.Min.Y, area.Max.Y-1, colorAxis)
	vline(img, area.Max.X-1, area.Min.Y, area.Max.Y-1, colorAxis)

	drawTextCentered(img, (area.Min.X+area.Max.X)/2, area.Min.Y-10, title, colorAxis)
	drawTextCentered(img, (area.Min.X+area.Max.X)/2, p.Height-8, xLabel, colorAxis)
	return img
}

// Frames renders one image per frame, in order.
func (r *Renderer) Frames(path []anim.Frame, st Style) ([]*image.Paletted, error) {
	if !r.Plot.Valid() {
		return nil, ErrBadGeometry
	}
	bg := r.Background()
	out := make([]*image.Paletted, 0, len(path))
	for i, f := range path {
		img := clonePaletted(bg)
		if r.Trail {
			for _, prev := range path[:i] {
				pt := r.Plot.ToPixel(prev.Point)
				r.dot(img, pt, colorTrail)
			}
		}
		r.marker(img, r.Plot.ToPixel(f.Point), st)
		out = append(out, img)
	}
	return out, nil
}

// GIF renders the path of a flight and writes it as an animated GIF.
func (r *Renderer) GIF(w io.Writer, path []anim.Frame, st Style, fps int) error {
	frames, err := r.Frames(path, st)
	if err != nil {
		return err
	}
	return EncodeGIF(w, frames, fps)
}

// GIFBytes is GIF into an in-memory buffer.
func (r *Renderer) GIFBytes(path []anim.Frame, st Style, fps int) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.GIF(&buf, path, st, fps); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// radius converts the marker size from points to half its pixel extent.
func (r *Renderer) radius(st Style) float64 {
	dpi := r.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return st.Size * dpi / 72 / 2
}

func (r *Renderer) marker(img *image.Paletted, c image.Point, st Style) {
	rad := r.radius(st)
	clip := r.Plot.Area()
	cx, cy := float64(c.X), float64(c.Y)

	var inside func(x, y float64) bool
	switch st.Marker {
	case MarkerSquare:
		h := rad * 0.8
		inside = func(x, y float64) bool {
			return math.Abs(x-cx) <= h && math.Abs(y-cy) <= h
		}
	case MarkerTriangleRight:
		a := [2]float64{cx + rad, cy}
		b := [2]float64{cx - rad, cy - rad}
		d := [2]float64{cx - rad, cy + rad}
		inside = func(x, y float64) bool { return inTriangle(x, y, a, b, d) }
	default:
		a := [2]float64{cx, cy - rad}
		b := [2]float64{cx - rad, cy + rad}
		d := [2]float64{cx + rad, cy + rad}
		inside = func(x, y float64) bool { return inTriangle(x, y, a, b, d) }
	}

	n := int(math.Ceil(rad))
	for y := c.Y - n; y <= c.Y+n; y++ {
		for x := c.X - n; x <= c.X+n; x++ {
			if !(image.Point{X: x, Y: y}).In(clip) {
				continue
			}
			if inside(float64(x), float64(y)) {
				img.Set(x, y, st.Color)
			}
		}
	}
}

func (r *Renderer) dot(img *image.Paletted, c image.Point, col color.RGBA) {
	clip := r.Plot.Area()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			p := image.Point{X: c.X + dx, Y: c.Y + dy}
			if p.In(clip) {
				img.Set(p.X, p.Y, col)
			}
		}
	}
}

func inTriangle(x, y float64, a, b, c [2]float64) bool {
	d1 := edge(x, y, a, b)
	d2 := edge(x, y, b, c)
	d3 := edge(x, y, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edge(x, y float64, a, b [2]float64) float64 {
	return (x-b[0])*(a[1]-b[1]) - (a[0]-b[0])*(y-b[1])
}

func hline(img *image.Paletted, x0, x1, y int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.Set(x, y, c)
	}
}

func vline(img *image.Paletted, x, y0, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		img.Set(x, y, c)
	}
}

func clonePaletted(src *image.Paletted) *image.Paletted {
	dst := image.NewPaletted(src.Rect, src.Palette)
	copy(dst.Pix, src.Pix)
	return dst
}

func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
