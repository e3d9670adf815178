package render

import (
	"image"
	"math"

	"github.com/san-kum/paperplane/internal/anim"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 480
	DefaultXMax   = 20.0
	DefaultDPI    = 100.0
)

// Plot maps data coordinates onto pixels. Y limits are fixed to [-1, 1]
// which contains the whole wave.
type Plot struct {
	Width, Height            int
	XMin, XMax               float64
	YMin, YMax               float64
	Left, Right, Top, Bottom int
}

func NewPlot(width, height int, xMax float64) Plot {
	if xMax <= 0 {
		xMax = DefaultXMax
	}
	return Plot{
		Width:  width,
		Height: height,
		XMin:   0,
		XMax:   xMax,
		YMin:   -1,
		YMax:   1,
		Left:   width / 16,
		Right:  width / 24,
		Top:    height / 10,
		Bottom: height / 8,
	}
}

// Area is the rectangle inside the axes.
func (p Plot) Area() image.Rectangle {
	return image.Rect(p.Left, p.Top, p.Width-p.Right, p.Height-p.Bottom)
}

func (p Plot) Valid() bool {
	a := p.Area()
	return a.Dx() > 1 && a.Dy() > 1 && p.XMax > p.XMin && p.YMax > p.YMin
}

// ToPixel converts a data point to image coordinates. Points outside the
// limits map outside Area.
func (p Plot) ToPixel(pt anim.Point) image.Point {
	a := p.Area()
	fx := (pt.X - p.XMin) / (p.XMax - p.XMin)
	fy := (p.YMax - pt.Y) / (p.YMax - p.YMin)
	return image.Point{
		X: a.Min.X + int(math.Round(fx*float64(a.Dx()-1))),
		Y: a.Min.Y + int(math.Round(fy*float64(a.Dy()-1))),
	}
}

// Ticks returns evenly spaced x tick values covering [XMin, XMax].
func (p Plot) Ticks() []float64 {
	step := niceStep((p.XMax - p.XMin) / 4)
	var ticks []float64
	for v := math.Ceil(p.XMin/step) * step; v <= p.XMax+1e-9; v += step {
		ticks = append(ticks, v)
	}
	return ticks
}

func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / mag; {
	case f <= 1:
		return mag
	case f <= 2:
		return 2 * mag
	case f <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}
