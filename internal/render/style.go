package render

import (
	"image/color"

	"github.com/san-kum/paperplane/internal/flight"
)

// Marker is the glyph drawn for the plane.
type Marker int

const (
	MarkerTriangleUp Marker = iota
	MarkerSquare
	MarkerTriangleRight
)

func (m Marker) String() string {
	switch m {
	case MarkerTriangleUp:
		return "^"
	case MarkerSquare:
		return "s"
	case MarkerTriangleRight:
		return ">"
	}
	return "?"
}

// Rune is the marker as a single terminal character.
func (m Marker) Rune() rune {
	switch m {
	case MarkerTriangleUp:
		return '▲'
	case MarkerSquare:
		return '■'
	case MarkerTriangleRight:
		return '▶'
	}
	return '●'
}

var (
	colorBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorAxis       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	colorGrid       = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	colorTrail      = color.RGBA{R: 0xb0, G: 0xb0, B: 0xc8, A: 0xff}
	colorBlue       = color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	colorGreen      = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff}
	colorRed        = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
)

// palette holds every colour a frame can contain.
var palette = color.Palette{
	colorBackground,
	colorAxis,
	colorGrid,
	colorTrail,
	colorBlue,
	colorGreen,
	colorRed,
}

var (
	wingColor = map[string]color.RGBA{"Short": colorBlue, "Medium": colorGreen, "Long": colorRed}
	wingHex   = map[string]string{"Short": "#0000ff", "Medium": "#008000", "Long": "#ff0000"}
	bodySize  = map[string]float64{"Short": 5, "Medium": 8, "Long": 11}
	shapeMark = map[string]Marker{"Delta": MarkerTriangleUp, "Standard": MarkerSquare, "Arrow": MarkerTriangleRight}
)

// Style describes how the plane's marker looks. Size is in points.
type Style struct {
	Color  color.RGBA
	Hex    string
	Size   float64
	Marker Marker
}

// StyleFor derives the marker from the plane: wing length picks the colour,
// body length the size and shape the glyph.
func StyleFor(p flight.Plane) Style {
	s := Style{
		Color:  colorBlue,
		Hex:    "#0000ff",
		Size:   bodySize["Medium"] * 1.5,
		Marker: MarkerTriangleUp,
	}
	if c, ok := wingColor[p.Wing]; ok {
		s.Color = c
		s.Hex = wingHex[p.Wing]
	}
	if size, ok := bodySize[p.Body]; ok {
		s.Size = size * 1.5
	}
	if m, ok := shapeMark[p.Shape]; ok {
		s.Marker = m
	}
	return s
}
