package render

import (
	"fmt"
	"strings"

	"github.com/san-kum/paperplane/internal/anim"
)

// PathSVG draws the whole path as a polyline with the marker at the final
// position. Bounds are taken from the points with 10% padding.
func PathSVG(points []anim.Point, width, height int, st Style) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	project := func(p anim.Point) (float64, float64) {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)
		return x, y
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<text x="%d" y="16" text-anchor="middle" font-family="sans-serif" font-size="14">%s</text>
<path fill="none" stroke="%s" stroke-opacity="0.5" stroke-width="1.5" d="M`,
		width, height, width, height, width/2, title, st.Hex)

	for i, p := range points {
		x, y := project(p)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}
	sb.WriteString(`"/>
`)

	x, y := project(points[len(points)-1])
	r := st.Size * DefaultDPI / 72 / 2
	sb.WriteString(markerSVG(st.Marker, x, y, r, st.Hex))
	sb.WriteString("</svg>")
	return sb.String()
}

func markerSVG(m Marker, x, y, r float64, fill string) string {
	switch m {
	case MarkerSquare:
		h := r * 0.8
		return fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x-h, y-h, 2*h, 2*h, fill)
	case MarkerTriangleRight:
		return fmt.Sprintf(`<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s"/>
`, x+r, y, x-r, y-r, x-r, y+r, fill)
	default:
		return fmt.Sprintf(`<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s"/>
`, x, y-r, x-r, y+r, x+r, y+r, fill)
	}
}
