package render

import (
	"bytes"
	"errors"
	"image"
	"image/gif"
	"strings"
	"testing"

	"github.com/san-kum/paperplane/internal/anim"
	"github.com/san-kum/paperplane/internal/flight"
)

func countColor(img *image.Paletted, idx int) int {
	n := 0
	for _, p := range img.Pix {
		if int(p) == idx {
			n++
		}
	}
	return n
}

func TestStyleFor(t *testing.T) {
	tests := []struct {
		plane  flight.Plane
		color  string
		size   float64
		marker Marker
	}{
		{flight.Plane{Wing: "Short", Body: "Short", Shape: "Delta"}, "#0000ff", 7.5, MarkerTriangleUp},
		{flight.Plane{Wing: "Medium", Body: "Medium", Shape: "Standard"}, "#008000", 12, MarkerSquare},
		{flight.Plane{Wing: "Long", Body: "Long", Shape: "Arrow"}, "#ff0000", 16.5, MarkerTriangleRight},
	}
	for _, tt := range tests {
		st := StyleFor(tt.plane)
		if st.Hex != tt.color || st.Size != tt.size || st.Marker != tt.marker {
			t.Errorf("StyleFor(%v) = %+v", tt.plane, st)
		}
	}
}

func TestDelay(t *testing.T) {
	tests := []struct{ fps, want int }{
		{20, 5},
		{10, 10},
		{0, 5},
		{500, 1},
	}
	for _, tt := range tests {
		if got := Delay(tt.fps); got != tt.want {
			t.Errorf("Delay(%d) = %d, want %d", tt.fps, got, tt.want)
		}
	}
}

func TestTicks(t *testing.T) {
	got := NewPlot(DefaultWidth, DefaultHeight, 20).Ticks()
	want := []float64{0, 5, 10, 15, 20}
	if len(got) != len(want) {
		t.Fatalf("Ticks() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tick %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestToPixelCorners(t *testing.T) {
	p := NewPlot(DefaultWidth, DefaultHeight, 20)
	a := p.Area()
	if got := p.ToPixel(anim.Point{X: 0, Y: 1}); got != a.Min {
		t.Errorf("top-left = %v, want %v", got, a.Min)
	}
	want := image.Point{X: a.Max.X - 1, Y: a.Max.Y - 1}
	if got := p.ToPixel(anim.Point{X: 20, Y: -1}); got != want {
		t.Errorf("bottom-right = %v, want %v", got, want)
	}
}

func TestFramesCountAndMarker(t *testing.T) {
	r := NewRenderer(DefaultWidth, DefaultHeight, DefaultXMax)
	st := StyleFor(flight.OptimalPlane())
	frames, err := r.Frames(anim.Path(10), st)
	if err != nil {
		t.Fatalf("frames failed: %v", err)
	}
	if len(frames) != anim.FrameCount {
		t.Fatalf("expected %d frames, got %d", anim.FrameCount, len(frames))
	}
	red := palette.Index(colorRed)
	for i, f := range frames {
		if countColor(f, red) == 0 {
			t.Errorf("frame %d has no marker pixels", i)
		}
	}
}

func TestMarkerClippedOutsidePlot(t *testing.T) {
	r := NewRenderer(DefaultWidth, DefaultHeight, DefaultXMax)
	st := StyleFor(flight.OptimalPlane())
	frames, err := r.Frames(anim.Path(-3), st)
	if err != nil {
		t.Fatalf("frames failed: %v", err)
	}
	red := palette.Index(colorRed)
	for i, f := range frames {
		if n := countColor(f, red); n != 0 {
			t.Errorf("frame %d: expected marker clipped, found %d pixels", i, n)
		}
	}
}

func TestTrail(t *testing.T) {
	r := NewRenderer(DefaultWidth, DefaultHeight, DefaultXMax)
	r.Trail = true
	frames, err := r.Frames(anim.Path(15), StyleFor(flight.DefaultPlane()))
	if err != nil {
		t.Fatalf("frames failed: %v", err)
	}
	trail := palette.Index(colorTrail)
	if countColor(frames[0], trail) != 0 {
		t.Error("first frame should have no trail")
	}
	if countColor(frames[len(frames)-1], trail) == 0 {
		t.Error("last frame should show the trail")
	}
}

func countColorInRows(img *image.Paletted, idx, y0, y1 int) int {
	n := 0
	b := img.Bounds()
	for y := y0; y < y1; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if int(img.ColorIndexAt(x, y)) == idx {
				n++
			}
		}
	}
	return n
}

func TestBackgroundLabels(t *testing.T) {
	r := NewRenderer(DefaultWidth, DefaultHeight, DefaultXMax)
	bg := r.Background()
	area := r.Plot.Area()
	axis := palette.Index(colorAxis)

	tests := []struct {
		name   string
		y0, y1 int
	}{
		{"title", 0, area.Min.Y},
		{"tick labels", area.Max.Y + 6, area.Max.Y + 20},
		{"x label", r.Plot.Height - 20, r.Plot.Height},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if n := countColorInRows(bg, axis, tt.y0, tt.y1); n == 0 {
				t.Errorf("no text pixels in rows [%d, %d)", tt.y0, tt.y1)
			}
		})
	}
}

func TestBadGeometry(t *testing.T) {
	r := NewRenderer(1, 1, DefaultXMax)
	if _, err := r.Frames(anim.Path(10), Style{}); !errors.Is(err, ErrBadGeometry) {
		t.Errorf("expected ErrBadGeometry, got %v", err)
	}
}

func TestGIFRoundTrip(t *testing.T) {
	r := NewRenderer(320, 240, DefaultXMax)
	data, err := r.GIFBytes(anim.Path(12), StyleFor(flight.OptimalPlane()), 20)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(g.Image) != anim.FrameCount {
		t.Errorf("expected %d frames, got %d", anim.FrameCount, len(g.Image))
	}
	if g.LoopCount != 0 {
		t.Errorf("expected endless loop, got LoopCount=%d", g.LoopCount)
	}
	for i, d := range g.Delay {
		if d != 5 {
			t.Errorf("frame %d delay = %d, want 5", i, d)
		}
	}
	if b := g.Image[0].Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("unexpected frame size %v", b)
	}
}

func TestEncodeGIFEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeGIF(&buf, nil, 20); !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}
}

func TestPathSVG(t *testing.T) {
	svg := PathSVG(anim.Points(anim.Path(10)), 400, 200, StyleFor(flight.OptimalPlane()))
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("malformed svg document")
	}
	if !strings.Contains(svg, `stroke="#ff0000"`) {
		t.Error("expected wing colour on the path")
	}
	if !strings.Contains(svg, "<polygon") {
		t.Error("expected triangle marker")
	}
	if PathSVG(nil, 400, 200, Style{}) != "" {
		t.Error("expected empty output for empty path")
	}
}

func TestCanvas(t *testing.T) {
	c := NewCanvas(10, 3)
	c.Set(0, 0)
	c.Set(1, 3)
	if c.Grid[0][0] != brailleBlank|0x1|0x80 {
		t.Errorf("unexpected cell %U", c.Grid[0][0])
	}
	c.Set(-1, 0)
	c.Set(100, 100)

	c.Glyph(4, 4, '▲')
	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	if []rune(lines[1])[2] != '▲' {
		t.Errorf("glyph not rendered: %q", lines[1])
	}

	c.Clear()
	if strings.ContainsRune(c.String(), '▲') {
		t.Error("clear should drop glyphs")
	}
}

func TestCanvasDrawFrame(t *testing.T) {
	c := NewCanvas(40, 8)
	path := anim.Path(10)
	c.DrawFrame(path, len(path)-1, 20, '■')
	if !strings.ContainsRune(c.String(), '■') {
		t.Error("expected marker glyph on last frame")
	}

	c.DrawFrame(anim.Path(-2), 10, 20, '■')
	if strings.ContainsRune(c.String(), '■') {
		t.Error("marker outside the range should not be drawn")
	}
}
