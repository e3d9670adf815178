package render

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var labelFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// imageDisplay lets tinyfont draw straight into a paletted frame.
type imageDisplay struct {
	img *image.Paletted
}

var _ drivers.Displayer = imageDisplay{}

func (d imageDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d imageDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.img.Set(int(x), int(y), c)
}

func (d imageDisplay) Display() error { return nil }

// drawText writes s with its baseline at y.
func drawText(img *image.Paletted, x, y int, s string, c color.RGBA) {
	tinyfont.WriteLine(imageDisplay{img: img}, labelFont, int16(x), int16(y), s, c)
}

func drawTextCentered(img *image.Paletted, cx, y int, s string, c color.RGBA) {
	drawText(img, cx-textWidth(s)/2, y, s, c)
}

func textWidth(s string) int {
	_, w := tinyfont.LineWidth(labelFont, s)
	return int(w)
}
