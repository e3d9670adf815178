package render

import (
	"image"
	"image/gif"
	"io"
)

// DefaultFPS matches the frame rate of the browser animation.
const DefaultFPS = 20

// Delay converts a frame rate into the GIF delay unit (1/100 s).
func Delay(fps int) int {
	if fps <= 0 {
		fps = DefaultFPS
	}
	d := 100 / fps
	if d < 1 {
		d = 1
	}
	return d
}

// EncodeGIF writes frames as an endlessly looping animation.
func EncodeGIF(w io.Writer, frames []*image.Paletted, fps int) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	delay := Delay(fps)
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}
