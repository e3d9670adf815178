// Package anim maps a flight distance onto the frames of its animation.
//
// Frame f of [FrameCount] sits at
//
//	x = min(f * distance/FrameCount, distance)
//	y = 0.5 * sin(f/10)
//
// so the marker drifts right until it reaches the distance while bobbing
// on a wave whose shape does not depend on the flight.
package anim

import "math"

const (
	// FrameCount is the number of frames in one animation.
	FrameCount = 50

	// Amplitude of the vertical wave.
	Amplitude = 0.5
	// WavePeriod divides the frame index before taking the sine.
	WavePeriod = 10.0
)

type Point struct {
	X, Y float64
}

// Frame is one sample of the path.
type Frame struct {
	Index int
	Point
}

// Position returns the marker position at frame for a flight of distance.
func Position(frame int, distance float64) Point {
	d := (distance / FrameCount) * float64(frame)
	return Point{
		X: math.Min(d, distance),
		Y: math.Sin(float64(frame)/WavePeriod) * Amplitude,
	}
}

// Path returns the FrameCount frames of a flight in index order. Every
// call builds a new slice.
func Path(distance float64) []Frame {
	frames := make([]Frame, FrameCount)
	for i := range frames {
		frames[i] = Frame{Index: i, Point: Position(i, distance)}
	}
	return frames
}

// Points strips the frame indices from a path.
func Points(frames []Frame) []Point {
	pts := make([]Point, len(frames))
	for i, f := range frames {
		pts[i] = f.Point
	}
	return pts
}
