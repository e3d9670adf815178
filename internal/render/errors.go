package render

import "errors"

var (
	// ErrNoFrames indicates an attempt to encode an empty animation.
	ErrNoFrames = errors.New("render: no frames to encode")

	// ErrBadGeometry indicates a plot with no drawable area.
	ErrBadGeometry = errors.New("render: plot size leaves no drawable area")
)
