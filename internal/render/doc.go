// Package render draws flight animations.
//
// The package turns the frames produced by package anim into pictures:
//
//   - [Renderer]: rasterises frames onto a fixed plot (x in metres, y hidden)
//     and encodes them as a looping GIF
//   - [PathSVG]: static SVG of the whole path
//   - [Canvas]: Braille-based canvas for terminal playback
//
// Markers follow the plane: wing length picks the colour, body length the
// size and shape the glyph (see [StyleFor]).
package render
