// Package render defines the drawing surface the game draws onto and an
// ebiten-backed implementation of it.
package render

import (
	"image"
	"image/color"
)

// Renderer receives drawing primitives in integer pixel coordinates. It owns
// no game rules and is never read back from.
type Renderer interface {
	Clear(c color.RGBA)
	FillRect(r image.Rectangle, c color.RGBA)
	FillCircle(center image.Point, radius int, c color.RGBA)
	FillPolygon(points []image.Point, c color.RGBA)
	Text(s string, at image.Point, c color.RGBA)
	// Present marks the end of a frame.
	Present()
}

var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Blue   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)
