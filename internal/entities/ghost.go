package entities

import (
	"image"
	"image/color"

	"pacman/internal/input"
	"pacman/internal/render"
)

// Ghost is decorative: it sits at a fixed fractional grid position and never
// moves or collides.
type Ghost struct {
	Row, Col float64
	Color    color.RGBA
	Size     int
}

func NewGhost(c color.RGBA, cellSize int) *Ghost {
	return &Ghost{Row: 8, Col: 6, Color: c, Size: cellSize}
}

// Outline returns the ghost body polygon: a rounded head over a flat hem,
// one cell wide and one cell tall.
func (g *Ghost) Outline() []image.Point {
	side := g.Size / 8
	x := int(g.Col * float64(g.Size))
	y := int(g.Row * float64(g.Size))
	return []image.Point{
		{X: x, Y: y + g.Size},
		{X: x + side, Y: y + side*2},
		{X: x + side*2, Y: y + side/2},
		{X: x + side*3, Y: y},
		{X: x + side*5, Y: y},
		{X: x + side*6, Y: y + side/2},
		{X: x + side*7, Y: y + side*2},
		{X: x + g.Size, Y: y + g.Size},
	}
}

func (g *Ghost) Draw(r render.Renderer) {
	r.FillPolygon(g.Outline(), g.Color)
}

func (g *Ghost) Step() {}

func (g *Ghost) HandleEvents([]input.Event) {}
