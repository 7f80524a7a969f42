package entities

import (
	"image"

	"pacman/internal/input"
	"pacman/internal/render"
)

type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func DirDelta(d Direction) (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func keyDirection(k input.Key) Direction {
	switch k {
	case input.Up:
		return DirUp
	case input.Down:
		return DirDown
	case input.Left:
		return DirLeft
	case input.Right:
		return DirRight
	default:
		return DirNone
	}
}

// Player is the avatar. Row and Col are only changed by Commit; the
// horizontal and vertical velocities are independent, so holding two keys
// on different axes moves diagonally.
type Player struct {
	Row, Col       int
	VelRow, VelCol int
	Size           int

	intentRow, intentCol int
}

func NewPlayer(cellSize int) *Player {
	return &Player{Row: 1, Col: 1, Size: cellSize, intentRow: 1, intentCol: 1}
}

// ComputeIntention records and returns the cell the player would move to
// this tick.
func (p *Player) ComputeIntention() (row, col int) {
	p.intentRow = p.Row + p.VelRow
	p.intentCol = p.Col + p.VelCol
	return p.intentRow, p.intentCol
}

func (p *Player) Intention() (row, col int) {
	return p.intentRow, p.intentCol
}

// Commit moves the player to the last computed intention. Callers validate
// the intention first.
func (p *Player) Commit() {
	p.Row, p.Col = p.intentRow, p.intentCol
}

// Center is the pixel center of the committed cell, truncated to integers.
func (p *Player) Center(cellSize int) image.Point {
	half := cellSize / 2
	return image.Pt(p.Col*cellSize+half, p.Row*cellSize+half)
}

func (p *Player) Step() {
	p.ComputeIntention()
}

// HandleEvents applies key transitions in order. Releasing a key clears its
// whole axis, even when the opposite key is still held.
func (p *Player) HandleEvents(evts []input.Event) {
	for _, e := range evts {
		dx, dy := DirDelta(keyDirection(e.Key))
		switch e.Kind {
		case input.KeyDown:
			if dx != 0 {
				p.VelCol = dx
			}
			if dy != 0 {
				p.VelRow = dy
			}
		case input.KeyUp:
			if dx != 0 {
				p.VelCol = 0
			}
			if dy != 0 {
				p.VelRow = 0
			}
		}
	}
}

func (p *Player) Draw(r render.Renderer) {
	c := p.Center(p.Size)
	radius := p.Size / 2
	r.FillCircle(c, radius, render.Yellow)

	// mouth
	r.FillPolygon([]image.Point{
		c,
		{X: c.X + radius, Y: c.Y - radius},
		{X: c.X + radius, Y: c.Y},
	}, render.Black)

	eye := image.Pt(c.X+int(float64(radius)/8), c.Y-int(float64(radius)*0.65))
	r.FillCircle(eye, int(float64(radius)/6), render.Black)
}
