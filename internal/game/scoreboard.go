package game

import (
	"fmt"
	"image"

	"pacman/internal/input"
	"pacman/internal/render"
)

// scoreboard draws the score to the right of the maze.
type scoreboard struct {
	game     *Game
	cellSize int
}

func (s *scoreboard) origin() image.Point {
	return image.Pt(s.cellSize*(s.game.tileMap.Cols()+2), 50)
}

func (s *scoreboard) Draw(r render.Renderer) {
	r.Text(fmt.Sprintf("Score: %d", s.game.score), s.origin(), render.Yellow)
}

func (s *scoreboard) Step() {}

func (s *scoreboard) HandleEvents([]input.Event) {}
