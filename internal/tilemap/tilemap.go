package tilemap

import (
	"errors"
	"fmt"
	"image"

	"pacman/internal/input"
	"pacman/internal/render"
)

type Cell int

const (
	CellEmpty Cell = iota
	CellWall
	CellPellet
)

// TileMap is the maze grid. Its dimensions are fixed at construction; only
// pellet cells change, and only to CellEmpty.
type TileMap struct {
	rows     int
	cols     int
	cellSize int
	cells    [][]Cell
}

// New parses a layout where '#' is a wall, '.' a pellet and any other byte an
// empty cell. Every row must have the same length.
func New(layout []string, cellSize int) (*TileMap, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("tilemap: cell size must be positive, got %d", cellSize)
	}
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, errors.New("tilemap: empty layout")
	}
	cols := len(layout[0])
	cells := make([][]Cell, len(layout))
	for row, line := range layout {
		if len(line) != cols {
			return nil, fmt.Errorf("tilemap: row %d has %d columns, want %d", row, len(line), cols)
		}
		cells[row] = make([]Cell, cols)
		for col := 0; col < cols; col++ {
			switch line[col] {
			case '#':
				cells[row][col] = CellWall
			case '.':
				cells[row][col] = CellPellet
			default:
				cells[row][col] = CellEmpty
			}
		}
	}
	return &TileMap{rows: len(layout), cols: cols, cellSize: cellSize, cells: cells}, nil
}

// NewDefaultMap builds the embedded reference maze.
func NewDefaultMap(cellSize int) (*TileMap, error) {
	return New(defaultMaze, cellSize)
}

func (m *TileMap) Rows() int     { return m.rows }
func (m *TileMap) Cols() int     { return m.cols }
func (m *TileMap) CellSize() int { return m.cellSize }

func (m *TileMap) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// Cell reports the cell at (row, col); ok is false outside the grid.
func (m *TileMap) Cell(row, col int) (c Cell, ok bool) {
	if !m.inBounds(row, col) {
		return CellWall, false
	}
	return m.cells[row][col], true
}

// IsPassable fails closed: anything outside the grid counts as blocked.
func (m *TileMap) IsPassable(row, col int) bool {
	return m.inBounds(row, col) && m.cells[row][col] != CellWall
}

// ConsumeIfPellet empties a pellet cell and reports whether it held one.
func (m *TileMap) ConsumeIfPellet(row, col int) bool {
	if !m.inBounds(row, col) || m.cells[row][col] != CellPellet {
		return false
	}
	m.cells[row][col] = CellEmpty
	return true
}

func (m *TileMap) PelletCount() int {
	n := 0
	for _, line := range m.cells {
		for _, c := range line {
			if c == CellPellet {
				n++
			}
		}
	}
	return n
}

// CellRect returns the pixel rectangle covered by (row, col).
func (m *TileMap) CellRect(row, col int) image.Rectangle {
	return CellRect(row, col, m.cellSize)
}

func CellRect(row, col, cellSize int) image.Rectangle {
	origin := image.Pt(col*cellSize, row*cellSize)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(cellSize, cellSize))}
}

// Draw paints every cell in row-major order: walls blue, the rest black, with
// a small white dot on pellets.
func (m *TileMap) Draw(r render.Renderer) {
	half := m.cellSize / 2
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			rect := m.CellRect(row, col)
			c := m.cells[row][col]
			fill := render.Black
			if c == CellWall {
				fill = render.Blue
			}
			r.FillRect(rect, fill)
			if c == CellPellet {
				r.FillCircle(rect.Min.Add(image.Pt(half, half)), m.cellSize/10, render.White)
			}
		}
	}
}

// Step is a no-op: the maze itself never moves.
func (m *TileMap) Step() {}

func (m *TileMap) HandleEvents([]input.Event) {}
