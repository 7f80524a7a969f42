package game

import (
	"log"

	"pacman/internal/config"
	"pacman/internal/entities"
	"pacman/internal/input"
	"pacman/internal/render"
	tm "pacman/internal/tilemap"
)

type RunState int

const (
	Running RunState = iota
	Quit
)

// Element is anything the loop moves, draws and feeds input to.
type Element interface {
	Draw(r render.Renderer)
	Step()
	HandleEvents(evts []input.Event)
}

// Game owns all play state and runs one tick at a time on a single goroutine.
type Game struct {
	tileMap  *tm.TileMap
	player   *entities.Player
	ghost    *entities.Ghost
	elements []Element

	score       int
	state       RunState
	tickCounter int

	renderer render.Renderer
	input    input.Source
}

func New(cfg config.Config, r render.Renderer, in input.Source) (*Game, error) {
	m, err := tm.NewDefaultMap(cfg.CellSize)
	if err != nil {
		return nil, err
	}
	g := &Game{
		tileMap:  m,
		player:   entities.NewPlayer(cfg.CellSize),
		ghost:    entities.NewGhost(render.Red, cfg.CellSize),
		renderer: r,
		input:    in,
	}
	// Draw order: maze, score, avatar, ghost.
	g.elements = []Element{
		g.tileMap,
		&scoreboard{game: g, cellSize: cfg.CellSize},
		g.player,
		g.ghost,
	}
	return g, nil
}

func (g *Game) Score() int      { return g.score }
func (g *Game) State() RunState { return g.state }

// Tick runs one frame: move, draw, then drain input. Once Quit has been
// observed further ticks do nothing. Pacing between ticks belongs to the
// caller.
func (g *Game) Tick() RunState {
	if g.state == Quit {
		return g.state
	}
	g.tickCounter++
	g.step()
	g.draw()
	g.handleEvents(g.input.Poll())
	return g.state
}

func (g *Game) step() {
	for _, e := range g.elements {
		e.Step()
	}
	row, col := g.player.Intention()
	if !g.tileMap.IsPassable(row, col) {
		// Velocity is kept, so the move is retried next tick.
		return
	}
	g.player.Commit()
	if g.tileMap.ConsumeIfPellet(row, col) {
		g.score++
	}
}

func (g *Game) draw() {
	g.renderer.Clear(render.Black)
	for _, e := range g.elements {
		e.Draw(g.renderer)
	}
	g.renderer.Present()
}

func (g *Game) handleEvents(evts []input.Event) {
	for _, e := range evts {
		if e.Kind == input.Quit {
			log.Printf("[game] quit after %d ticks, score %d", g.tickCounter, g.score)
			g.state = Quit
			return
		}
	}
	for _, e := range g.elements {
		e.HandleEvents(evts)
	}
}
