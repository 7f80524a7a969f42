package game

import (
	"fmt"

	"pacman/internal/config"
	"pacman/internal/input"
	"pacman/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// App adapts Game to ebiten. ebiten calls Update at the configured TPS, which
// provides the fixed pause between ticks; Draw replays the frame the last
// tick recorded.
type App struct {
	game   *Game
	canvas *render.Canvas
	cfg    config.Config
}

func NewApp(cfg config.Config) (*App, error) {
	canvas, err := render.NewCanvas(cfg.FontSize)
	if err != nil {
		return nil, err
	}
	g, err := New(cfg, canvas, input.NewKeyboard())
	if err != nil {
		return nil, err
	}
	return &App{game: g, canvas: canvas, cfg: cfg}, nil
}

func (a *App) ScreenWidth() int  { return a.cfg.ScreenWidth }
func (a *App) ScreenHeight() int { return a.cfg.ScreenHeight }

func (a *App) Update() error {
	if a.game.Tick() == Quit {
		return ebiten.Termination
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.canvas.Draw(screen)
	if a.cfg.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.1f  FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return a.ScreenWidth(), a.ScreenHeight()
}
