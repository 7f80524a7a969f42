package main

import (
	"flag"
	"log"

	"pacman/internal/config"
	"pacman/internal/game"

	_ "github.com/ebitengine/hideconsole"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfgPath := flag.String("config", "", "path to a TOML config file (default: $PACMAN_CONFIG_DIR/config.toml)")
	flag.Parse()

	cfg, src, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if src != "" {
		log.Printf("[config] loaded %s", src)
	}

	app, err := game.NewApp(cfg)
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowSize(app.ScreenWidth(), app.ScreenHeight())
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TPS())
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
