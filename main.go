package main

import (
	"flag"

	"raycaster/internal/bootstrap"
	"raycaster/internal/game"
	"raycaster/internal/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "config.yaml", "configuration file; the built-in defaults are used when it does not exist")
	mapPath := flag.String("map", "", "level file, overrides world.map_file")
	flag.Parse()

	if err := run(*configPath, *mapPath); err != nil {
		logger.Log.WithError(err).Fatal("raycaster stopped")
	}
}

func run(configPath, mapPath string) error {
	rt, err := bootstrap.Load(bootstrap.Options{ConfigPath: configPath, MapPath: mapPath})
	if err != nil {
		return err
	}
	defer rt.Close()

	// Set window properties from config
	cfg := rt.Config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.Display.TPS)

	g := game.NewGame(rt)
	defer g.Close()

	return ebiten.RunGame(g)
}
