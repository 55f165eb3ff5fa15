package main

import (
	"flag"
	"os"

	"github.com/awall/delver/internal/config"
	"github.com/awall/delver/internal/game"
	"github.com/awall/delver/internal/logging"
	"github.com/awall/delver/internal/player"
	"github.com/awall/delver/internal/render"
	ebitenrender "github.com/awall/delver/internal/render/ebiten"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Command-line flags; all optional
	tuningPath := flag.String("tuning", "", "YAML tuning file to load and hot-reload")
	modeName := flag.String("mode", "axis-locked", "movement mode: axis-locked or face-cursor")
	debug := flag.Bool("debug", false, "enable debug logging and the overlay")
	logFile := flag.String("log", "", "write logs to this rolling file instead of stderr")
	flag.Parse()

	log := logging.New(logging.Options{File: *logFile, Debug: *debug})
	defer func() { _ = log.Sync() }()

	mode, err := player.ParseMode(*modeName)
	if err != nil {
		log.Errorw("startup failed", "error", err)
		return 1
	}

	cfg, err := config.Load(*tuningPath)
	if err != nil {
		log.Errorw("startup failed", "error", err)
		return 1
	}
	if *debug {
		cfg.Debug.Overlay = true
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	engine := ebitenrender.NewEngine()

	g := game.New(renderer, cfg, mode, log)

	if *tuningPath != "" {
		watcher, err := config.NewWatcher(*tuningPath)
		if err != nil {
			log.Warnw("tuning hot reload disabled", "error", err)
		} else {
			defer watcher.Close()
			g.WatchConfig(watcher)
			log.Infow("watching tuning", "path", watcher.Path())
		}
	}

	log.Infow("starting game",
		"title", cfg.Window.Title,
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
		"ups", cfg.Window.UPS,
		"mode", mode)

	err = engine.RunGame(g, render.WindowOptions{
		Title:        cfg.Window.Title,
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		Resizable:    cfg.Window.Resizable,
		UPS:          cfg.Window.UPS,
		ExitOnEscape: true,
	})
	if err != nil {
		log.Errorw("game loop terminated", "error", err)
		return 1
	}

	log.Infow("window closed")
	return 0
}
