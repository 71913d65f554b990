package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fireworks/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode: overlay, debug logs and tuning hot reload")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	showName := flag.String("show", "", "autoplay script in prefabs/scripts/ (basename, .tengo optional)")
	flag.Parse()

	logger, err := common.NewLogger(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("fireworks")

	game, err := NewGame(GameOptions{
		Debug: *debug,
		Seed:  *seed,
		Show:  *showName,
		Log:   logger,
	})
	if err != nil {
		logger.Fatalw("start-up failed", "error", err)
	}
	defer func() { _ = game.Close() }()

	if err := ebiten.RunGame(game); err != nil {
		logger.Errorw("game exited", "error", err)
	}
}
