package main

import (
	"os"

	"tileplay"
)

func main() {
	log := tileplay.NewLogger("tileplay.log")
	defer log.Sync()

	cfg := tileplay.DefaultConfig()

	scene, err := tileplay.LoadScene(cfg, log)
	if err != nil {
		log.Errorw("load failed", "error", err)
		log.Sync()
		os.Exit(1)
	}

	game := tileplay.NewGame(scene, cfg.Title, cfg.WindowWidth, cfg.WindowHeight)
	if err := game.Run(); err != nil {
		log.Errorw("game loop failed", "error", err)
		log.Sync()
		os.Exit(1)
	}
}
