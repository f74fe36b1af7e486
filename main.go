package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/quizplatformer/common"
	"github.com/milk9111/quizplatformer/levels"
	"github.com/milk9111/quizplatformer/scores"
)

func main() {
	debug := flag.Bool("debug", false, "draw physics shapes and actor state")
	level := flag.Int("level", 0, "level id to start on (0 = start menu)")
	watch := flag.Bool("watch", false, "reload prefabs from disk when they change")
	seed := flag.Int64("seed", 0, "random seed for enemy tuning (0 = time based)")
	art := flag.String("art", "", "directory of <kind>_<state>_<index>.png frames")
	scoresPath := flag.String("scores", scores.DefaultPath(), "results file (empty = do not save)")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("quizplatformer")

	game, err := NewGame(Options{
		Level:  *level,
		Debug:  *debug,
		Watch:  *watch,
		Seed:   *seed,
		Art:    *art,
		Scores: *scoresPath,
	})
	var missing *levels.MissingLevelError
	if errors.As(err, &missing) {
		log.Printf("game: %v", err)
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()
	ebiten.SetTPS(game.tps())

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
