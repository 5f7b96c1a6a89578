package main

import (
	"log"

	"github.com/Calverly/Grid-Tactics/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ebiten.SetWindowTitle("Grid Tactics")
	ebiten.SetWindowSize(988, 560)
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
