package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/HN67/runner/config"
	"github.com/HN67/runner/fonts"
	"github.com/HN67/runner/scenes"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	config config.Config
	scene  Scene
}

func NewGame(cfg config.Config, seed int64) *Game {
	fonts.Load()

	return &Game{
		config: cfg,
		scene:  scenes.NewRunnerScene(cfg, seed),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.config.Window.Width, g.config.Window.Height
}

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "world generation seed")
	flag.Parse()

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	log.Printf("World seed: %d", *seed)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(NewGame(cfg, *seed)); err != nil {
		log.Fatal(err)
	}
}
