// Package assets supplies image handles by string key and embeds the
// authored spawn area. Sprites are generated at load time: the game's look
// is flat-shaded tiles, so there is nothing to decode from disk.
package assets

import (
	"embed"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

//go:embed all:levels
var LevelFS embed.FS

// SpawnAreaPath is the authored spawn-area TMX inside LevelFS.
const SpawnAreaPath = "levels/spawn.tmx"

// Image keys known to the renderer.
const (
	ImageBlock  = "block"
	ImagePlayer = "player"
	ImageCoin   = "coin"
	ImageSpace  = "space"
)

var images map[string]*ebiten.Image

// Load builds the sprite images. Must be called once, after ebiten is
// running, before any Image lookup. Scale is the tile side in pixels.
func Load(scale int) {
	s := float64(scale)

	block := ebiten.NewImage(scale, scale)
	block.Fill(color.RGBA{R: 110, G: 80, B: 48, A: 255})
	// Light top face so stacked blocks read as separate tiles.
	vector.DrawFilledRect(block, 0, 0, float32(s), 3, color.RGBA{R: 140, G: 105, B: 70, A: 255}, false)

	space := ebiten.NewImage(scale, scale)
	space.Fill(color.RGBA{R: 31, G: 31, B: 31, A: 255})

	player := ebiten.NewImage(24, 24)
	player.Fill(color.RGBA{R: 64, G: 128, B: 220, A: 255})

	coin := ebiten.NewImage(16, 16)
	vector.DrawFilledCircle(coin, 8, 8, 7, color.RGBA{R: 230, G: 190, B: 40, A: 255}, true)
	vector.DrawFilledCircle(coin, 8, 8, 4, color.RGBA{R: 250, G: 220, B: 90, A: 255}, true)

	images = map[string]*ebiten.Image{
		ImageBlock:  block,
		ImageSpace:  space,
		ImagePlayer: player,
		ImageCoin:   coin,
	}
}

// Image returns the handle for key. Unknown keys are a programmer error.
func Image(key string) *ebiten.Image {
	img, ok := images[key]
	if !ok {
		panic(fmt.Sprintf("image %q not loaded", key))
	}
	return img
}
