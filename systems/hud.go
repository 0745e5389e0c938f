package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"

	"github.com/HN67/runner/components"
	"github.com/HN67/runner/fonts"
	"github.com/HN67/runner/tags"
)

const hudMargin = 10

// DrawHUD renders the coin counter in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	inventory := components.Inventory.Get(playerEntry)

	face := fonts.HUD.Get()
	label := fmt.Sprintf("Coins: %d", inventory.Count(components.ItemCoin))
	text.Draw(screen, label, face, hudMargin, hudMargin+face.Metrics().Ascent.Ceil(), color.White)
}
