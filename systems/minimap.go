package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/HN67/runner/grid"
)

var (
	minimapBackdrop = color.RGBA{0, 0, 0, 160}
	minimapBlock    = color.RGBA{170, 120, 70, 255}
	minimapSpace    = color.RGBA{60, 60, 60, 255}
	minimapPlayer   = color.RGBA{220, 60, 60, 255}
)

// DrawMinimap renders a tile-per-pixel-block overview of the decided world
// around the camera in the top-right corner. Undecided tiles show through as
// backdrop, which makes the generation frontier visible.
func DrawMinimap(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := mustSettings(ecs)
	terrain := mustTerrain(ecs)
	camera := mustCamera(ecs)

	mm := settings.Minimap
	size := (2*mm.ViewTiles + 1) * mm.TilePixels
	originX := float32(settings.Window.Width - mm.Margin - size)
	originY := float32(mm.Margin)

	vector.DrawFilledRect(screen, originX, originY, float32(size), float32(size), minimapBackdrop, false)

	center := terrain.Grid.IndexOf(camera.Position.X, camera.Position.Y)
	for row := -mm.ViewTiles; row <= mm.ViewTiles; row++ {
		for column := -mm.ViewTiles; column <= mm.ViewTiles; column++ {
			tile, err := terrain.Grid.Get(grid.Coord{
				Column: center.Column + column,
				Row:    center.Row + row,
			})
			if err != nil {
				continue
			}

			tileColor := minimapSpace
			if tile.Kind == grid.KindBlock {
				tileColor = minimapBlock
			}
			vector.DrawFilledRect(screen,
				originX+float32((column+mm.ViewTiles)*mm.TilePixels),
				originY+float32((row+mm.ViewTiles)*mm.TilePixels),
				float32(mm.TilePixels), float32(mm.TilePixels),
				tileColor, false)
		}
	}

	// Player marker at the center cell
	vector.DrawFilledRect(screen,
		originX+float32(mm.ViewTiles*mm.TilePixels),
		originY+float32(mm.ViewTiles*mm.TilePixels),
		float32(mm.TilePixels), float32(mm.TilePixels),
		minimapPlayer, false)
}
