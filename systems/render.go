package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/HN67/runner/assets"
	"github.com/HN67/runner/components"
	"github.com/HN67/runner/grid"
)

var drawOp = &ebiten.DrawImageOptions{}

// DrawWorld renders the decided terrain and every sprite entity, offset so
// the camera position lands at the center of the screen.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	camera := mustCamera(ecs)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	offsetX := float64(width)/2 - camera.Position.X
	offsetY := float64(height)/2 - camera.Position.Y

	drawTerrain(ecs, screen, offsetX, offsetY, width, height)
	drawSprites(ecs, screen, offsetX, offsetY, width, height)
}

// drawTerrain paints the decided space tiles. Block tiles are skipped here:
// blocks are entities and render in the sprite pass.
func drawTerrain(e *ecs.ECS, screen *ebiten.Image, offsetX, offsetY float64, width, height int) {
	terrain := mustTerrain(e)
	spaceImage := assets.Image(assets.ImageSpace)

	view := grid.Rect{X: -offsetX, Y: -offsetY, W: float64(width), H: float64(height)}
	for _, c := range terrain.Grid.VisibleTiles(view) {
		tile, err := terrain.Grid.Get(c)
		if err != nil || tile.Kind != grid.KindSpace {
			continue
		}
		rect := terrain.Grid.RectOf(c)

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(rect.X+offsetX, rect.Y+offsetY)
		screen.DrawImage(spaceImage, drawOp)
	}
}

// drawSprites renders every sprite centered on its hitbox. The hitbox is
// authoritative: a sprite larger than its hitbox overhangs it evenly.
func drawSprites(e *ecs.ECS, screen *ebiten.Image, offsetX, offsetY float64, width, height int) {
	// Culling bounds, padded so large sprites don't pop at the edges
	padding := 64.0
	minX, maxX := -offsetX-padding, -offsetX+float64(width)+padding
	minY, maxY := -offsetY-padding, -offsetY+float64(height)+padding

	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		rect := components.Object.Get(entry).Rect
		if rect.X+rect.W < minX || rect.X > maxX || rect.Y+rect.H < minY || rect.Y > maxY {
			return
		}

		img := assets.Image(components.Sprite.Get(entry).ImageKey)
		bounds := img.Bounds()

		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)

		if entry.HasComponent(components.ScaleTween) {
			effect := components.ScaleTween.Get(entry)
			drawOp.GeoM.Scale(effect.Scale, effect.Scale)
		}

		centerX, centerY := rect.Center()
		drawOp.GeoM.Translate(centerX+offsetX, centerY+offsetY)
		screen.DrawImage(img, drawOp)
	})
}
