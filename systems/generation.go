package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/HN67/runner/components"
	cfg "github.com/HN67/runner/config"
	"github.com/HN67/runner/grid"
	"github.com/HN67/runner/tags"
)

// UpdateGeneration decides every tile the viewbox currently touches. Runs
// after the camera recenter so the decided region always covers the screen.
func UpdateGeneration(ecs *ecs.ECS) {
	settings := mustSettings(ecs)
	terrain := mustTerrain(ecs)
	camera := mustCamera(ecs)

	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionRegenerate).JustPressed {
		regenerate(ecs, terrain)
	}

	width := float64(settings.Window.Width)
	height := float64(settings.Window.Height)
	view := grid.Rect{
		X: camera.Position.X - width/2,
		Y: camera.Position.Y - height/2,
		W: width,
		H: height,
	}

	terrain.Generator.Visit(terrain.Grid.VisibleTiles(view))
}

// regenerate throws away the whole decided world: every block and coin
// entity is removed and the grid reset, so the next generation pass rerolls
// the visible region. The player keeps its position and inventory.
func regenerate(ecs *ecs.ECS, terrain *components.TerrainData) {
	var doomed []*donburi.Entry
	tags.Block.Each(ecs.World, func(e *donburi.Entry) {
		doomed = append(doomed, e)
	})
	tags.Coin.Each(ecs.World, func(e *donburi.Entry) {
		doomed = append(doomed, e)
	})
	for _, e := range doomed {
		e.Remove()
	}

	terrain.Grid.Clear()
}
