package systems

import (
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/HN67/runner/archetypes"
	"github.com/HN67/runner/components"
	cfg "github.com/HN67/runner/config"
	"github.com/HN67/runner/grid"
	"github.com/HN67/runner/systems/factory"
	"github.com/HN67/runner/worldgen"
)

// newTestECS builds a world with the default settings, an empty terrain, and
// a camera at the origin. Generation densities are zeroed so visited tiles
// always decide as empty space unless a test places blocks itself.
func newTestECS() *ecs.ECS {
	config := cfg.Default()

	e := ecs.NewECS(donburi.NewWorld())
	settings := archetypes.Settings.Spawn(e)
	components.Settings.SetValue(settings, components.SettingsData{Config: config})

	factory.CreateTerrain(e, worldgen.Config{}, config.Tiles.Scale, rand.New(rand.NewSource(1)))
	factory.CreateCamera(e, 0, 0)

	return e
}

// placeBlock decides a tile as a solid block, entity included.
func placeBlock(e *ecs.ECS, c grid.Coord) {
	terrain := mustTerrain(e)
	block := factory.CreateBlock(e, terrain.Grid.RectOf(c))
	terrain.Grid.Set(c, grid.Tile{Kind: grid.KindBlock, Entity: block.Entity()})
}

// spawnPlayer creates a player with its hitbox top-left at (x, y).
func spawnPlayer(e *ecs.ECS, x, y float64) *donburi.Entry {
	return factory.CreatePlayer(e, mustSettings(e).Player, x, y)
}

// press advances the input singleton one frame with only the given actions
// held, so Just* edges behave as they would across real frames.
func press(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}
