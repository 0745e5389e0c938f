package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/HN67/runner/archetypes"
	"github.com/HN67/runner/components"
	"github.com/HN67/runner/grid"
	"github.com/HN67/runner/worldgen"
)

// CreateTerrain spawns the terrain singleton: an empty grid plus a generator
// whose placements materialize as block and coin entities in the world.
func CreateTerrain(ecs *ecs.ECS, genCfg worldgen.Config, scale int, rng worldgen.Source) *donburi.Entry {
	terrain := archetypes.Terrain.Spawn(ecs)

	g := grid.New(scale)
	components.Terrain.SetValue(terrain, components.TerrainData{
		Grid:      g,
		Generator: worldgen.New(genCfg, g, rng, &entityPlacer{ecs: ecs, grid: g}),
	})

	return terrain
}

// entityPlacer spawns and removes world entities on the generator's behalf.
type entityPlacer struct {
	ecs  *ecs.ECS
	grid *grid.Grid
}

func (p *entityPlacer) PlaceBlock(c grid.Coord) donburi.Entity {
	return CreateBlock(p.ecs, p.grid.RectOf(c)).Entity()
}

func (p *entityPlacer) PlaceCoin(c grid.Coord) {
	CreateCoin(p.ecs, p.grid.RectOf(c))
}

func (p *entityPlacer) RemoveBlock(e donburi.Entity) {
	if p.ecs.World.Valid(e) {
		p.ecs.World.Remove(e)
	}
}
