package components

import (
	"github.com/yohamta/donburi"

	"github.com/HN67/runner/grid"
	"github.com/HN67/runner/worldgen"
)

// TerrainData is the singleton world state: the sparse tile grid and the
// generator that fills it as the camera moves.
type TerrainData struct {
	Grid      *grid.Grid
	Generator *worldgen.Generator
}

var Terrain = donburi.NewComponentType[TerrainData]()
