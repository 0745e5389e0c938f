// Package leveldata parses the authored spawn-area TMX. It has no
// dependencies on ebitengine or donburi, pure data only. The
// procedural generator takes over everywhere the authored area does not
// reach: solids parsed here are entered into the grid as decided tiles so
// they are never re-rolled.
package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// SolidRect is an authored solid rectangle in world pixels. Authored solids
// are aligned to the tile grid.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnArea holds everything parsed from the spawn TMX.
type SpawnArea struct {
	Solids []SolidRect
	// SpawnX, SpawnY position the player hitbox's top-left corner.
	SpawnX, SpawnY float64
}

// Load parses a spawn-area TMX from fsys. It expects a "Solids" object
// group and a "PlayerSpawn" object group with exactly one object.
func Load(fsys fs.FS, tmxPath string) (*SpawnArea, error) {
	areaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	area := &SpawnArea{}
	spawnFound := false

	for _, og := range areaMap.ObjectGroups {
		switch og.Name {
		case "Solids":
			for _, o := range og.Objects {
				area.Solids = append(area.Solids, SolidRect{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				if spawnFound {
					return nil, fmt.Errorf("load TMX %s: multiple player spawns", tmxPath)
				}
				area.SpawnX, area.SpawnY = o.X, o.Y
				spawnFound = true
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("load TMX %s: no player spawn defined", tmxPath)
	}
	return area, nil
}
