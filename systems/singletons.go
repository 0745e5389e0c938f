package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/HN67/runner/components"
)

// The settings, terrain and camera entities are created once by the scene
// before any system runs; a missing singleton is a wiring bug, not a
// recoverable condition.

func mustSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		panic("settings entity not created")
	}
	return components.Settings.Get(entry)
}

func mustTerrain(ecs *ecs.ECS) *components.TerrainData {
	entry, ok := components.Terrain.First(ecs.World)
	if !ok {
		panic("terrain entity not created")
	}
	return components.Terrain.Get(entry)
}

func mustCamera(ecs *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		panic("camera entity not created")
	}
	return components.Camera.Get(entry)
}
