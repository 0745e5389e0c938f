package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/HN67/runner/components"
	"github.com/HN67/runner/tags"
)

// UpdateCamera recenters the camera on the player hitbox. The recenter is
// exact, not smoothed: generation keys off the camera, and a lagging camera
// would let the player outrun the decided region.
func UpdateCamera(ecs *ecs.ECS) {
	camera := mustCamera(ecs)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	object := components.Object.Get(playerEntry)

	camera.Position.X, camera.Position.Y = object.Rect.Center()
}
