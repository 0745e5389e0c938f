package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/HN67/runner/archetypes"
	"github.com/HN67/runner/components"
)

// CreateCamera spawns the camera centered at (x, y).
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: dmath.Vec2{X: x, Y: y},
	})
	return camera
}
