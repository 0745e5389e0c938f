package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/HN67/runner/components"
)

// UpdatePhysics applies gravity to every moving body, clamped to the
// terminal fall speed. Upward speed is not clamped; the jump impulse is the
// only source of it and is already bounded.
func UpdatePhysics(ecs *ecs.ECS) {
	settings := mustSettings(ecs)

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		physics.SpeedY += settings.Player.Gravity
		if physics.SpeedY > settings.Player.MaxFallSpeed {
			physics.SpeedY = settings.Player.MaxFallSpeed
		}
	})
}
