package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/HN67/runner/components"
	cfg "github.com/HN67/runner/config"
	"github.com/HN67/runner/shared/gamemath"
	"github.com/HN67/runner/tags"
)

// UpdatePlayer integrates the input snapshot into player velocity. Position
// is not touched here; the collision system owns movement.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := mustSettings(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)

		moveLeft := GetAction(input, cfg.ActionMoveLeft)
		moveRight := GetAction(input, cfg.ActionMoveRight)
		jump := GetAction(input, cfg.ActionJump)

		handleMovementInput(moveLeft, moveRight, player, physics, &settings.Player)
		handleJumpInput(jump, player, physics, &settings.Player)
	})
}

// handleMovementInput steps horizontal speed toward the held direction's
// max speed, or back toward zero when no (or both) directions are held.
// A single rate covers acceleration and deceleration.
func handleMovementInput(moveLeft, moveRight components.ActionState, player *components.PlayerData, physics *components.PhysicsData, p *cfg.PlayerConfig) {
	var target float64
	switch {
	case moveLeft.Pressed && !moveRight.Pressed:
		target = -p.MaxSpeed
		player.Direction.X = -1
	case moveRight.Pressed && !moveLeft.Pressed:
		target = p.MaxSpeed
		player.Direction.X = 1
	}

	physics.SpeedX = gamemath.Approach(physics.SpeedX, target, p.Acceleration)
}

// handleJumpInput spends one jump on the press edge. Holding the button does
// not repeat; remaining jumps are replenished only by a landing, so airborne
// presses consume the multi-jump allowance.
func handleJumpInput(jump components.ActionState, player *components.PlayerData, physics *components.PhysicsData, p *cfg.PlayerConfig) {
	if !jump.JustPressed {
		return
	}
	if player.RemainingJumps <= 0 {
		return
	}
	physics.SpeedY = -p.JumpImpulse
	player.RemainingJumps--
}
