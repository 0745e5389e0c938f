package systems

import (
	"testing"

	"github.com/HN67/runner/components"
	cfg "github.com/HN67/runner/config"
)

func TestMovementAcceleration(t *testing.T) {
	e := newTestECS()
	player := spawnPlayer(e, 0, 0)
	physics := components.Physics.Get(player)

	// One step per tick, capped at max speed, never overshooting.
	wantSpeeds := []float64{1, 2, 3, 4, 5, 6, 7, 7}
	for i, want := range wantSpeeds {
		press(e, cfg.ActionMoveRight)
		UpdatePlayer(e)
		if physics.SpeedX != want {
			t.Fatalf("tick %d: horizontal speed = %v, want %v", i, physics.SpeedX, want)
		}
	}
}

func TestMovementDeceleration(t *testing.T) {
	tests := []struct {
		name    string
		actions []cfg.ActionID
	}{
		{"no direction held", nil},
		{"both directions held", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS()
			player := spawnPlayer(e, 0, 0)
			physics := components.Physics.Get(player)
			physics.SpeedX = 3

			wantSpeeds := []float64{2, 1, 0, 0}
			for i, want := range wantSpeeds {
				press(e, tt.actions...)
				UpdatePlayer(e)
				if physics.SpeedX != want {
					t.Fatalf("tick %d: horizontal speed = %v, want %v", i, physics.SpeedX, want)
				}
			}
		})
	}
}

func TestMovementSetsFacingDirection(t *testing.T) {
	e := newTestECS()
	player := spawnPlayer(e, 0, 0)
	playerData := components.Player.Get(player)

	press(e, cfg.ActionMoveLeft)
	UpdatePlayer(e)
	if playerData.Direction.X != -1 {
		t.Errorf("facing = %v, want -1", playerData.Direction.X)
	}

	press(e, cfg.ActionMoveRight)
	UpdatePlayer(e)
	if playerData.Direction.X != 1 {
		t.Errorf("facing = %v, want 1", playerData.Direction.X)
	}
}

func TestJumpConsumesAllowanceOnPressEdge(t *testing.T) {
	e := newTestECS()
	player := spawnPlayer(e, 0, 0)
	physics := components.Physics.Get(player)
	playerData := components.Player.Get(player)

	press(e, cfg.ActionJump)
	UpdatePlayer(e)
	if physics.SpeedY != -15 {
		t.Fatalf("vertical speed = %v, want -15", physics.SpeedY)
	}
	if playerData.RemainingJumps != 1 {
		t.Fatalf("remaining jumps = %d, want 1", playerData.RemainingJumps)
	}

	// Holding the button is not a new press.
	physics.SpeedY = 5
	press(e, cfg.ActionJump)
	UpdatePlayer(e)
	if physics.SpeedY != 5 {
		t.Fatalf("held jump re-fired: vertical speed = %v", physics.SpeedY)
	}

	// Release and press again: the second (air) jump.
	press(e)
	UpdatePlayer(e)
	press(e, cfg.ActionJump)
	UpdatePlayer(e)
	if physics.SpeedY != -15 {
		t.Fatalf("second jump: vertical speed = %v, want -15", physics.SpeedY)
	}
	if playerData.RemainingJumps != 0 {
		t.Fatalf("remaining jumps = %d, want 0", playerData.RemainingJumps)
	}

	// Allowance exhausted: further presses do nothing until a landing.
	physics.SpeedY = 5
	press(e)
	UpdatePlayer(e)
	press(e, cfg.ActionJump)
	UpdatePlayer(e)
	if physics.SpeedY != 5 {
		t.Fatalf("jump fired with empty allowance: vertical speed = %v", physics.SpeedY)
	}
}

func TestGravityClampsToTerminalSpeed(t *testing.T) {
	e := newTestECS()
	player := spawnPlayer(e, 0, 0)
	physics := components.Physics.Get(player)

	for i := 0; i < 30; i++ {
		UpdatePhysics(e)
	}
	if physics.SpeedY != 16 {
		t.Errorf("fall speed = %v, want terminal 16", physics.SpeedY)
	}
}

func TestJumpInterruptsFall(t *testing.T) {
	// An air jump replaces downward speed outright rather than adding to it.
	e := newTestECS()
	player := spawnPlayer(e, 0, 0)
	physics := components.Physics.Get(player)
	physics.SpeedY = 16

	press(e, cfg.ActionJump)
	UpdatePlayer(e)
	if physics.SpeedY != -15 {
		t.Errorf("vertical speed = %v, want -15", physics.SpeedY)
	}
}
