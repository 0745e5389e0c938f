package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/HN67/runner/archetypes"
	"github.com/HN67/runner/assets"
	"github.com/HN67/runner/components"
	cfg "github.com/HN67/runner/config"
	"github.com/HN67/runner/grid"
)

// CreatePlayer spawns the player with its hitbox top-left corner at (x, y).
// The player starts with a full jump allowance so the first jump works
// before the first landing.
func CreatePlayer(ecs *ecs.ECS, p cfg.PlayerConfig, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Object.SetValue(player, components.ObjectData{
		Rect: grid.Rect{X: x, Y: y, W: p.CollisionWidth, H: p.CollisionHeight},
	})
	components.Player.SetValue(player, components.PlayerData{
		Direction:      components.Vector{X: 1, Y: 0},
		RemainingJumps: p.MaxJumps,
	})
	components.Physics.SetValue(player, components.PhysicsData{})
	components.Inventory.SetValue(player, components.NewInventory())
	components.Sprite.SetValue(player, components.SpriteData{ImageKey: assets.ImagePlayer})

	return player
}
