package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/HN67/runner/components"
	cfg "github.com/HN67/runner/config"
	"github.com/HN67/runner/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Inventory,
		components.Sprite,
	)
	Block = newArchetype(
		tags.Block,
		components.Object,
		components.Sprite,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Collectable,
		components.Object,
		components.Sprite,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Terrain = newArchetype(
		components.Terrain,
	)
	Settings = newArchetype(
		components.Settings,
	)
	PickupEffect = newArchetype(
		components.Object,
		components.Sprite,
		components.ScaleTween,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
