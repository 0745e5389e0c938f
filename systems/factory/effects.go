package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/HN67/runner/archetypes"
	"github.com/HN67/runner/components"
	"github.com/HN67/runner/grid"
)

// pickupEffectSeconds is how long the scale-out flash lives.
const pickupEffectSeconds = 0.25

// CreatePickupEffect spawns a short-lived copy of a collected sprite that
// scales outward and is destroyed when its tween finishes.
func CreatePickupEffect(ecs *ecs.ECS, rect grid.Rect, imageKey string) *donburi.Entry {
	effect := archetypes.PickupEffect.Spawn(ecs)

	components.Object.SetValue(effect, components.ObjectData{Rect: rect})
	components.Sprite.SetValue(effect, components.SpriteData{ImageKey: imageKey})
	components.ScaleTween.SetValue(effect, components.ScaleTweenData{
		Tween: gween.New(1, 2, pickupEffectSeconds, ease.OutQuad),
		Scale: 1,
	})

	return effect
}
