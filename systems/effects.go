package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/HN67/runner/components"
)

// UpdateEffects advances scale tweens and destroys finished effect entities.
func UpdateEffects(ecs *ecs.ECS) {
	settings := mustSettings(ecs)
	dt := float32(1) / float32(settings.TPS)

	var toDestroy []*donburi.Entry
	components.ScaleTween.Each(ecs.World, func(e *donburi.Entry) {
		effect := components.ScaleTween.Get(e)
		scale, done := effect.Tween.Update(dt)
		effect.Scale = float64(scale)
		if done {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}
