package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/HN67/runner/components"
	"github.com/HN67/runner/systems/factory"
	"github.com/HN67/runner/tags"
)

// UpdatePickups collects every coin the player overlaps: the coin's loot is
// merged into the player inventory and the coin entity is removed, leaving a
// short scale-out effect in its place.
func UpdatePickups(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerRect := components.Object.Get(playerEntry).Rect
	inventory := components.Inventory.Get(playerEntry)

	var collected []*donburi.Entry
	tags.Coin.Each(ecs.World, func(e *donburi.Entry) {
		if playerRect.Overlaps(components.Object.Get(e).Rect) {
			collected = append(collected, e)
		}
	})

	for _, e := range collected {
		loot := components.Collectable.Get(e)
		inventory.MergeFrom(loot.Loot)

		rect := components.Object.Get(e).Rect
		imageKey := components.Sprite.Get(e).ImageKey
		e.Remove()

		factory.CreatePickupEffect(ecs, rect, imageKey)
	}
}
