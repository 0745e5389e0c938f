package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/HN67/runner/archetypes"
	"github.com/HN67/runner/assets"
	"github.com/HN67/runner/components"
	"github.com/HN67/runner/grid"
)

// CreateCoin spawns a collectable coin occupying the given tile rectangle.
// The hitbox is the full tile so touching any part of the tile collects it;
// the rendered coin is smaller and centered.
func CreateCoin(ecs *ecs.ECS, rect grid.Rect) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)

	components.Object.SetValue(coin, components.ObjectData{Rect: rect})
	components.Sprite.SetValue(coin, components.SpriteData{ImageKey: assets.ImageCoin})

	loot := components.NewInventory()
	loot.Add(components.ItemCoin, 1)
	components.Collectable.SetValue(coin, components.CollectableData{Loot: loot})

	return coin
}
