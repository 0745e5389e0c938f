package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/HN67/runner/archetypes"
	"github.com/HN67/runner/assets"
	"github.com/HN67/runner/components"
	"github.com/HN67/runner/grid"
)

// CreateBlock spawns a solid block filling the given tile rectangle.
func CreateBlock(ecs *ecs.ECS, rect grid.Rect) *donburi.Entry {
	block := archetypes.Block.Spawn(ecs)

	components.Object.SetValue(block, components.ObjectData{Rect: rect})
	components.Sprite.SetValue(block, components.SpriteData{ImageKey: assets.ImageBlock})

	return block
}
