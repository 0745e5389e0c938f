package components

import (
	"github.com/yohamta/donburi"

	"github.com/HN67/runner/grid"
)

// ObjectData holds the entity's hitbox in world pixel space. The hitbox is
// authoritative; sprites are re-derived from its center every frame.
type ObjectData struct {
	Rect grid.Rect
}

var Object = donburi.NewComponentType[ObjectData]()
