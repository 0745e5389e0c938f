package components

import (
	"github.com/yohamta/donburi"
)

// CollectableData marks an entity that is removed from the world on contact
// with the player, merging Loot into the player's inventory.
type CollectableData struct {
	Loot InventoryData
}

var Collectable = donburi.NewComponentType[CollectableData]()
