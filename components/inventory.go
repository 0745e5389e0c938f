package components

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// ErrInsufficient is returned by Take when the inventory holds fewer items
// than requested. The inventory is left unchanged.
var ErrInsufficient = fmt.Errorf("insufficient items")

// ItemCoin is the inventory key coins are counted under.
const ItemCoin = "coin"

// InventoryData maps item names to held quantities. An absent key means
// quantity zero; stored quantities are never negative.
type InventoryData struct {
	Items map[string]int
}

var Inventory = donburi.NewComponentType[InventoryData]()

// NewInventory returns an empty inventory.
func NewInventory() InventoryData {
	return InventoryData{Items: map[string]int{}}
}

// Count returns the held quantity of item.
func (inv *InventoryData) Count(item string) int {
	return inv.Items[item]
}

// Add deposits n of item. Negative deposits are a caller bug; use Take.
func (inv *InventoryData) Add(item string, n int) {
	if n < 0 {
		panic(fmt.Sprintf("inventory: add %d %s", n, item))
	}
	if inv.Items == nil {
		inv.Items = map[string]int{}
	}
	inv.Items[item] += n
}

// Take withdraws n of item, all-or-nothing: if fewer than n are held the
// inventory is unchanged and ErrInsufficient is returned.
func (inv *InventoryData) Take(item string, n int) error {
	if n < 0 {
		panic(fmt.Sprintf("inventory: take %d %s", n, item))
	}
	held := inv.Items[item]
	if n > held {
		return fmt.Errorf("take %d %s, %d held: %w", n, item, held, ErrInsufficient)
	}
	remaining := held - n
	if remaining == 0 {
		delete(inv.Items, item)
	} else {
		inv.Items[item] = remaining
	}
	return nil
}

// MergeFrom deposits the full contents of other.
func (inv *InventoryData) MergeFrom(other InventoryData) {
	for item, n := range other.Items {
		inv.Add(item, n)
	}
}
