package components

import (
	"github.com/yohamta/donburi"
)

// SpriteData names the image drawn for an entity. Sprites are joined with
// hitboxes only at render time: the image is resolved by key and centered on
// the hitbox, so physics never touches image data.
type SpriteData struct {
	ImageKey string
}

var Sprite = donburi.NewComponentType[SpriteData]()
