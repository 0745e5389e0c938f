package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScaleTweenData animates an entity's render scale. The entity is destroyed
// when the tween finishes.
type ScaleTweenData struct {
	Tween *gween.Tween
	Scale float64
}

var ScaleTween = donburi.NewComponentType[ScaleTweenData]()
