package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the center of the viewbox in world pixels. The camera does
// not own entities; it only determines the render offset and which tiles
// must exist.
type CameraData struct {
	Position math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
