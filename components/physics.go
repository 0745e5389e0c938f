package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData is the velocity state of a moving body. Grounded is set by
// the collision system on a downward contact and cleared at the start of
// every vertical resolve, so it reflects the current tick only.
type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Grounded bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
