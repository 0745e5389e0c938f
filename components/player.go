package components

import (
	"github.com/yohamta/donburi"
)

// PlayerData holds player-only state. RemainingJumps is bounded by the
// configured maximum, decremented on each jump, and reset to the maximum
// only when the collision system reports a landing.
type PlayerData struct {
	Direction      Vector
	RemainingJumps int
}

var Player = donburi.NewComponentType[PlayerData]()
