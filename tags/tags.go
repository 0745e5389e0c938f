package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Block  = donburi.NewTag().SetName("Block")
	Coin   = donburi.NewTag().SetName("Coin")
)
