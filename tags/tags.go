package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Grappler = donburi.NewTag().SetName("Grappler")
	Hostile  = donburi.NewTag().SetName("Hostile")
	Bullet   = donburi.NewTag().SetName("Bullet")
	Pickup   = donburi.NewTag().SetName("Pickup")
	Hazard   = donburi.NewTag().SetName("Hazard") // spikes and launch pads
	Door     = donburi.NewTag().SetName("Door")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvEntity = "entity"
)
