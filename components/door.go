package components

import "github.com/yohamta/donburi"

type DoorData struct {
	Locked bool
}

var Door = donburi.NewComponentType[DoorData]()
