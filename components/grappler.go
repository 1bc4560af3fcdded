package components

import "github.com/yohamta/donburi"

type GrapplerData struct {
	Aim           float64 // radians
	ShotRequested bool
	Shotgun       bool
}

var Grappler = donburi.NewComponentType[GrapplerData]()
