package components

import "github.com/yohamta/donburi"

// MessagePointData is a piece of world-space text from the map.
type MessagePointData struct {
	Text string
	X, Y float64
}

var MessagePoint = donburi.NewComponentType[MessagePointData]()
