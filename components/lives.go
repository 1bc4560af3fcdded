package components

import "github.com/yohamta/donburi"

type LivesData struct {
	Lives    int
	MaxLives int // lives granted on a fresh campaign
}

var Lives = donburi.NewComponentType[LivesData]()
