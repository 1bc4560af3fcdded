package components

import (
	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound requests for the client (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
	StopAll    bool // stop every playing sound before the pending ones start
}

var Audio = donburi.NewComponentType[AudioData]()
