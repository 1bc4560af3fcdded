package components

import (
	"io/fs"

	"github.com/automoto/runnin-gunner/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	Campaign     *leveldata.Campaign
	FS           fs.FS // where the campaign's TMX files are read from
}

// Entry returns the campaign entry of the current level.
func (l *LevelData) Entry() leveldata.CampaignLevel {
	return l.Campaign.Entry(l.LevelIndex)
}

var Level = donburi.NewComponentType[LevelData]()
