package scenes

import (
	"io/fs"

	"github.com/automoto/runnin-gunner/client"
	"github.com/automoto/runnin-gunner/client/persistence"
	"github.com/automoto/runnin-gunner/shared/leveldata"
	"github.com/automoto/runnin-gunner/storage"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = 0

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
}

// Shared is what every scene needs from the running game.
type Shared struct {
	Changer  SceneChanger
	Campaign *leveldata.Campaign
	Levels   fs.FS
	Audio    *client.Audio

	Settings      persistence.Settings
	SettingsStore *persistence.Store // nil when the platform has no storage
	Runs          *storage.Store     // nil when run recording is disabled
}

// SaveSettings applies and persists new settings.
func (s *Shared) SaveSettings(settings persistence.Settings) {
	s.Settings = settings
	client.ApplySettings(settings, s.Audio)
	if s.SettingsStore == nil {
		return
	}
	if err := s.SettingsStore.Save(settings); err != nil {
		log.Warn("could not save settings", "err", err)
	}
}
