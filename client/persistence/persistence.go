// Package persistence saves player settings and campaign progress between
// sessions using gdata's per-platform storage.
package persistence

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/runnin-gunner/config"
	"github.com/quasilyte/gdata"
)

const (
	AppName     = "runnin-gunner"
	settingsKey = "settings"
)

// Items is the part of gdata.Manager the store needs.
type Items interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Settings represents the settings data stored on disk
type Settings struct {
	SFXVolume       float64 `json:"sfxVolume"`
	Muted           bool    `json:"muted"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
	LastLevel       int     `json:"lastLevel"` // furthest level reached, offered by the menu
}

// Defaults are used until something has been saved.
func Defaults() Settings {
	return Settings{
		SFXVolume:       cfg.Audio.DefaultSFXVol,
		ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
	}
}

type Store struct {
	items Items
}

// Open initializes the gdata manager for settings storage.
func Open() (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return nil, fmt.Errorf("persistence: %w", err)
	}
	return NewStore(m), nil
}

func NewStore(items Items) *Store {
	return &Store{items: items}
}

// Load returns the saved settings, or Defaults when nothing is saved yet.
// Out of range values are replaced by their defaults.
func (s *Store) Load() (Settings, error) {
	settings := Defaults()
	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		return settings, fmt.Errorf("persistence: load settings: %w", err)
	}
	if len(data) == 0 {
		return settings, nil
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return Defaults(), fmt.Errorf("persistence: parse settings: %w", err)
	}
	settings.sanitize()
	return settings, nil
}

// Save writes the settings to disk.
func (s *Store) Save(settings Settings) error {
	settings.sanitize()
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("persistence: encode settings: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("persistence: save settings: %w", err)
	}
	return nil
}

func (s *Settings) sanitize() {
	s.SFXVolume = max(0, min(1, s.SFXVolume))
	if s.ResolutionIndex < 0 || s.ResolutionIndex >= len(cfg.SettingsMenu.Resolutions) {
		s.ResolutionIndex = cfg.SettingsMenu.DefaultResolutionIndex
	}
	s.LastLevel = max(0, s.LastLevel)
}
