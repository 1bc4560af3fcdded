package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TuningFile is the YAML shape of a tuning overlay. Missing keys keep their
// built-in values.
type TuningFile struct {
	Sim      SimConfig      `yaml:"sim"`
	Player   PlayerConfig   `yaml:"player"`
	Weapon   WeaponConfig   `yaml:"weapon"`
	Bullet   BulletConfig   `yaml:"bullet"`
	Director DirectorConfig `yaml:"director"`
	Hostiles struct {
		Bat     HostileConfig `yaml:"bat"`
		Creeper HostileConfig `yaml:"creeper"`
		Turret  HostileConfig `yaml:"turret"`
		Swooper HostileConfig `yaml:"swooper"`
	} `yaml:"hostiles"`
}

// CurrentTuning snapshots the live tuning values.
func CurrentTuning() TuningFile {
	t := TuningFile{
		Sim:      Sim,
		Player:   Player,
		Weapon:   Weapon,
		Bullet:   Bullet,
		Director: Director,
	}
	t.Hostiles.Bat = Hostiles[KindBat]
	t.Hostiles.Creeper = Hostiles[KindCreeper]
	t.Hostiles.Turret = Hostiles[KindTurret]
	t.Hostiles.Swooper = Hostiles[KindSwooper]
	return t
}

// Apply writes the tuning values back into the globals.
func (t TuningFile) Apply() {
	Sim.Pace = t.Sim.Pace
	Sim.MaxFrameTime = t.Sim.MaxFrameTime
	Sim.ReferenceRate = t.Sim.ReferenceRate
	Sim.TickRate = t.Sim.TickRate
	Player = t.Player
	Weapon.FireInterval = t.Weapon.FireInterval
	Weapon.DefaultFireInterval = t.Weapon.DefaultFireInterval
	Weapon.SpreadCount = t.Weapon.SpreadCount
	Weapon.SpreadAngle = t.Weapon.SpreadAngle
	Bullet = t.Bullet
	Director = t.Director
	applyHostile(KindBat, t.Hostiles.Bat)
	applyHostile(KindCreeper, t.Hostiles.Creeper)
	applyHostile(KindTurret, t.Hostiles.Turret)
	applyHostile(KindSwooper, t.Hostiles.Swooper)
}

func applyHostile(k Kind, h HostileConfig) {
	h.Bullet = Hostiles[k].Bullet
	Hostiles[k] = h
}

// ParseTuning overlays YAML data on the current tuning and applies it.
func ParseTuning(data []byte) error {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return err
	}
	t.Apply()
	return nil
}

// LoadTuning applies a tuning overlay.
// Search order: customPath -> ~/.runnin-gunner/tuning.yaml -> ./configs/tuning.yaml -> built-in defaults
// It returns the path that was applied, or "" when the defaults were kept.
func LoadTuning(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read tuning %s: %w", customPath, err)
		}
		if err := ParseTuning(data); err != nil {
			return "", fmt.Errorf("failed to parse tuning %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath("tuning.yaml"), filepath.Join("configs", "tuning.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := ParseTuning(data); err != nil {
			return "", fmt.Errorf("failed to parse tuning %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runnin-gunner", filename)
}
