package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/runnin-gunner/config"
	"github.com/lafriks/go-tiled"
)

// Map layout conventions.
const (
	SolidLayer   = "solid"
	SpawnGroup   = "Spawns"
	MessageGroup = "Messages"
)

var (
	ErrNoPlayerSpawn = errors.New("no player spawn point defined in map")
	ErrUnknownSpawn  = errors.New("unknown spawn type")
)

// Load parses a TMX file into a Level. It takes an fs.FS so callers can pass
// embed.FS (client) or os.DirFS (tools and tests).
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:     strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		TileSize: levelMap.TileWidth,
		Cols:     levelMap.Width,
		Rows:     levelMap.Height,
		Width:    levelMap.Width * levelMap.TileWidth,
		Height:   levelMap.Height * levelMap.TileHeight,
		Spawns:   make(map[config.Kind][]Point),
	}

	level.Grid = NewGrid(levelMap.Width, levelMap.Height, float64(levelMap.TileWidth))
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				if layer.Tiles[y*levelMap.Width+x].IsNil() {
					continue
				}
				level.Grid.Set(x, y, true)
			}
		}
		break
	}
	level.SolidRects = level.Grid.Rects()

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case SpawnGroup:
			for _, o := range og.Objects {
				name := o.Class
				if name == "" {
					name = o.Type //nolint:staticcheck // TMX uses type= attribute
				}
				if name == "" {
					name = o.Name
				}
				kind, ok := config.ParseKind(strings.ToLower(name))
				if !ok {
					return nil, fmt.Errorf("%s object %d %q: %w", tmxPath, o.ID, name, ErrUnknownSpawn)
				}
				level.Spawns[kind] = append(level.Spawns[kind], Point{
					X: o.X + o.Width/2,
					Y: o.Y + o.Height/2,
				})
			}
		case MessageGroup:
			for _, o := range og.Objects {
				text := o.Properties.GetString("text")
				if text == "" {
					text = o.Name
				}
				level.Messages = append(level.Messages, Message{X: o.X, Y: o.Y, Text: text})
			}
		}
	}

	if _, ok := level.PlayerSpawn(); !ok {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}
	return level, nil
}
