package levels

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	terrainLayer     = "terrain"
	spawnGroup       = "PlayerSpawn"
	checkpointsGroup = "Checkpoints"
	hazardsGroup     = "Hazards"
	platformsGroup   = "Platforms"
)

// Load parses a TMX file into a Level. It takes an fs.FS so callers can
// pass an embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != terrainLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				level.Walls = append(level.Walls, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case spawnGroup:
			for _, o := range og.Objects {
				level.Spawns = append(level.Spawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case checkpointsGroup:
			for _, o := range og.Objects {
				level.Checkpoints = append(level.Checkpoints, CheckpointZone{
					Rect: Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					ID:   o.Properties.GetInt("checkpointID"),
				})
			}
		case hazardsGroup:
			for _, o := range og.Objects {
				level.Hazards = append(level.Hazards, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case platformsGroup:
			for _, o := range og.Objects {
				travel := o.Properties.GetFloat("travel")
				if travel == 0 {
					travel = 96
				}
				duration := o.Properties.GetFloat("duration")
				if duration == 0 {
					duration = 2
				}
				level.Platforms = append(level.Platforms, PlatformPath{
					Rect:     Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Travel:   travel,
					Duration: duration,
				})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(level.Spawns, func(i, j int) bool {
		return level.Spawns[i].X < level.Spawns[j].X
	})

	if len(level.Spawns) == 0 {
		return nil, fmt.Errorf("level %s: no player spawn points defined", level.Name)
	}

	return level, nil
}

// LoadAll discovers every .tmx file under levelsDir in fsys and loads it,
// returning levels sorted by name.
func LoadAll(fsys fs.FS, levelsDir string) ([]*Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	sort.Strings(matches)
	out := make([]*Level, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		out = append(out, level)
	}
	return out, nil
}
