package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

const (
	spawnGroup   = "PlayerSpawn"
	propDepth    = "depth"
	propSolid    = "solid"
	propSpawnIdx = "spawnIndex"
	defaultDepth = 10.0
)

// ErrNoSpawn is returned for maps without a PlayerSpawn object.
var ErrNoSpawn = errors.New("leveldata: no player spawn points")

// LoadWorld parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func LoadWorld(fsys fs.FS, tmxPath string) (*World, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	w := &World{
		Width:    levelMap.Width,
		Height:   levelMap.Height,
		TileSize: levelMap.TileHeight,
	}

	for _, layer := range levelMap.Layers {
		tl := TileLayer{
			Name:  layer.Name,
			Depth: layer.Properties.GetFloat(propDepth),
			Solid: layer.Properties.GetBool(propSolid),
		}
		if tl.Depth <= 0 {
			tl.Depth = defaultDepth
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				i := y*levelMap.Width + x
				if i >= len(layer.Tiles) {
					break
				}
				tile := layer.Tiles[i]
				if tile == nil || tile.IsNil() {
					continue
				}
				tl.Tiles = append(tl.Tiles, Tile{X: float64(x), Y: float64(y), ID: tile.ID})
			}
		}
		w.Layers = append(w.Layers, tl)
	}

	// Nearest layers draw last.
	sort.SliceStable(w.Layers, func(i, j int) bool {
		return w.Layers[i].Depth > w.Layers[j].Depth
	})

	tileW, tileH := float64(levelMap.TileWidth), float64(levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != spawnGroup {
			continue
		}
		for _, o := range og.Objects {
			w.SpawnPoints = append(w.SpawnPoints, SpawnPoint{
				X:     o.X / tileW,
				Y:     o.Y / tileH,
				Index: o.Properties.GetInt(propSpawnIdx),
			})
		}
	}
	if len(w.SpawnPoints) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSpawn)
	}
	sort.Slice(w.SpawnPoints, func(i, j int) bool {
		return w.SpawnPoints[i].Index < w.SpawnPoints[j].Index
	})

	return w, nil
}

// SolidTiles returns the tiles of every solid layer.
func (w *World) SolidTiles() []Tile {
	var out []Tile
	for _, l := range w.Layers {
		if l.Solid {
			out = append(out, l.Tiles...)
		}
	}
	return out
}
