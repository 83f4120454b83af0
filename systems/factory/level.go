package factory

import (
	"fmt"

	"github.com/automoto/pixelcam/archetypes"
	"github.com/automoto/pixelcam/assets"
	"github.com/automoto/pixelcam/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads an embedded level, its collision space and its walls.
func CreateLevel(ecs *ecs.ECS, name string) (*donburi.Entry, error) {
	world, err := assets.LoadLevel(name)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", name, err)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{World: world, Name: name})

	ts := world.TileSize
	CreateSpace(ecs, world.Width*ts, world.Height*ts, ts, ts)
	size := float64(ts)
	for _, t := range world.SolidTiles() {
		CreateWall(ecs, t.X*size, t.Y*size, size, size)
	}

	return level, nil
}
