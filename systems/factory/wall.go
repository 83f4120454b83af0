package factory

import (
	"github.com/automoto/pixelcam/archetypes"
	"github.com/automoto/pixelcam/components"
	"github.com/automoto/pixelcam/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a solid collider. Coordinates are in texels.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
