package factory

import (
	"github.com/automoto/pixelcam/archetypes"
	"github.com/automoto/pixelcam/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space. Sizes are in texels; resolv
// rounds extents to whole pixels, so physics never runs in world units.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, resolv.NewSpace(width, height, cellWidth, cellHeight))
	return space
}
