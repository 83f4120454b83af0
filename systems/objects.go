package systems

import (
	"github.com/automoto/pixelcam/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers moved collision objects with their space cells.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		components.Object.Get(e).Update()
	}
}
