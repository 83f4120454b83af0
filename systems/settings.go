package systems

import (
	"github.com/automoto/pixelcam/components"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the session settings, creating them if needed
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
	}
	return components.Settings.Get(entry)
}
