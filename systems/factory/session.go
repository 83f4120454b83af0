package factory

import (
	"github.com/automoto/pixelcam/archetypes"
	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession holds the input state and session toggles.
func CreateSession(ecs *ecs.ECS) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Settings.SetValue(session, components.SettingsData{Debug: cfg.Debug.Enabled})
	return session
}
