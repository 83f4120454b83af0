package components

import "github.com/yohamta/donburi"

// SettingsData holds session toggles that are not pixel camera tunables.
type SettingsData struct {
	Debug      bool
	Fullscreen bool
	// Dirty marks tunables changed since the last save.
	Dirty bool
}

var Settings = donburi.NewComponentType[SettingsData]()
