package config

// SettingsConfig contains persistence keys
type SettingsConfig struct {
	AppName string
	SaveKey string
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName: "pixelcam",
		SaveKey: "camera",
	}
}
