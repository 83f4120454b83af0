package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the demo scene uses.
const Default ecs.LayerID = 0

// Config is the window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PixelCameraConfig contains the pixel camera defaults and the demo's tunable presets
type PixelCameraConfig struct {
	PixelsPerUnit float64
	ZoomLevel     float64

	// Lens of the scene camera
	FieldOfView  float64 // degrees, vertical
	NearClip     float64
	FarClip      float64
	Orthographic bool

	// Depth rendered pixel-perfect in perspective mode
	PerspectiveZ float64

	// Zoom keys
	ZoomStep          float64 // multiplier per key press
	MinZoom           float64
	MaxZoom           float64
	ZoomTweenDuration float32 // seconds

	DownsampleOptions []int
	StretchPresets    []StretchPreset
}

// StretchPreset is a named non-uniform pixel aspect
type StretchPreset struct {
	Label string
	X, Y  float64
}

// CameraConfig contains follow camera tuning
type CameraConfig struct {
	FollowSmoothing    float64 // 0..1 per tick
	LookAheadDistance  float64 // world units
	LookAheadSmoothing float64
}

// WorldConfig contains demo world rendering values
type WorldConfig struct {
	Level           string
	BackgroundColor color.RGBA
	LayerColors     map[string]color.RGBA
	FallbackColor   color.RGBA
}

// PlayerConfig contains the demo subject's movement values, in texels per tick
type PlayerConfig struct {
	Width        float64
	Height       float64
	Acceleration float64
	MaxSpeed     float64
	Friction     float64
	JumpSpeed    float64
	Gravity      float64
	MaxFallSpeed float64
	Color        color.RGBA
}

// HUDConfig contains overlay text layout
type HUDConfig struct {
	Margin      int
	LineHeight  int
	FontSize    float64
	TextColor   color.RGBA
	ShadowColor color.RGBA
}

// DebugConfig contains debug overlay flags and colors
type DebugConfig struct {
	Enabled       bool
	QuadColor     color.RGBA
	ColliderColor color.RGBA
}

var C *Config
var PixelCamera PixelCameraConfig
var Camera CameraConfig
var World WorldConfig
var Player PlayerConfig
var HUD HUDConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "pixelcam",
	}

	PixelCamera = PixelCameraConfig{
		PixelsPerUnit: 16,
		ZoomLevel:     1,

		FieldOfView:  60,
		NearClip:     0.3,
		FarClip:      100,
		Orthographic: true,

		PerspectiveZ: 10, // matches the ground layer depth

		ZoomStep:          2,
		MinZoom:           0.25,
		MaxZoom:           8,
		ZoomTweenDuration: 0.25,

		DownsampleOptions: []int{1, 2, 4},
		StretchPresets: []StretchPreset{
			{Label: "square", X: 1, Y: 1},
			{Label: "wide 2:1", X: 2, Y: 1},
			{Label: "tall 1:2", X: 1, Y: 2},
			{Label: "crt 8:7", X: 8.0 / 7.0, Y: 1},
		},
	}

	Camera = CameraConfig{
		FollowSmoothing:    0.1,
		LookAheadDistance:  2,
		LookAheadSmoothing: 0.05,
	}

	World = WorldConfig{
		Level:           "world.tmx",
		BackgroundColor: color.RGBA{24, 20, 37, 255},
		LayerColors: map[string]color.RGBA{
			"sky":    {58, 68, 102, 255},
			"hills":  {38, 92, 66, 255},
			"ground": {139, 155, 180, 255},
			"props":  {228, 166, 114, 255},
		},
		FallbackColor: color.RGBA{255, 0, 255, 255},
	}

	Player = PlayerConfig{
		Width:        12,
		Height:       24,
		Acceleration: 0.3,
		MaxSpeed:     2.4,
		Friction:     0.25,
		JumpSpeed:    6.5,
		Gravity:      0.35,
		MaxFallSpeed: 9,
		Color:        color.RGBA{254, 174, 52, 255},
	}

	HUD = HUDConfig{
		Margin:      8,
		LineHeight:  14,
		FontSize:    11,
		TextColor:   color.RGBA{255, 255, 255, 255},
		ShadowColor: color.RGBA{0, 0, 0, 200},
	}

	Debug = DebugConfig{
		Enabled:       false,
		QuadColor:     color.RGBA{255, 0, 77, 255},
		ColliderColor: color.RGBA{0, 228, 54, 255},
	}
}
