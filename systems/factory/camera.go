package factory

import (
	"github.com/automoto/pixelcam/archetypes"
	"github.com/automoto/pixelcam/assets"
	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/ebitenhost"
	"github.com/automoto/pixelcam/pixelcam"
	"github.com/automoto/pixelcam/shared/pixelmath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera creates the follow camera centred on x, y.
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{Position: math.Vec2{X: x, Y: y}})
	return camera
}

// CreatePixelCamera builds the scene camera, its ebiten collaborators and the
// pixel camera driving them, then enables it. assets.LoadShaders must have
// run first.
func CreatePixelCamera(ecs *ecs.ECS, render ebitenhost.RenderFunc) *donburi.Entry {
	entry := archetypes.PixelCamera.Spawn(ecs)

	host := ebitenhost.NewCamera(ebitenhost.CameraOptions{
		FieldOfView:  cfg.PixelCamera.FieldOfView,
		Near:         cfg.PixelCamera.NearClip,
		Far:          cfg.PixelCamera.FarClip,
		Orthographic: cfg.PixelCamera.Orthographic,
	}, render)
	buffers := &ebitenhost.Buffers{}
	compositor := &ebitenhost.Compositor{}

	advanced := pixelcam.DefaultAdvancedSettings(cfg.PixelCamera.FarClip)
	advanced.PerspectiveZ = cfg.PixelCamera.PerspectiveZ
	conf := pixelcam.NewConfig(
		pixelcam.WithPixelsPerUnit(cfg.PixelCamera.PixelsPerUnit),
		pixelcam.WithZoomLevel(cfg.PixelCamera.ZoomLevel),
		pixelcam.WithAdvanced(advanced),
	)

	cam := pixelcam.New(host, buffers, compositor, ebitenhost.NewShader(assets.CompositeShader), conf)
	components.PixelCamera.SetValue(entry, components.PixelCameraData{
		Camera:     cam,
		Host:       host,
		Buffers:    buffers,
		Compositor: compositor,
	})
	components.ZoomTween.SetValue(entry, components.ZoomTweenData{Target: conf.ZoomLevel})

	cam.OnEnable()
	return entry
}

// StretchPreset returns the aspect stretch for a preset index, wrapping.
func StretchPreset(i int) pixelmath.Vec2 {
	presets := cfg.PixelCamera.StretchPresets
	if len(presets) == 0 {
		return pixelmath.One
	}
	p := presets[wrapIndex(i, len(presets))]
	return pixelmath.Vec2{X: p.X, Y: p.Y}
}

// StretchLabel names the stretch preset at index i, wrapping.
func StretchLabel(i int) string {
	presets := cfg.PixelCamera.StretchPresets
	if len(presets) == 0 {
		return "-"
	}
	return presets[wrapIndex(i, len(presets))].Label
}

// DownsampleOption returns the downsample factor for an option index, wrapping.
func DownsampleOption(i int) float64 {
	opts := cfg.PixelCamera.DownsampleOptions
	if len(opts) == 0 {
		return 1
	}
	return float64(opts[wrapIndex(i, len(opts))])
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
