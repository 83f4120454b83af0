package systems

import (
	"math"

	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/pixelcam"
	"github.com/automoto/pixelcam/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePixelCameraControls applies the demo key bindings to the pixel camera.
func UpdatePixelCameraControls(e *ecs.ECS) {
	entry, ok := components.PixelCamera.First(e.World)
	if !ok {
		return
	}
	pc := components.PixelCamera.Get(entry)
	zoom := components.ZoomTween.Get(entry)
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	switch {
	case GetAction(input, cfg.ActionZoomIn).JustPressed:
		startZoomTween(pc, zoom, zoom.Target*cfg.PixelCamera.ZoomStep)
		settings.Dirty = true
	case GetAction(input, cfg.ActionZoomOut).JustPressed:
		startZoomTween(pc, zoom, zoom.Target/cfg.PixelCamera.ZoomStep)
		settings.Dirty = true
	}

	if GetAction(input, cfg.ActionToggleProjection).JustPressed {
		pc.Host.SetOrthographic(!pc.Host.Orthographic())
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionCycleDownsample).JustPressed {
		pc.DownsampleIndex++
		applyPresets(pc)
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionCycleStretch).JustPressed {
		pc.StretchIndex++
		applyPresets(pc)
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionRefresh).JustPressed {
		pc.Camera.ForceRefresh()
	}
	if GetAction(input, cfg.ActionTogglePixelCamera).JustPressed {
		if pc.Camera.State() == pixelcam.Disabled {
			pc.Camera.OnEnable()
		} else {
			pc.Camera.OnDisable()
		}
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !ebiten.IsFullscreen()
		ebiten.SetFullscreen(settings.Fullscreen)
		settings.Dirty = true
	}
}

// applyPresets pushes the selected downsample and stretch presets into the
// camera's advanced settings. The change is picked up on the next tick.
func applyPresets(pc *components.PixelCameraData) {
	a := pc.Camera.Advanced()
	a.Downsample = factory.DownsampleOption(pc.DownsampleIndex)
	a.AspectStretch = factory.StretchPreset(pc.StretchIndex)
	pc.Camera.SetAdvanced(&a)
}

func startZoomTween(pc *components.PixelCameraData, zoom *components.ZoomTweenData, target float64) {
	target = math.Max(cfg.PixelCamera.MinZoom, math.Min(cfg.PixelCamera.MaxZoom, target))
	zoom.Target = target
	zoom.Tween = gween.New(
		float32(pc.Camera.ZoomLevel()),
		float32(target),
		cfg.PixelCamera.ZoomTweenDuration,
		ease.OutQuad,
	)
}

// UpdateZoomTween advances a running zoom tween and feeds the value to the
// camera, snapping to the exact target when it finishes.
func UpdateZoomTween(e *ecs.ECS) {
	entry, ok := components.ZoomTween.First(e.World)
	if !ok {
		return
	}
	zoom := components.ZoomTween.Get(entry)
	if zoom.Tween == nil {
		return
	}
	pc := components.PixelCamera.Get(entry)

	value, finished := zoom.Tween.Update(1 / float32(ebiten.TPS()))
	if finished {
		pc.Camera.SetZoomLevel(zoom.Target)
		zoom.Tween = nil
		return
	}
	pc.Camera.SetZoomLevel(float64(value))
}

// DrawPixelCamera renders the scene through the pixel camera. This is the
// camera's per-frame tick. While the camera is disabled the scene is drawn
// straight onto the screen at the same density.
func DrawPixelCamera(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.PixelCamera.First(e.World)
	if !ok {
		return
	}
	pc := components.PixelCamera.Get(entry)
	pc.Compositor.Begin(screen)

	if pc.Camera.State() == pixelcam.Disabled {
		h := float64(screen.Bounds().Dy())
		pc.Host.SetOrthographicSize(h / pc.Camera.PixelsPerUnit() / pc.Camera.ZoomLevel() / 2)
		pc.Host.RenderTo(screen)
		return
	}

	// The host camera renders into its target every frame; the tick then
	// recomputes or composites.
	pc.Host.RenderNow()
	pc.Camera.OnTick()
}
