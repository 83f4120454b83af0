package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedCamera represents the pixel camera tunables stored on disk
type SavedCamera struct {
	ZoomLevel       float64 `json:"zoomLevel"`
	PixelsPerUnit   float64 `json:"pixelsPerUnit"`
	Orthographic    bool    `json:"orthographic"`
	DownsampleIndex int     `json:"downsampleIndex"`
	StretchIndex    int     `json:"stretchIndex"`
	Debug           bool    `json:"debug"`
	Fullscreen      bool    `json:"fullscreen"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadCamera loads the saved tunables. It returns nil without an error when
// persistence is unavailable or nothing was saved yet.
func LoadCamera() (*SavedCamera, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.SaveKey)
	if err != nil {
		log.Printf("Warning: Could not load camera settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var saved SavedCamera
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// SaveCamera writes the tunables to disk
func SaveCamera(s *SavedCamera) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem(cfg.Settings.SaveKey, data)
}

// CurrentCamera captures the tunables of the scene's pixel camera.
func CurrentCamera(e *ecs.ECS) *SavedCamera {
	entry, ok := components.PixelCamera.First(e.World)
	if !ok {
		return nil
	}
	pc := components.PixelCamera.Get(entry)
	zoom := components.ZoomTween.Get(entry)
	settings := GetOrCreateSettings(e)
	return &SavedCamera{
		ZoomLevel:       zoom.Target,
		PixelsPerUnit:   pc.Camera.PixelsPerUnit(),
		Orthographic:    pc.Host.Orthographic(),
		DownsampleIndex: pc.DownsampleIndex,
		StretchIndex:    pc.StretchIndex,
		Debug:           settings.Debug,
		Fullscreen:      settings.Fullscreen,
	}
}

// ApplySavedCamera restores saved tunables onto the scene's pixel camera
func ApplySavedCamera(e *ecs.ECS, saved *SavedCamera) {
	if saved == nil {
		return
	}
	entry, ok := components.PixelCamera.First(e.World)
	if !ok {
		return
	}
	pc := components.PixelCamera.Get(entry)
	zoom := components.ZoomTween.Get(entry)

	if saved.ZoomLevel > 0 {
		zoom.Target = saved.ZoomLevel
		zoom.Tween = nil
		pc.Camera.SetZoomLevel(saved.ZoomLevel)
	}
	pc.Camera.SetPixelsPerUnit(saved.PixelsPerUnit)
	pc.Host.SetOrthographic(saved.Orthographic)
	pc.DownsampleIndex = saved.DownsampleIndex
	pc.StretchIndex = saved.StretchIndex
	applyPresets(pc)

	settings := GetOrCreateSettings(e)
	settings.Debug = saved.Debug
	settings.Fullscreen = saved.Fullscreen
	ebiten.SetFullscreen(saved.Fullscreen)
}

// UpdatePersistence saves the tunables once a control changed them. Saving
// waits for a running zoom tween to settle.
func UpdatePersistence(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	if !settings.Dirty {
		return
	}
	if entry, ok := components.ZoomTween.First(e.World); ok && components.ZoomTween.Get(entry).Tween != nil {
		return
	}
	settings.Dirty = false
	if err := SaveCamera(CurrentCamera(e)); err != nil {
		log.Printf("Warning: Could not save camera settings: %v", err)
	}
}
