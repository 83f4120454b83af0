package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/pixelcam/assets"
	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/systems"
	"github.com/automoto/pixelcam/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene shows a Tiled level through a pixel camera following the player.
type WorldScene struct {
	ecs   *ecs.ECS
	level string
	saved *systems.SavedCamera
	once  sync.Once
	err   error
}

// NewWorldScene creates the scene for an embedded level. saved, when not nil,
// restores persisted camera tunables after the camera is built.
func NewWorldScene(level string, saved *systems.SavedCamera) *WorldScene {
	return &WorldScene{level: level, saved: saved}
}

func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	if ws.err != nil {
		return ws.err
	}
	ws.ecs.Update()
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// Close disables the pixel camera, releasing its buffer and materials.
func (ws *WorldScene) Close() {
	if ws.ecs == nil {
		return
	}
	if entry, ok := components.PixelCamera.First(ws.ecs.World); ok {
		components.PixelCamera.Get(entry).Camera.OnDisable()
	}
}

func (ws *WorldScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		ws.err = fmt.Errorf("load shaders: %w", err)
		return
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first, persistence last
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdatePixelCameraControls)
	ecs.AddSystem(systems.UpdateZoomTween)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdatePersistence)

	// The pixel camera ticks in its renderer; overlays draw after it
	ecs.AddRenderer(cfg.Default, systems.DrawPixelCamera)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	factory.CreateSession(ecs)

	level, err := factory.CreateLevel(ecs, ws.level)
	if err != nil {
		ws.err = err
		return
	}
	world := components.Level.Get(level).World

	// Spawn points are in world units, collision in texels
	spawn := world.SpawnPoints[0]
	ts := float64(world.TileSize)
	factory.CreatePlayer(ecs, spawn.X*ts, spawn.Y*ts)
	factory.CreateCamera(ecs, spawn.X, spawn.Y)
	factory.CreatePixelCamera(ecs, systems.NewWorldRenderer(ecs))

	systems.ApplySavedCamera(ecs, ws.saved)

	ws.ecs = ecs
}
