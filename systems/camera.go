package systems

import (
	"math"

	"github.com/automoto/pixelcam/components"
	"github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/pixelcam"
	"github.com/automoto/pixelcam/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player with look-ahead, keeps the view inside the
// level and hands the position to the scene camera.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	defer syncHostPosition(e, camera)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	world := components.Level.Get(levelEntry).World
	if world == nil || world.TileSize <= 0 {
		return
	}
	ts := float64(world.TileSize)

	obj := components.Object.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	// Freeze the look-ahead offset while idle
	if math.Abs(physics.SpeedX) > config.Player.Acceleration {
		target := player.Direction * config.Camera.LookAheadDistance
		camera.LookAheadX += (target - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	// Collision runs in texels, the camera in world units
	targetX := (obj.X+obj.W/2)/ts + camera.LookAheadX
	targetY := (obj.Y + obj.H/2) / ts

	halfW, halfH := visibleHalfExtents(e)
	targetX = clampToLevel(targetX, halfW, float64(world.Width))
	targetY = clampToLevel(targetY, halfH, float64(world.Height))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampToLevel keeps a view of half-size half inside [0, size], centring it
// when the level is smaller than the view.
func clampToLevel(v, half, size float64) float64 {
	if 2*half >= size {
		return size / 2
	}
	return math.Max(half, math.Min(size-half, v))
}

// visibleHalfExtents is the half size of the view in world units at the depth
// rendered pixel perfect.
func visibleHalfExtents(e *ecs.ECS) (halfW, halfH float64) {
	pcEntry, ok := components.PixelCamera.First(e.World)
	if !ok {
		return 0, 0
	}
	pc := components.PixelCamera.Get(pcEntry)
	host := pc.Host
	if host.Orthographic() {
		halfH = host.OrthographicSize()
	} else {
		depth := pc.Camera.Advanced().PerspectiveZ
		halfH = depth * math.Tan(host.FieldOfView()*math.Pi/360)
	}

	aspect := host.Aspect()
	if pc.Camera.State() == pixelcam.Disabled {
		if w, h := pc.Compositor.ScreenSize(); h > 0 {
			aspect = float64(w) / float64(h)
		}
	}
	return halfH * aspect, halfH
}

func syncHostPosition(e *ecs.ECS, camera *components.CameraData) {
	if pcEntry, ok := components.PixelCamera.First(e.World); ok {
		components.PixelCamera.Get(pcEntry).Host.Position = camera.Position
	}
}
