package systems

import (
	"fmt"

	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/fonts"
	"github.com/automoto/pixelcam/pixelcam"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the composited quad and prints the buffer layout.
// Colliders are drawn by the world renderer so they go through the buffer.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}
	entry, ok := components.PixelCamera.First(e.World)
	if !ok {
		return
	}
	pc := components.PixelCamera.Get(entry)
	if pc.Camera.State() == pixelcam.Disabled {
		return
	}

	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	q := pc.Camera.QuadBounds()
	x := q.Min.X * sw
	y := (1 - q.Max.Y) * sh
	vector.StrokeRect(screen, float32(x), float32(y), float32(q.Width()*sw), float32(q.Height()*sh), 1,
		cfg.Debug.QuadColor, false)

	layout := pc.Camera.Layout()
	size := pc.Camera.CameraSize()
	lines := []string{
		fmt.Sprintf("screen %dx%d", int(sw), int(sh)),
		fmt.Sprintf("render %dx%d  buffer %dx%d", layout.RenderSize.Width, layout.RenderSize.Height, size.Width, size.Height),
		fmt.Sprintf("quad (%.4f, %.4f) - (%.4f, %.4f)", q.Min.X, q.Min.Y, q.Max.X, q.Max.Y),
		fmt.Sprintf("live buffers %d  draws %d", pc.Buffers.Live(), pc.Compositor.Draws()),
	}
	face := fonts.Small.Get()
	top := int(sh) - cfg.HUD.Margin - (len(lines)+1)*cfg.HUD.LineHeight
	for i, line := range lines {
		drawShadowedText(screen, line, cfg.HUD.Margin, top+i*cfg.HUD.LineHeight, face)
	}
}
