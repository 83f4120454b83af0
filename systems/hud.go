package systems

import (
	"fmt"

	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/fonts"
	"github.com/automoto/pixelcam/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const hudHint = "arrows move  +/- zoom  P projection  D downsample  S stretch  R refresh  E toggle  F1 debug"

// DrawHUD prints the pixel camera state in the top-left corner and the key
// hints along the bottom.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.PixelCamera.First(e.World)
	if !ok {
		return
	}
	pc := components.PixelCamera.Get(entry)
	input := getOrCreateInput(e)

	projection := "orthographic"
	if !pc.Host.Orthographic() {
		projection = "perspective"
	}

	lines := []string{
		fmt.Sprintf("camera: %s", pc.Camera.State()),
		fmt.Sprintf("zoom: %.2f  ppu: %.0f  %s", pc.Camera.ZoomLevel(), pc.Camera.PixelsPerUnit(), projection),
		fmt.Sprintf("downsample: %.0fx  stretch: %s", factory.DownsampleOption(pc.DownsampleIndex), factory.StretchLabel(pc.StretchIndex)),
		fmt.Sprintf("input: %s", input.LastInputMethod),
	}

	face := fonts.Regular.Get()
	for i, line := range lines {
		drawShadowedText(screen, line, cfg.HUD.Margin, cfg.HUD.Margin+(i+1)*cfg.HUD.LineHeight, face)
	}

	h := screen.Bounds().Dy()
	drawShadowedText(screen, hudHint, cfg.HUD.Margin, h-cfg.HUD.Margin, fonts.Small.Get())
}

func drawShadowedText(screen *ebiten.Image, s string, x, y int, face font.Face) {
	text.Draw(screen, s, face, x+1, y+1, cfg.HUD.ShadowColor)
	text.Draw(screen, s, face, x, y, cfg.HUD.TextColor)
}
