package components

import (
	"github.com/automoto/pixelcam/ebitenhost"
	"github.com/automoto/pixelcam/pixelcam"
	"github.com/yohamta/donburi"
)

// PixelCameraData bundles a pixel camera with the ebiten collaborators it
// drives. The demo toggles between presets by index.
type PixelCameraData struct {
	Camera     *pixelcam.Camera
	Host       *ebitenhost.Camera
	Buffers    *ebitenhost.Buffers
	Compositor *ebitenhost.Compositor

	DownsampleIndex int
	StretchIndex    int
}

var PixelCamera = donburi.NewComponentType[PixelCameraData]()
