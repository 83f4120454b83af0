package systems

import (
	"image/color"
	"math"

	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/ebitenhost"
	"github.com/automoto/pixelcam/shared/leveldata"
	"github.com/automoto/pixelcam/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

type tileKey struct {
	layer string
	id    uint32
}

var (
	tileImages = map[tileKey]*ebiten.Image{}
	tileDrawOp = &ebiten.DrawImageOptions{}
)

// NewWorldRenderer returns the render callback of the scene camera. It draws
// the level's layers far to near and the player on the nearest solid layer.
func NewWorldRenderer(e *ecs.ECS) ebitenhost.RenderFunc {
	return func(target *ebiten.Image, cam *ebitenhost.Camera) {
		target.Fill(cfg.World.BackgroundColor)

		levelEntry, ok := components.Level.First(e.World)
		if !ok {
			return
		}
		world := components.Level.Get(levelEntry).World
		if world == nil {
			return
		}

		for _, layer := range world.Layers {
			if !cam.Visible(layer.Depth) {
				continue
			}
			drawLayer(target, cam, world.TileSize, layer)
		}

		depth := playerDepth(world)
		if cam.Visible(depth) {
			drawPlayer(e, target, cam, world.TileSize, depth)
			if GetOrCreateSettings(e).Debug {
				drawColliders(e, target, cam, world.TileSize, depth)
			}
		}
	}
}

func drawLayer(target *ebiten.Image, cam *ebitenhost.Camera, tileSize int, layer leveldata.TileLayer) {
	tw, th := target.Bounds().Dx(), target.Bounds().Dy()
	for _, t := range layer.Tiles {
		x, y, scale := cam.Project(dmath.Vec2{X: t.X, Y: t.Y}, layer.Depth, target)
		if scale <= 0 {
			return
		}
		if x+scale < 0 || y+scale < 0 || x > float64(tw) || y > float64(th) {
			continue
		}

		img := tileImage(layer.Name, t.ID, tileSize)
		s := scale / float64(tileSize)
		tileDrawOp.GeoM.Reset()
		tileDrawOp.GeoM.Scale(s, s)
		tileDrawOp.GeoM.Translate(x, y)
		tileDrawOp.Filter = ebiten.FilterNearest
		target.DrawImage(img, tileDrawOp)
	}
}

func drawPlayer(e *ecs.ECS, target *ebiten.Image, cam *ebitenhost.Camera, tileSize int, depth float64) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(entry)
	ts := float64(tileSize)

	x, y, scale := cam.Project(dmath.Vec2{X: obj.X / ts, Y: obj.Y / ts}, depth, target)
	w := math.Round(obj.W / ts * scale)
	h := math.Round(obj.H / ts * scale)
	vector.FillRect(target, float32(x), float32(y), float32(w), float32(h), cfg.Player.Color, false)

	// Eye on the facing side
	player := components.Player.Get(entry)
	eye := math.Max(1, math.Round(scale/8))
	ex := x + w/2 + player.Direction*w/4 - eye/2
	vector.FillRect(target, float32(math.Round(ex)), float32(y+eye*2), float32(eye), float32(eye), color.Black, false)
}

func drawColliders(e *ecs.ECS, target *ebiten.Image, cam *ebitenhost.Camera, tileSize int, depth float64) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	ts := float64(tileSize)
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		x, y, scale := cam.Project(dmath.Vec2{X: obj.X / ts, Y: obj.Y / ts}, depth, target)
		w := obj.W / ts * scale
		h := obj.H / ts * scale
		vector.StrokeRect(target, float32(x), float32(y), float32(w), float32(h), 1, cfg.Debug.ColliderColor, false)
	}
}

// playerDepth is the depth of the first solid layer, falling back to the
// configured pixel perfect depth.
func playerDepth(world *leveldata.World) float64 {
	for _, l := range world.Layers {
		if l.Solid {
			return l.Depth
		}
	}
	return cfg.PixelCamera.PerspectiveZ
}

// tileImage lazily builds a bevelled tile in the layer's color. Tile IDs
// shade the base color so neighbouring tiles stay distinguishable.
func tileImage(layer string, id uint32, size int) *ebiten.Image {
	key := tileKey{layer: layer, id: id}
	if img, ok := tileImages[key]; ok {
		return img
	}

	base, ok := cfg.World.LayerColors[layer]
	if !ok {
		base = cfg.World.FallbackColor
	}
	base = shade(base, 1-0.08*float64(id%4))
	light := shade(base, 1.25)
	dark := shade(base, 0.7)

	img := ebiten.NewImage(size, size)
	img.Fill(base)
	s := float32(size)
	vector.FillRect(img, 0, 0, s, 1, light, false)
	vector.FillRect(img, 0, 0, 1, s, light, false)
	vector.FillRect(img, 0, s-1, s, 1, dark, false)
	vector.FillRect(img, s-1, 0, 1, s, dark, false)
	// A single texel speck makes pixel snapping visible
	vector.FillRect(img, s/4, s/4, 1, 1, light, false)

	tileImages[key] = img
	return img
}

func shade(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Max(0, math.Min(255, float64(v)*f)))
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}
