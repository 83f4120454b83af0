package ebitenhost

import (
	"math"

	"github.com/automoto/pixelcam/pixelcam"
	"github.com/hajimehoshi/ebiten/v2"
	dmath "github.com/yohamta/donburi/features/math"
)

// RenderFunc draws the scene into target as seen by cam.
type RenderFunc func(target *ebiten.Image, cam *Camera)

// Camera is a 2D/2.5D scene camera that renders into an ebiten image.
type Camera struct {
	// Position is the world point at the centre of the view.
	Position dmath.Vec2

	fieldOfView  float64
	near, far    float64
	orthographic bool

	aspect           float64
	orthographicSize float64
	target           *Buffer

	render RenderFunc
}

// CameraOptions are the fixed lens parameters.
type CameraOptions struct {
	FieldOfView  float64
	Near, Far    float64
	Orthographic bool
}

func NewCamera(opts CameraOptions, render RenderFunc) *Camera {
	return &Camera{
		fieldOfView:      opts.FieldOfView,
		near:             opts.Near,
		far:              opts.Far,
		orthographic:     opts.Orthographic,
		aspect:           1,
		orthographicSize: 1,
		render:           render,
	}
}

func (c *Camera) FieldOfView() float64   { return c.fieldOfView }
func (c *Camera) NearClipPlane() float64 { return c.near }
func (c *Camera) FarClipPlane() float64  { return c.far }
func (c *Camera) Orthographic() bool     { return c.orthographic }

func (c *Camera) SetOrthographic(ortho bool) { c.orthographic = ortho }
func (c *Camera) SetFieldOfView(fov float64) { c.fieldOfView = fov }

func (c *Camera) Aspect() float64               { return c.aspect }
func (c *Camera) SetAspect(aspect float64)      { c.aspect = aspect }
func (c *Camera) ResetAspect()                  { c.aspect = 1 }
func (c *Camera) OrthographicSize() float64     { return c.orthographicSize }
func (c *Camera) SetOrthographicSize(s float64) { c.orthographicSize = s }
func (c *Camera) SetTargetTexture(b pixelcam.Buffer) {
	buf, _ := b.(*Buffer)
	c.target = buf
}

// Target is the image the camera renders into, or nil when unassigned.
func (c *Camera) Target() *ebiten.Image {
	if c.target == nil {
		return nil
	}
	return c.target.Image
}

// RenderNow clears the target and renders the scene into it.
func (c *Camera) RenderNow() {
	img := c.Target()
	if img == nil || c.render == nil {
		return
	}
	img.Clear()
	c.render(img, c)
}

// RenderTo renders the scene over dst without clearing it. It is used when
// no pixel camera owns the target.
func (c *Camera) RenderTo(dst *ebiten.Image) {
	if dst == nil || c.render == nil {
		return
	}
	c.render(dst, c)
}

// PixelsPerWorldUnit is the screen density for content at depth in a target of
// the given height. Orthographic cameras ignore depth.
func (c *Camera) PixelsPerWorldUnit(depth float64, targetHeight int) float64 {
	var visible float64
	if c.orthographic {
		visible = 2 * c.orthographicSize
	} else {
		visible = 2 * depth * math.Tan(c.fieldOfView*math.Pi/360)
	}
	if visible <= 0 || math.IsNaN(visible) || math.IsInf(visible, 0) {
		return 0
	}
	return float64(targetHeight) / visible
}

// Project maps a world point at depth into target pixels. scale is the pixel
// size of one world unit at that depth.
func (c *Camera) Project(world dmath.Vec2, depth float64, target *ebiten.Image) (x, y, scale float64) {
	w, h := target.Bounds().Dx(), target.Bounds().Dy()
	scale = c.PixelsPerWorldUnit(depth, h)
	x = (world.X-c.Position.X)*scale + float64(w)/2
	y = (world.Y-c.Position.Y)*scale + float64(h)/2
	return math.Round(x), math.Round(y), scale
}

// Visible reports whether depth lies inside the clip planes. Orthographic
// cameras see every depth.
func (c *Camera) Visible(depth float64) bool {
	return c.orthographic || (depth >= c.near && depth <= c.far)
}
