package ebitenhost

import (
	"github.com/automoto/pixelcam/pixelcam"
	"github.com/automoto/pixelcam/shared/pixelmath"
	"github.com/hajimehoshi/ebiten/v2"
)

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// Compositor draws the pixel camera quad onto the frame's screen image.
// Begin must be called with the screen before the camera ticks.
type Compositor struct {
	screen   *ebiten.Image
	vertices [4]ebiten.Vertex
	draws    int
}

// Begin sets the screen for this frame.
func (c *Compositor) Begin(screen *ebiten.Image) {
	c.screen = screen
	c.draws = 0
}

func (c *Compositor) ScreenSize() (int, int) {
	if c.screen == nil {
		return 0, 0
	}
	b := c.screen.Bounds()
	return b.Dx(), b.Dy()
}

// Draws is the number of quads drawn since Begin.
func (c *Compositor) Draws() int { return c.draws }

// DrawQuad maps the normalized quad (origin bottom-left) onto the screen
// (origin top-left) and samples the material's buffer across it.
func (c *Compositor) DrawQuad(m pixelcam.Material, q pixelmath.QuadBounds) {
	if c.screen == nil || m == nil {
		return
	}
	buf, ok := m.Texture().(*Buffer)
	if !ok || buf == nil || buf.Image == nil {
		return
	}

	sw, sh := c.ScreenSize()
	bw, bh := float64(buf.Width()), float64(buf.Height())
	for i, v := range q.Vertices() {
		c.vertices[i] = ebiten.Vertex{
			DstX:   float32(v.Pos.X * float64(sw)),
			DstY:   float32((1 - v.Pos.Y) * float64(sh)),
			SrcX:   float32(v.UV.X * bw),
			SrcY:   float32((1 - v.UV.Y) * bh),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}

	mat, _ := m.(*Material)
	if mat != nil && mat.shader != nil {
		op := &ebiten.DrawTrianglesShaderOptions{Uniforms: mat.Uniforms}
		op.Images[0] = buf.Image
		c.screen.DrawTrianglesShader(c.vertices[:], quadIndices, mat.shader, op)
	} else {
		// ebiten has no clamp-to-edge address mode. Clamp-to-zero never
		// samples past the edge for UVs inside [0, 1].
		op := &ebiten.DrawTrianglesOptions{
			Filter:  ebiten.FilterNearest,
			Address: ebiten.AddressClampToZero,
		}
		if mat != nil {
			applyColorScale(c.vertices[:], mat.ColorScale)
		}
		c.screen.DrawTriangles(c.vertices[:], quadIndices, buf.Image, op)
	}
	c.draws++
}

func applyColorScale(vs []ebiten.Vertex, cs ebiten.ColorScale) {
	for i := range vs {
		vs[i].ColorR *= cs.R()
		vs[i].ColorG *= cs.G()
		vs[i].ColorB *= cs.B()
		vs[i].ColorA *= cs.A()
	}
}
