package pixelcam

import (
	"errors"

	"github.com/automoto/pixelcam/shared/pixelmath"
)

type fakeHost struct {
	fov, near, far float64
	ortho          bool

	aspect     float64
	orthoSize  float64
	target     Buffer
	renders    int
	resets     int
	targetLogs []Buffer
}

func newFakeHost() *fakeHost {
	return &fakeHost{fov: 60, near: 0.3, far: 1000, ortho: true, aspect: 1}
}

func (h *fakeHost) FieldOfView() float64          { return h.fov }
func (h *fakeHost) NearClipPlane() float64        { return h.near }
func (h *fakeHost) FarClipPlane() float64         { return h.far }
func (h *fakeHost) Orthographic() bool            { return h.ortho }
func (h *fakeHost) SetAspect(a float64)           { h.aspect = a }
func (h *fakeHost) ResetAspect()                  { h.resets++ }
func (h *fakeHost) SetOrthographicSize(s float64) { h.orthoSize = s }
func (h *fakeHost) RenderNow()                    { h.renders++ }
func (h *fakeHost) SetTargetTexture(b Buffer) {
	h.target = b
	h.targetLogs = append(h.targetLogs, b)
}

type fakeBuffer struct {
	desc     BufferDescriptor
	released bool
}

func (b *fakeBuffer) Width() int  { return b.desc.Size.Width }
func (b *fakeBuffer) Height() int { return b.desc.Size.Height }

type fakeBuffers struct {
	created  []*fakeBuffer
	released []*fakeBuffer
	err      error

	// boundAtRelease records, per release, whether any tracked material still
	// referenced the buffer.
	materials      []*fakeMaterial
	boundAtRelease []bool
}

func (p *fakeBuffers) Create(desc BufferDescriptor) (Buffer, error) {
	if p.err != nil {
		return nil, p.err
	}
	b := &fakeBuffer{desc: desc}
	p.created = append(p.created, b)
	return b, nil
}

func (p *fakeBuffers) Release(b Buffer) {
	fb := b.(*fakeBuffer)
	bound := false
	for _, m := range p.materials {
		if m.tex == b {
			bound = true
		}
	}
	p.boundAtRelease = append(p.boundAtRelease, bound)
	fb.released = true
	p.released = append(p.released, fb)
}

type fakeMaterial struct {
	name      string
	tex       Buffer
	destroyed bool
}

func (m *fakeMaterial) SetTexture(b Buffer) { m.tex = b }
func (m *fakeMaterial) Texture() Buffer     { return m.tex }
func (m *fakeMaterial) Destroy()            { m.destroyed = true }

type fakeShader struct {
	materials []*fakeMaterial
	err       error
	onCreate  func(*fakeMaterial)
}

func (s *fakeShader) NewMaterial() (Material, error) {
	if s.err != nil {
		return nil, s.err
	}
	m := &fakeMaterial{name: "fallback"}
	s.materials = append(s.materials, m)
	if s.onCreate != nil {
		s.onCreate(m)
	}
	return m, nil
}

type drawCall struct {
	material Material
	texture  Buffer
	quad     pixelmath.QuadBounds
}

type fakeCompositor struct {
	w, h  int
	draws []drawCall
}

func (c *fakeCompositor) ScreenSize() (int, int) { return c.w, c.h }
func (c *fakeCompositor) DrawQuad(m Material, q pixelmath.QuadBounds) {
	c.draws = append(c.draws, drawCall{material: m, texture: m.Texture(), quad: q})
}

var errShaderMissing = errors.New("shader missing")

type rig struct {
	host       *fakeHost
	buffers    *fakeBuffers
	compositor *fakeCompositor
	shader     *fakeShader
	cam        *Camera
}

func newRig(opts ...Option) *rig {
	r := &rig{
		host:       newFakeHost(),
		buffers:    &fakeBuffers{},
		compositor: &fakeCompositor{w: 800, h: 600},
		shader:     &fakeShader{},
	}
	r.shader.onCreate = func(m *fakeMaterial) {
		r.buffers.materials = append(r.buffers.materials, m)
	}
	r.cam = New(r.host, r.buffers, r.compositor, r.shader, NewConfig(opts...))
	return r
}

// enable runs OnEnable and the first tick, leaving the camera Active.
func (r *rig) enable() {
	r.cam.OnEnable()
	r.cam.OnTick()
}
