package pixelcam

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/automoto/pixelcam/shared/pixelmath"
)

// State is the lifecycle state of a Camera.
type State int

const (
	Disabled State = iota
	Enabling
	Active
)

func (s State) String() string {
	switch s {
	case Disabled:
		return "disabled"
	case Enabling:
		return "enabling"
	case Active:
		return "active"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ErrNoShader is reported when the camera is enabled without a compositing shader.
var ErrNoShader = errors.New("pixelcam: no compositing shader")

// Camera renders a HostCamera into an integer sized buffer and composites the
// buffer back over the display. It is driven by OnEnable, OnTick and OnDisable
// and is not safe for concurrent use.
type Camera struct {
	host       HostCamera
	buffers    BufferProvider
	compositor Compositor
	shader     Shader
	cfg        Config

	state  State
	failed bool

	proxy    *drawer
	fallback Material
	buffer   Buffer

	last   pixelmath.Snapshot
	layout pixelmath.Layout
}

// New returns a disabled camera. Call OnEnable to start it.
func New(host HostCamera, buffers BufferProvider, compositor Compositor, shader Shader, cfg Config) *Camera {
	return &Camera{
		host:       host,
		buffers:    buffers,
		compositor: compositor,
		shader:     shader,
		cfg:        cfg,
		layout:     pixelmath.Layout{Quad: pixelmath.FullScreen},
	}
}

func (c *Camera) State() State { return c.state }

// Failed reports whether the last OnEnable could not build the compositing material.
func (c *Camera) Failed() bool { return c.failed }

// OnEnable creates the compositing proxy and fallback material and invalidates
// the applied snapshot. If the material cannot be built the camera stays
// Disabled until OnEnable is called again.
func (c *Camera) OnEnable() {
	if c.state != Disabled {
		c.OnDisable()
	}
	c.state = Enabling
	c.failed = false
	c.proxy = &drawer{camera: c, compositor: c.compositor}

	m, err := c.newFallback()
	if err != nil {
		Logger().Warn("pixelcam: compositing material not created, camera disabled", "err", err)
		c.failed = true
		c.proxy = nil
		c.state = Disabled
		return
	}
	c.fallback = m
	c.ForceRefresh()
}

func (c *Camera) newFallback() (Material, error) {
	if c.shader == nil {
		return nil, ErrNoShader
	}
	m, err := c.shader.NewMaterial()
	if err != nil {
		return nil, fmt.Errorf("pixelcam: create fallback material: %w", err)
	}
	if m == nil {
		return nil, ErrNoShader
	}
	return m, nil
}

// OnDisable releases the buffer and fallback material and hands the display
// back to the host camera.
func (c *Camera) OnDisable() {
	c.releaseBuffer()
	if d, ok := c.fallback.(Destroyer); ok {
		d.Destroy()
	}
	c.fallback = nil
	c.proxy = nil
	c.host.ResetAspect()
	c.state = Disabled
}

// OnTick runs once per frame after the host camera rendered into the buffer.
// It recomputes when the inputs changed, otherwise it draws the quad once.
func (c *Camera) OnTick() {
	switch c.state {
	case Disabled:
		return
	case Enabling:
		c.state = Active
	}
	if !c.CheckAndRecomputeIfNeeded() {
		c.proxy.drawQuad()
	}
}

// ForceRefresh invalidates the applied snapshot so the next check recomputes.
func (c *Camera) ForceRefresh() {
	c.last = pixelmath.Snapshot{}
}

// CheckAndRecomputeIfNeeded compares the current inputs with the last applied
// ones and recomputes on any difference. It reports whether it recomputed.
func (c *Camera) CheckAndRecomputeIfNeeded() bool {
	if c.state != Active {
		return false
	}
	current := c.Capture()
	if !pixelmath.HasChanged(current, c.last) {
		return false
	}
	c.recompute(current)
	return true
}

// Capture reads the current inputs without side effects.
func (c *Camera) Capture() pixelmath.Snapshot {
	w, h := c.compositor.ScreenSize()
	near, far := c.host.NearClipPlane(), c.host.FarClipPlane()
	adv := c.cfg.resolveAdvanced(near, far)

	return pixelmath.Snapshot{
		ScreenSize:    pixelmath.Size{Width: w, Height: h},
		AspectStretch: adv.AspectStretch,
		ZoomLevel:     pixelmath.NormalizeZoom(c.cfg.ZoomLevel),
		PixelsPerUnit: c.cfg.PixelsPerUnit,
		PerspectiveZ:  adv.PerspectiveZ,
		Downsample:    adv.Downsample,
		FieldOfView:   c.host.FieldOfView(),
		FarClipPlane:  far,
		Orthographic:  c.host.Orthographic(),
	}
}

func (c *Camera) recompute(s pixelmath.Snapshot) {
	c.cfg.ZoomLevel = s.ZoomLevel
	c.layout = pixelmath.Compute(s)

	c.host.SetAspect(c.layout.Aspect)
	if s.Orthographic {
		c.host.SetOrthographicSize(c.layout.OrthographicSize)
	}

	c.releaseBuffer()
	buf, err := c.buffers.Create(BufferDescriptor{
		Size:   c.layout.Descriptor,
		Filter: FilterNearest,
		Wrap:   WrapClamp,
	})
	c.last = s
	if err != nil {
		Logger().Warn("pixelcam: buffer not created", "size", c.layout.Descriptor, "err", err)
		return
	}
	c.buffer = buf

	c.bind(c.overrideMaterial())
	c.bind(c.fallback)
	c.host.SetTargetTexture(buf)

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("pixelcam: recomputed",
			"screen", s.ScreenSize,
			"render", c.layout.RenderSize,
			"buffer", c.layout.Descriptor,
			"quad", c.layout.Quad,
			"orthographic", s.Orthographic)
	}

	c.host.RenderNow()
	c.proxy.drawQuad()
}

func (c *Camera) bind(m Material) {
	if m != nil && c.buffer != nil {
		m.SetTexture(c.buffer)
	}
}

// releaseBuffer unbinds the buffer from every material and the host camera
// before freeing it.
func (c *Camera) releaseBuffer() {
	if c.buffer == nil {
		return
	}
	for _, m := range []Material{c.fallback, c.overrideMaterial()} {
		if m != nil && m.Texture() == c.buffer {
			m.SetTexture(nil)
		}
	}
	c.host.SetTargetTexture(nil)
	c.buffers.Release(c.buffer)
	c.buffer = nil
}

func (c *Camera) overrideMaterial() Material {
	if c.cfg.Advanced == nil {
		return nil
	}
	return c.cfg.Advanced.Material
}

// SetZoomLevel sets the magnification. It is normalized on the next check.
func (c *Camera) SetZoomLevel(zoom float64) { c.cfg.ZoomLevel = zoom }

// ZoomLevel returns the normalized zoom.
func (c *Camera) ZoomLevel() float64 { return pixelmath.NormalizeZoom(c.cfg.ZoomLevel) }

// SetPixelsPerUnit ignores non-positive and infinite densities.
func (c *Camera) SetPixelsPerUnit(ppu float64) {
	if ppu > 0 && !math.IsInf(ppu, 1) {
		c.cfg.PixelsPerUnit = ppu
	}
}

func (c *Camera) PixelsPerUnit() float64 { return c.cfg.PixelsPerUnit }

// SetAdvanced replaces the advanced settings. nil restores the defaults.
func (c *Camera) SetAdvanced(a *AdvancedSettings) {
	prev := c.overrideMaterial()
	var next Material
	if a != nil {
		cp := *a
		a = &cp
		next = a.Material
	}
	if prev != nil && prev != next && c.buffer != nil && prev.Texture() == c.buffer {
		prev.SetTexture(nil)
	}
	c.cfg.Advanced = a
	c.bind(next)
}

// Advanced returns the resolved advanced settings for the current host camera.
func (c *Camera) Advanced() AdvancedSettings {
	return c.cfg.resolveAdvanced(c.host.NearClipPlane(), c.host.FarClipPlane())
}

// SetMaterial installs m as the override compositing material and binds the
// current buffer to it. nil removes the override.
func (c *Camera) SetMaterial(m Material) {
	a := DefaultAdvancedSettings(c.host.FarClipPlane())
	if c.cfg.Advanced != nil {
		a = *c.cfg.Advanced
	} else if m == nil {
		return
	}
	a.Material = m
	c.SetAdvanced(&a)
}

// CameraMaterial is the material the quad is drawn with: the override when
// set, otherwise the fallback.
func (c *Camera) CameraMaterial() Material {
	if m := c.overrideMaterial(); m != nil {
		return m
	}
	return c.fallback
}

// Layout returns the last computed layout.
func (c *Camera) Layout() pixelmath.Layout { return c.layout }

// QuadBounds returns the compositing rectangle in normalized display space.
func (c *Camera) QuadBounds() pixelmath.QuadBounds { return c.layout.Quad }

// Descriptor returns the size of the current buffer.
func (c *Camera) Descriptor() pixelmath.Size { return c.layout.Descriptor }

// Buffer returns the current buffer, or nil.
func (c *Camera) Buffer() Buffer { return c.buffer }

// CameraSize returns the current buffer size, or a zero size without a buffer.
func (c *Camera) CameraSize() pixelmath.Size {
	if c.buffer == nil {
		return pixelmath.Size{}
	}
	return pixelmath.Size{Width: c.buffer.Width(), Height: c.buffer.Height()}
}
