package pixelcam

// drawer is the compositing proxy: it owns no scene content and only presents
// the camera buffer through the compositor.
type drawer struct {
	camera     *Camera
	compositor Compositor
}

func (d *drawer) drawQuad() {
	if d == nil || d.camera.buffer == nil {
		return
	}
	m := d.camera.CameraMaterial()
	if m == nil {
		return
	}
	d.compositor.DrawQuad(m, d.camera.layout.Quad)
}
