package pixelcam

import "github.com/automoto/pixelcam/shared/pixelmath"

// HostCamera is the scene camera whose output is redirected into the buffer.
type HostCamera interface {
	// FieldOfView is the vertical field of view in degrees.
	FieldOfView() float64
	NearClipPlane() float64
	FarClipPlane() float64
	Orthographic() bool

	SetAspect(aspect float64)
	// ResetAspect returns the aspect to the host's own default.
	ResetAspect()
	SetOrthographicSize(size float64)

	// SetTargetTexture assigns the render target. nil restores the display.
	SetTargetTexture(b Buffer)
	// RenderNow synchronously renders the scene into the assigned target.
	RenderNow()
}

// Buffer is an off-screen color target.
type Buffer interface {
	Width() int
	Height() int
}

// FilterMode selects texel sampling.
type FilterMode int

// FilterNearest is the only mode; the buffer must never blur texels.
const FilterNearest FilterMode = 0

// WrapMode selects sampling outside the texture.
type WrapMode int

// WrapClamp is the only mode; the quad never samples past the buffer edge.
const WrapClamp WrapMode = 0

// BufferDescriptor describes a buffer to allocate.
type BufferDescriptor struct {
	Size   pixelmath.Size
	Filter FilterMode
	Wrap   WrapMode
}

// BufferProvider allocates and frees buffers.
type BufferProvider interface {
	Create(desc BufferDescriptor) (Buffer, error)
	Release(b Buffer)
}

// Material binds a buffer as the texture sampled by the compositing quad.
type Material interface {
	// SetTexture binds b. nil unbinds.
	SetTexture(b Buffer)
	Texture() Buffer
}

// Destroyer is implemented by materials that hold host resources.
type Destroyer interface {
	Destroy()
}

// Shader is the compositing resource. It is resolved by the host and handed to
// New; the camera only builds its fallback material from it.
type Shader interface {
	NewMaterial() (Material, error)
}

// Compositor draws the compositing quad onto the display.
type Compositor interface {
	// ScreenSize is the display size in pixels.
	ScreenSize() (width, height int)
	// DrawQuad draws one textured quad sampling m's texture.
	DrawQuad(m Material, q pixelmath.QuadBounds)
}
