package pixelmath

import "math"

// Layout is everything derived from one Snapshot.
type Layout struct {
	// PhysicalSize is the continuous render size before quantization.
	PhysicalSize Vec2
	// RenderSize is the quantized pixel size the camera is shaped for.
	RenderSize Size
	// Descriptor is RenderSize after downsampling; the buffer is allocated at this size.
	Descriptor Size

	// Aspect is the camera aspect, RenderSize width over height.
	Aspect float64
	// OrthographicSize is the camera half-height in world units. Zero in perspective mode.
	OrthographicSize float64

	Quad QuadBounds
}

// FrustumSize returns the frustum cross-section at depth z for a vertical field
// of view in degrees.
func FrustumSize(z, fovDegrees, aspect float64) Vec2 {
	height := 2 * z * math.Tan(fovDegrees*math.Pi/360)
	return Vec2{X: height * aspect, Y: height}
}

// PhysicalSize is the continuous render size for s.
// Orthographic cameras divide the screen by the zoom level. Perspective
// cameras have no fixed density, so the frustum at PerspectiveZ is converted to
// pixels with PixelsPerUnit; only objects at that depth render pixel perfect.
func PhysicalSize(s Snapshot) Vec2 {
	screen := s.ScreenSize.Vec2()
	var size Vec2
	if s.Orthographic {
		size = screen.Scale(1 / NormalizeZoom(s.ZoomLevel))
	} else {
		size = FrustumSize(s.PerspectiveZ, s.FieldOfView, s.ScreenSize.Aspect()).Scale(s.PixelsPerUnit)
	}
	return Vec2{X: finite(size.X), Y: finite(size.Y)}
}

// Compute derives buffer size, camera parameters and quad bounds from s.
func Compute(s Snapshot) Layout {
	zoom := NormalizeZoom(s.ZoomLevel)
	stretch := s.AspectStretch
	divisor := One
	if StretchEnabled(stretch) {
		divisor = stretch
	}

	physical := PhysicalSize(s)
	render := Quantize(physical, divisor)

	downsample := s.Downsample
	if !(downsample >= 1) {
		downsample = 1
	}
	descriptor := Quantize(render.Vec2().Scale(1/downsample), One)

	l := Layout{
		PhysicalSize: physical,
		RenderSize:   render,
		Descriptor:   descriptor,
		Aspect:       render.Aspect(),
	}

	if s.Orthographic {
		if s.PixelsPerUnit > 0 {
			l.OrthographicSize = float64(render.Height) / s.PixelsPerUnit / 2
		}
		l.Quad = CalculateQuad(render.Vec2().Scale(zoom), s.ScreenSize.Vec2(), stretch)
	} else {
		l.Quad = CalculateQuad(render.Vec2(), physical, stretch)
	}
	return l
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
