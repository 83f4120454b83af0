package pixelmath

import "math"

// MinZoom is the smallest zoom magnitude the engine accepts.
const MinZoom = 0.05

// Snapshot captures every input that affects buffer sizing and quad geometry.
// The zero value is the "never applied" sentinel: its screen size is zero, so it
// never equals a snapshot captured from a live display.
type Snapshot struct {
	ScreenSize    Size
	AspectStretch Vec2
	ZoomLevel     float64
	PixelsPerUnit float64
	PerspectiveZ  float64
	Downsample    float64

	FieldOfView  float64
	FarClipPlane float64
	Orthographic bool
}

// Equal reports whether two snapshots would produce the same layout.
// Screen size and aspect stretch must match exactly and floats within Epsilon.
// Perspective-only fields are ignored when both snapshots are orthographic.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Orthographic != o.Orthographic {
		return false
	}
	if s.ScreenSize != o.ScreenSize || s.AspectStretch != o.AspectStretch {
		return false
	}
	if !nearlyEqual(s.ZoomLevel, o.ZoomLevel) ||
		!nearlyEqual(s.PixelsPerUnit, o.PixelsPerUnit) ||
		!nearlyEqual(s.Downsample, o.Downsample) {
		return false
	}
	if s.Orthographic {
		return true
	}
	return nearlyEqual(s.PerspectiveZ, o.PerspectiveZ) &&
		nearlyEqual(s.FieldOfView, o.FieldOfView) &&
		nearlyEqual(s.FarClipPlane, o.FarClipPlane)
}

// HasChanged reports whether current requires a recompute relative to last.
func HasChanged(current, last Snapshot) bool {
	return !current.Equal(last)
}

// NormalizeZoom keeps the sign of zoom and raises its magnitude to at least
// MinZoom. A zero zoom is treated as positive; NaN and infinite zooms become 1.
func NormalizeZoom(zoom float64) float64 {
	if !isFinite(zoom) {
		return 1
	}
	sign := 1.0
	if zoom < 0 {
		sign = -1
	}
	return math.Max(MinZoom, math.Abs(zoom)) * sign
}

// ClampPerspectiveZ clamps z into [near, far]. If the planes are inverted the
// far plane wins. A NaN depth takes the middle of the far plane.
func ClampPerspectiveZ(z, near, far float64) float64 {
	if near > far {
		return far
	}
	if math.IsNaN(z) {
		z = far / 2
	}
	return math.Max(near, math.Min(far, z))
}

// NormalizeStretch replaces a stretch with a NaN or infinite component by One.
func NormalizeStretch(stretch Vec2) Vec2 {
	if !isFinite(stretch.X) || !isFinite(stretch.Y) {
		return One
	}
	return stretch
}

// StretchEnabled reports whether both stretch components are usable.
func StretchEnabled(stretch Vec2) bool {
	return stretch.X > Epsilon && stretch.Y > Epsilon
}

// nearlyEqual treats equal infinities and two NaNs as equal so values coming
// straight from the host never force a recompute on their own.
func nearlyEqual(a, b float64) bool {
	if a == b || (math.IsNaN(a) && math.IsNaN(b)) {
		return true
	}
	return math.Abs(a-b) <= Epsilon
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
