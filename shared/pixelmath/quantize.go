package pixelmath

import "math"

const (
	// Epsilon is the tolerance used for float comparisons throughout the engine.
	Epsilon = 1e-5

	// MinTextureSize and MaxTextureSize bound every buffer dimension.
	MinTextureSize = 2
	MaxTextureSize = 4096

	// edgePadding is added to a dimension whose exact size is fractional so the
	// compositing quad has whole texels to shift into.
	edgePadding = 2
)

// Quantize converts a continuous size into a buffer size: floor(|size/divisor|),
// padded when the division is fractional, rounded up to even and clamped to
// [MinTextureSize, MaxTextureSize].
//
// A divisor component that is zero (or within Epsilon of it) is treated as 1.
func Quantize(size, divisor Vec2) Size {
	return Size{
		Width:  quantizeDim(size.X, divisor.X),
		Height: quantizeDim(size.Y, divisor.Y),
	}
}

func quantizeDim(v, divisor float64) int {
	if math.Abs(divisor) <= Epsilon {
		divisor = 1
	}
	exact := math.Abs(v / divisor)
	if math.IsNaN(exact) {
		exact = 0
	}
	if math.IsInf(exact, 0) || exact > MaxTextureSize {
		return MaxTextureSize
	}
	// Treat float noise (880/1.1 = 799.9999999) as the integer it represents.
	if r := math.Round(exact); math.Abs(exact-r) <= Epsilon {
		exact = r
	}

	n := int(math.Floor(exact))
	if math.Abs(exact-float64(n)) > Epsilon {
		n += edgePadding
	}
	if n%2 != 0 {
		n++
	}
	return clampInt(n, MinTextureSize, MaxTextureSize)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
