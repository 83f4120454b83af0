package pixelmath

// Vec2 is a 2D float vector.
type Vec2 struct {
	X, Y float64
}

// One is the identity scale.
var One = Vec2{X: 1, Y: 1}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{X: v.X * o.X, Y: v.Y * o.Y} }
func (v Vec2) Div(o Vec2) Vec2 { return Vec2{X: v.X / o.X, Y: v.Y / o.Y} }
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Size is an integer pixel size.
type Size struct {
	Width, Height int
}

// Vec2 converts the size to float components.
func (s Size) Vec2() Vec2 {
	return Vec2{X: float64(s.Width), Y: float64(s.Height)}
}

// Aspect returns width/height, or 1 for a degenerate height.
func (s Size) Aspect() float64 {
	if s.Height == 0 {
		return 1
	}
	return float64(s.Width) / float64(s.Height)
}

// IsZero reports whether either dimension is zero.
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}
