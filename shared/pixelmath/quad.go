package pixelmath

// QuadZOffset biases the compositing quad toward the viewer so it draws over
// anything already on the display.
const QuadZOffset = -0.1

// QuadBounds is the compositing rectangle in normalized display space, where
// (0,0)-(1,1) covers the whole screen.
type QuadBounds struct {
	Min, Max Vec2
}

// FullScreen covers the display exactly.
var FullScreen = QuadBounds{Min: Vec2{}, Max: One}

// Width and Height may be negative for a flipped quad.
func (q QuadBounds) Width() float64  { return q.Max.X - q.Min.X }
func (q QuadBounds) Height() float64 { return q.Max.Y - q.Min.Y }

// Vertex is one corner of the compositing quad.
type Vertex struct {
	Pos Vec2
	UV  Vec2
	Z   float64
}

// Vertices returns the quad corners in draw order, starting bottom-left and
// winding through top-left, top-right and bottom-right.
func (q QuadBounds) Vertices() [4]Vertex {
	return [4]Vertex{
		{Pos: Vec2{X: q.Min.X, Y: q.Min.Y}, UV: Vec2{X: 0, Y: 0}, Z: QuadZOffset},
		{Pos: Vec2{X: q.Min.X, Y: q.Max.Y}, UV: Vec2{X: 0, Y: 1}, Z: QuadZOffset},
		{Pos: Vec2{X: q.Max.X, Y: q.Max.Y}, UV: Vec2{X: 1, Y: 1}, Z: QuadZOffset},
		{Pos: Vec2{X: q.Max.X, Y: q.Min.Y}, UV: Vec2{X: 1, Y: 0}, Z: QuadZOffset},
	}
}

// CalculateQuad places a buffer displayed at pixelSize over a reference area of
// the given size. The overhang on each side is half the difference, normalized
// by the reference size. The result is then scaled about its centre by
// stretch, unless either stretch component is <= Epsilon.
func CalculateQuad(pixelSize, reference, stretch Vec2) QuadBounds {
	offset := pixelSize.Sub(reference).Scale(0.5)
	offset = Vec2{X: safeDiv(offset.X, reference.X), Y: safeDiv(offset.Y, reference.Y)}

	q := QuadBounds{
		Min: Vec2{}.Sub(offset),
		Max: One.Add(offset),
	}
	return Stretch(q, stretch)
}

// Stretch scales q about its own centre. A disabled or unit stretch returns q
// untouched.
func Stretch(q QuadBounds, stretch Vec2) QuadBounds {
	if !StretchEnabled(stretch) || stretch == One {
		return q
	}
	center := q.Min.Add(q.Max).Scale(0.5)
	return QuadBounds{
		Min: q.Min.Sub(center).Mul(stretch).Add(center),
		Max: q.Max.Sub(center).Mul(stretch).Add(center),
	}
}

func safeDiv(v, d float64) float64 {
	if d == 0 {
		return 0
	}
	return v / d
}
