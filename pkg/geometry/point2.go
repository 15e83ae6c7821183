package geometry

// Point2 represents a 2D point on the profile plane
type Point2 struct {
	X, Y float64
}

// NewPoint2 creates a new 2D point
func NewPoint2(x, y float64) Point2 {
	return Point2{X: x, Y: y}
}

// Add returns the sum of two points treated as vectors
func (p Point2) Add(other Point2) Point2 {
	return Point2{X: p.X + other.X, Y: p.Y + other.Y}
}

// Mul multiplies the point by a scalar
func (p Point2) Mul(scalar float64) Point2 {
	return Point2{X: p.X * scalar, Y: p.Y * scalar}
}
