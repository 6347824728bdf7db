package vmath

import "math"

// Vec2 is a 2D vector in screen space (pixels, pixels/frame)
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns a + b
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Len returns the Euclidean magnitude
func (a Vec2) Len() float64 {
	return math.Hypot(a.X, a.Y)
}

// IsZero reports whether both components are exactly zero
func (a Vec2) IsZero() bool {
	return a.X == 0 && a.Y == 0
}

// IsFinite reports whether neither component is NaN or ±Inf
func (a Vec2) IsFinite() bool {
	return IsFinite(a.X) && IsFinite(a.Y)
}

// Dist returns the Euclidean distance between a and b
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// ReflectAxisX returns velocity reflected off a vertical wall, scaled by restitution
// Use for left/right screen edge collision
func ReflectAxisX(vel Vec2, restitution float64) Vec2 {
	return Vec2{X: -vel.X * restitution, Y: vel.Y}
}
