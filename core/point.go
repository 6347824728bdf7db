package core

import "github.com/lixenwraith/kickball/vmath"

// ScreenPoint is a mapped joint in the same space as the ball
type ScreenPoint struct {
	X, Y float64
}

// Vec converts to a vector for distance math
func (p ScreenPoint) Vec() vmath.Vec2 {
	return vmath.Vec2{X: p.X, Y: p.Y}
}

// MaybePoint is the result of a coordinate mapping
// Ok is false when the mapper could not place the joint in screen space this frame
type MaybePoint struct {
	Point ScreenPoint
	Ok    bool
}

// Unresolved is the "no contact geometry" mapping result
var Unresolved = MaybePoint{}

// Resolve wraps raw mapper output; any non-finite coordinate yields Unresolved
func Resolve(x, y float64) MaybePoint {
	if !vmath.IsFinite(x) || !vmath.IsFinite(y) {
		return Unresolved
	}
	return MaybePoint{Point: ScreenPoint{X: x, Y: y}, Ok: true}
}
