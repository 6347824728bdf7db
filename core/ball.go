package core

import "github.com/lixenwraith/kickball/vmath"

// Ball is the only simulated body
// Pos is in colour-image screen space, Vel in pixels per tracked frame
type Ball struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
}

// NewBall returns a ball at rest at spawn
func NewBall(spawn vmath.Vec2) Ball {
	return Ball{Pos: spawn}
}

// Stop zeroes velocity, used when the ball lands
func (b *Ball) Stop() {
	b.Vel = vmath.Vec2{}
}

// Descending reports whether the ball is moving down the screen
func (b *Ball) Descending() bool {
	return b.Vel.Y > 0
}
