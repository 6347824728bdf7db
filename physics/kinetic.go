package physics

import (
	"github.com/lixenwraith/kickball/core"
	"github.com/lixenwraith/kickball/parameter"
	"github.com/lixenwraith/kickball/vmath"
)

// Integrate performs one explicit Euler step under gravity: v.y += g; p += v
func Integrate(b *core.Ball, gravity float64) {
	b.Vel.Y += gravity
	b.Pos = b.Pos.Add(b.Vel)
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(b *core.Ball, dv vmath.Vec2) {
	b.Vel = b.Vel.Add(dv)
}

// ReflectWalls handles left/right boundary collision, returns true if reflection occurred
// Position is clamped to [0, width], horizontal velocity flipped and scaled by restitution
func ReflectWalls(b *core.Ball, width, restitution float64) bool {
	if b.Pos.X < 0 {
		b.Pos.X = 0
		b.Vel = vmath.ReflectAxisX(b.Vel, restitution)
		return true
	}
	if b.Pos.X > width {
		b.Pos.X = width
		b.Vel = vmath.ReflectAxisX(b.Vel, restitution)
		return true
	}
	return false
}

// ClampFloor pins the ball to the floor line and stops it, returns true if it landed
func ClampFloor(b *core.Ball, floor float64) bool {
	if b.Pos.Y < floor {
		return false
	}
	b.Pos.Y = floor
	b.Stop()
	return true
}

// Step advances the ball one tracked frame: gravity, integration, walls, floor
// Returns true when the ball reached the floor line this step
func Step(b *core.Ball, t *parameter.Tuning) bool {
	Integrate(b, t.Gravity)
	ReflectWalls(b, t.FrameWidth, t.WallRestitution)
	return ClampFloor(b, t.FloorLine)
}
