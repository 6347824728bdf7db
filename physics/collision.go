package physics

import (
	"github.com/lixenwraith/kickball/core"
	"github.com/lixenwraith/kickball/parameter"
	"github.com/lixenwraith/kickball/vmath"
)

// Contact measures the ball against a foot point
// dx is ball.X - foot.X, the side the foot approached from
func Contact(b *core.Ball, foot core.ScreenPoint, radius float64) (dx, dist float64, hit bool) {
	dx = b.Pos.X - foot.X
	dist = vmath.Dist(b.Pos, foot.Vec())
	// Only a descending ball can be kicked, which debounces a ball resting on the foot
	hit = dist <= radius && b.Descending()
	return dx, dist, hit
}

// Kick applies the bounce impulse: lateral nudge away from the foot, lossy upward reflection
func Kick(b *core.Ball, dx float64, t *parameter.Tuning) {
	ApplyImpulse(b, vmath.V(dx*t.LateralNudge, 0))
	b.Vel.Y = -vmath.Abs(b.Vel.Y) * t.KickRestitution
}

// Resolve kicks the ball if the foot is in contact, returns true on a kick
func Resolve(b *core.Ball, foot core.ScreenPoint, t *parameter.Tuning) bool {
	dx, _, hit := Contact(b, foot, t.ContactRadius)
	if !hit {
		return false
	}
	Kick(b, dx, t)
	return true
}
