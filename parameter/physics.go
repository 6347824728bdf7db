package parameter

import "github.com/lixenwraith/kickball/vmath"

// Screen space, matches the 640x480 colour stream the foot is mapped into
const (
	FrameWidth  = 640.0
	FrameHeight = 480.0
	FloorLine   = 470.0
)

// Ball physics defaults, per tracked frame
const (
	Gravity         = 0.5
	WallRestitution = 0.7
	KickRestitution = 0.9
	LateralNudge    = 0.05
	ContactRadius   = 35.0
	SpawnX          = 320.0
	SpawnY          = 100.0
)

// Display sizes in image pixels
const (
	BallDiameter      = 80.0
	FootGuideDiameter = 30.0
)

// Tuning is the runtime-adjustable subset of the physics constants
type Tuning struct {
	Gravity         float64    `toml:"gravity"`
	WallRestitution float64    `toml:"wall_restitution"`
	KickRestitution float64    `toml:"kick_restitution"`
	LateralNudge    float64    `toml:"lateral_nudge"`
	ContactRadius   float64    `toml:"contact_radius"`
	FrameWidth      float64    `toml:"frame_width"`
	FloorLine       float64    `toml:"floor_line"`
	Spawn           vmath.Vec2 `toml:"spawn"`
}

// DefaultTuning returns the stock game feel
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:         Gravity,
		WallRestitution: WallRestitution,
		KickRestitution: KickRestitution,
		LateralNudge:    LateralNudge,
		ContactRadius:   ContactRadius,
		FrameWidth:      FrameWidth,
		FloorLine:       FloorLine,
		Spawn:           vmath.V(SpawnX, SpawnY),
	}
}
