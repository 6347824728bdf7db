package main

import (
	"math/rand"

	"github.com/lixenwraith/kickball/core"
	"github.com/lixenwraith/kickball/parameter"
	"github.com/lixenwraith/kickball/protocol"
)

const (
	footDepth = 2.2 // metres from the sensor

	restY      = 450.0 // foot on the ground
	strikeY    = 330.0 // ball height where the foot meets it
	strikeLead = 20.0  // foot sits this far below the ball centre
	jitter     = 12.0  // max horizontal aim error
)

// player decides where the simulated foot is each frame
// A rally is one descent of the ball; a missed rally lets the ball fall
type player struct {
	rng   *rand.Rand
	miss  float64
	rally bool
	skip  bool
	aim   float64
}

func newPlayer(rng *rand.Rand, miss float64) *player {
	return &player{rng: rng, miss: miss}
}

func (p *player) footFor(st protocol.State) core.ScreenPoint {
	descending := st.Vel.Y > 0
	if descending && !p.rally {
		p.rally = true
		p.skip = p.rng.Float64() < p.miss
		p.aim = (p.rng.Float64()*2 - 1) * jitter
	}
	if !descending {
		p.rally = false
	}

	x := st.Ball.X + p.aim
	if x < 0 {
		x = 0
	}
	if x > parameter.FrameWidth {
		x = parameter.FrameWidth
	}

	if descending && !p.skip && st.Ball.Y >= strikeY {
		return core.ScreenPoint{X: x, Y: st.Ball.Y + strikeLead}
	}
	return core.ScreenPoint{X: x, Y: restY}
}
