package engine

import "github.com/lixenwraith/kickball/core"

// OnTrackedFrame runs one frame for a tracked skeleton's forward-foot joint
// Order is fixed: map, step (always), resolve (only with a mapped point)
func (g *Game) OnTrackedFrame(j core.Joint) {
	if g.phase.Terminal() {
		return
	}
	g.frame++

	p := g.mapper.Map(j)
	g.lastFoot = p
	g.tracked = true
	if !p.Ok {
		g.statUnresolved.Add(1)
	}

	g.Step()
	if p.Ok {
		g.Resolve(p)
	}
}

// FootGuide returns the last mapped foot point for display
// False until a skeleton has been tracked, and whenever the last mapping was unresolved
func (g *Game) FootGuide() (core.ScreenPoint, bool) {
	if !g.tracked || !g.lastFoot.Ok {
		return core.ScreenPoint{}, false
	}
	return g.lastFoot.Point, true
}
