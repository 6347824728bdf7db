package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/kickball/core"
)

// Snapshot is an immutable copy of everything pollers may read
type Snapshot struct {
	Frame   int64
	Session uuid.UUID
	Ball    core.Ball
	Score   int
	Phase   core.Phase
	Foot    core.MaybePoint
	Tilt    int
	Status  string
}

// Snapshot copies the current state
func (g *Game) Snapshot() Snapshot {
	foot := core.Unresolved
	if p, ok := g.FootGuide(); ok {
		foot = core.MaybePoint{Point: p, Ok: true}
	}
	return Snapshot{
		Frame:   g.frame,
		Session: g.session,
		Ball:    g.ball,
		Score:   g.score,
		Phase:   g.phase,
		Foot:    foot,
		Tilt:    g.tilt,
		Status:  g.status,
	}
}
