package engine

import (
	"math"

	"github.com/lixenwraith/kickball/core"
	"github.com/lixenwraith/kickball/event"
	"github.com/lixenwraith/kickball/parameter"
	"github.com/lixenwraith/kickball/tracking"
)

// screenMapper treats joint X/Y as screen pixels; Z <= 0 is unresolved
var screenMapper = tracking.MapperFunc(func(j core.Joint) core.MaybePoint {
	if j.Z <= 0 {
		return core.Resolve(math.Inf(1), math.Inf(1))
	}
	return core.Resolve(j.X, j.Y)
})

// offscreen is a resolved foot far from any ball position
var offscreen = core.Joint{X: -1000, Y: -1000, Z: 1}

// unmapped is a joint the mapper cannot place
var unmapped = core.Joint{Z: 0}

type recorder struct {
	events []event.GameEvent
}

func (r *recorder) OnEvent(ev event.GameEvent) { r.events = append(r.events, ev) }

func (r *recorder) types() []event.EventType {
	out := make([]event.EventType, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func newTestGame() (*Game, *recorder) {
	rec := &recorder{}
	router := event.NewRouter()
	router.Subscribe(rec)
	g := NewGame(GameConfig{
		Tuning: parameter.DefaultTuning(),
		Mapper: screenMapper,
		Router: router,
	})
	return g, rec
}
