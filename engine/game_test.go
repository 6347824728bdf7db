package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kickball/core"
	"github.com/lixenwraith/kickball/event"
	"github.com/lixenwraith/kickball/parameter"
	"github.com/lixenwraith/kickball/status"
	"github.com/lixenwraith/kickball/vmath"
)

func TestNewGameInitialState(t *testing.T) {
	g, rec := newTestGame()

	assert.Equal(t, core.PhasePlaying, g.Phase())
	assert.False(t, g.IsTerminal())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, vmath.V(320, 100), g.Ball().Pos)
	assert.True(t, g.Ball().Vel.IsZero())
	assert.Equal(t, parameter.StatusReady, g.Status())
	assert.Empty(t, rec.events)

	_, ok := g.FootGuide()
	assert.False(t, ok, "no skeleton tracked yet")
}

func TestStepUntilFloorIsTerminal(t *testing.T) {
	g, rec := newTestGame()

	for i := 0; i < 100 && !g.IsTerminal(); i++ {
		g.Step()
	}
	require.True(t, g.IsTerminal())
	assert.Equal(t, core.PhaseGameOver, g.Phase())
	assert.Equal(t, 470.0, g.Ball().Pos.Y)
	assert.True(t, g.Ball().Vel.IsZero())
	assert.Equal(t, parameter.StatusGameOver, g.Status())

	landed := g.Ball()
	for i := 0; i < 10; i++ {
		g.Step()
	}
	assert.Equal(t, landed, g.Ball(), "steps after game over are no-ops")
	assert.Equal(t, 1, rec.count(event.EventGameOver), "game over fires exactly once")
	assert.Equal(t, []event.EventType{event.EventGameOver, event.EventStatusChanged}, rec.types())
}

func TestResolveScoresOnDescendingContact(t *testing.T) {
	g, rec := newTestGame()
	g.ball = core.Ball{Pos: vmath.V(320, 300), Vel: vmath.V(0, 5)}

	assert.True(t, g.Resolve(core.Resolve(330, 310)))
	assert.Equal(t, 1, g.Score())
	assert.Less(t, g.Ball().Vel.Y, 0.0)

	require.Len(t, rec.events, 1)
	assert.Equal(t, event.EventScoreChanged, rec.events[0].Type)
	assert.Equal(t, &event.ScorePayload{Score: 1}, rec.events[0].Payload)

	// Same contact point again while rising: debounced
	assert.False(t, g.Resolve(core.Resolve(330, 310)))
	assert.Equal(t, 1, g.Score())
}

func TestResolveSkips(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		point core.MaybePoint
	}{
		{"far foot", func(g *Game) {}, core.Resolve(400, 400)},
		{"unresolved point", func(g *Game) {}, core.Unresolved},
		{"terminal", func(g *Game) { g.phase = core.PhaseGameOver }, core.Resolve(320, 300)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, rec := newTestGame()
			g.ball = core.Ball{Pos: vmath.V(320, 300), Vel: vmath.V(0, 5)}
			tt.setup(g)
			before := g.Ball()

			assert.False(t, g.Resolve(tt.point))
			assert.Equal(t, 0, g.Score())
			assert.Equal(t, before, g.Ball())
			assert.Empty(t, rec.events)
		})
	}
}

func TestReset(t *testing.T) {
	g, rec := newTestGame()
	g.ball = core.Ball{Pos: vmath.V(320, 300), Vel: vmath.V(0, 5)}
	g.Resolve(core.Resolve(320, 300))
	for !g.IsTerminal() {
		g.Step()
	}
	require.Equal(t, 1, g.Score())
	oldSession := g.Session()
	rec.events = nil

	g.Reset()

	assert.Equal(t, 0, g.Score())
	assert.False(t, g.IsTerminal())
	assert.Equal(t, core.PhasePlaying, g.Phase())
	assert.Equal(t, vmath.V(320, 100), g.Ball().Pos)
	assert.True(t, g.Ball().Vel.IsZero())
	assert.NotEqual(t, oldSession, g.Session())
	assert.Equal(t, parameter.StatusReady, g.Status())

	assert.Equal(t, []event.EventType{
		event.EventGameReset,
		event.EventScoreChanged,
		event.EventStatusChanged,
	}, rec.types())
	assert.Equal(t, &event.ScorePayload{Score: 0}, rec.events[1].Payload)
	assert.Equal(t, &event.StatusPayload{Message: parameter.StatusReady}, rec.events[2].Payload)

	// Reset while already playing is allowed
	g.Reset()
	assert.Equal(t, core.PhasePlaying, g.Phase())
}

func TestSetTiltAngle(t *testing.T) {
	reg := status.NewRegistry()
	var applied []int
	rec := &recorder{}
	router := event.NewRouter()
	router.Subscribe(rec, event.EventTiltChanged)

	g := NewGame(GameConfig{
		Tuning: parameter.DefaultTuning(),
		Mapper: screenMapper,
		Router: router,
		Status: reg,
		Elevator: ElevatorFunc(func(angle int) error {
			if angle == 13 {
				return errors.New("motor busy")
			}
			applied = append(applied, angle)
			return nil
		}),
	})

	g.SetTiltAngle(10)
	g.SetTiltAngle(99)
	g.SetTiltAngle(13)

	assert.Equal(t, []int{10, parameter.TiltMax}, applied)
	assert.Equal(t, 13, g.Tilt())
	assert.Equal(t, int64(1), reg.Ints.Get(status.TiltRejected).Load())
	assert.Len(t, rec.events, 3)
	assert.False(t, g.IsTerminal())
	assert.Equal(t, 0, g.Score())
}

func TestSetTiltWithoutDevice(t *testing.T) {
	g := NewGame(GameConfig{Tuning: parameter.DefaultTuning()})
	assert.NotPanics(t, func() { g.SetTiltAngle(5) })
	assert.Equal(t, 5, g.Tilt())
	assert.ErrorIs(t, noElevator{}.SetElevation(5), ErrElevatorNotReady)
}

func TestSetDeviceStatus(t *testing.T) {
	g, rec := newTestGame()

	g.SetDeviceStatus(false, "")
	assert.Equal(t, "sensor not detected", g.Status())

	g.SetDeviceStatus(true, "sensor started")
	assert.Equal(t, "sensor started", g.Status())
	assert.Equal(t, 2, rec.count(event.EventStatusChanged))
}
