package engine

import (
	"log"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lixenwraith/kickball/core"
	"github.com/lixenwraith/kickball/event"
	"github.com/lixenwraith/kickball/parameter"
	"github.com/lixenwraith/kickball/physics"
	"github.com/lixenwraith/kickball/status"
	"github.com/lixenwraith/kickball/tracking"
	"github.com/lixenwraith/kickball/vmath"
)

// GameConfig wires a Game to its collaborators
// Nil Elevator, Router or Status get inert defaults so the game runs without a device
type GameConfig struct {
	Tuning   parameter.Tuning
	Mapper   tracking.Mapper
	Elevator Elevator
	Router   *event.Router
	Status   *status.Registry
}

// Game owns the ball, the score and the Playing/GameOver state machine
// Not safe for concurrent use: exactly one goroutine (normally Loop) drives it
type Game struct {
	tuning   parameter.Tuning
	mapper   tracking.Mapper
	elevator Elevator
	router   *event.Router
	reg      *status.Registry

	ball    core.Ball
	score   int
	phase   core.Phase
	session uuid.UUID
	status  string
	tilt    int
	frame   int64

	// Last mapping result, kept for the foot guide between frames
	lastFoot core.MaybePoint
	tracked  bool

	statKicks        *atomic.Int64
	statUnresolved   *atomic.Int64
	statTiltRejected *atomic.Int64
}

// NewGame creates a game in the Playing state with the ball at spawn
func NewGame(cfg GameConfig) *Game {
	if cfg.Mapper == nil {
		cfg.Mapper = tracking.NewColorMapper()
	}
	if cfg.Elevator == nil {
		cfg.Elevator = noElevator{}
	}
	if cfg.Router == nil {
		cfg.Router = event.NewRouter()
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}

	return &Game{
		tuning:           cfg.Tuning,
		mapper:           cfg.Mapper,
		elevator:         cfg.Elevator,
		router:           cfg.Router,
		reg:              cfg.Status,
		ball:             core.NewBall(cfg.Tuning.Spawn),
		phase:            core.PhasePlaying,
		session:          uuid.New(),
		status:           parameter.StatusReady,
		statKicks:        cfg.Status.Ints.Get(status.Kicks),
		statUnresolved:   cfg.Status.Ints.Get(status.FramesUnresolved),
		statTiltRejected: cfg.Status.Ints.Get(status.TiltRejected),
	}
}

// Router exposes the observer registry; subscribe before the loop starts
func (g *Game) Router() *event.Router { return g.router }

// Registry returns the counters the game and its loop write
func (g *Game) Registry() *status.Registry { return g.reg }

// Tuning returns the physics constants in use
func (g *Game) Tuning() parameter.Tuning { return g.tuning }

// Ball returns a copy of the ball state
func (g *Game) Ball() core.Ball { return g.ball }

// Score returns the number of kicks this game
func (g *Game) Score() int { return g.score }

// Phase returns the state machine state
func (g *Game) Phase() core.Phase { return g.phase }

// IsTerminal reports whether the game is over
func (g *Game) IsTerminal() bool { return g.phase.Terminal() }

// Session identifies the current game; it changes on every reset
func (g *Game) Session() uuid.UUID { return g.session }

// Status returns the last status line
func (g *Game) Status() string { return g.status }

// Tilt returns the last requested elevation angle
func (g *Game) Tilt() int { return g.tilt }

// Frame returns the number of tracked frames processed since start
func (g *Game) Frame() int64 { return g.frame }

// Step advances the ball one frame while playing
// Landing on the floor moves the game to GameOver and notifies observers once
func (g *Game) Step() {
	if g.phase.Terminal() {
		return
	}
	if physics.Step(&g.ball, &g.tuning) {
		g.phase = core.PhaseGameOver
		g.publish(event.EventGameOver, &event.ScorePayload{Score: g.score})
		g.setStatus(parameter.StatusGameOver)
	}
}

// Resolve checks foot contact against a mapped point and scores a kick
// Unresolved points and a finished game are skipped without error
func (g *Game) Resolve(p core.MaybePoint) bool {
	if g.phase.Terminal() || !p.Ok {
		return false
	}
	if !physics.Resolve(&g.ball, p.Point, &g.tuning) {
		return false
	}
	g.score++
	g.statKicks.Add(1)
	g.publish(event.EventScoreChanged, &event.ScorePayload{Score: g.score})
	return true
}

// Reset discards the current game and starts a new one from spawn
func (g *Game) Reset() {
	g.ball = core.NewBall(g.tuning.Spawn)
	g.score = 0
	g.phase = core.PhasePlaying
	g.session = uuid.New()

	g.publish(event.EventGameReset, &event.ResetPayload{Session: g.session})
	g.publish(event.EventScoreChanged, &event.ScorePayload{Score: 0})
	g.setStatus(parameter.StatusReady)
}

// SetTiltAngle forwards an elevation angle to the sensor
// The angle is clamped again here; elevator failures never reach game state
func (g *Game) SetTiltAngle(angle int) {
	angle = vmath.Clamp(angle, parameter.TiltMin, parameter.TiltMax)
	g.tilt = angle
	if err := g.elevator.SetElevation(angle); err != nil {
		g.statTiltRejected.Add(1)
		log.Printf("[engine] tilt %d not applied: %v", angle, err)
	}
	g.publish(event.EventTiltChanged, &event.TiltPayload{Angle: angle})
}

// SetDeviceStatus surfaces a sensor availability change as a status line
func (g *Game) SetDeviceStatus(connected bool, msg string) {
	if msg == "" {
		if connected {
			msg = "sensor connected"
		} else {
			msg = "sensor not detected"
		}
	}
	g.setStatus(msg)
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.publish(event.EventStatusChanged, &event.StatusPayload{Message: msg})
}

func (g *Game) publish(t event.EventType, payload any) {
	g.router.Publish(event.GameEvent{Type: t, Payload: payload, Frame: g.frame})
}
