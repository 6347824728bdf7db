package engine

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/kickball/core"
	"github.com/lixenwraith/kickball/event"
	"github.com/lixenwraith/kickball/parameter"
	"github.com/lixenwraith/kickball/status"
)

// Loop is the single owner of a Game
// Producer goroutines (tracker socket, serial reader, keyboard, HTTP) only submit;
// Run applies pending commands, then pending frames, publishing a Snapshot after every event.
// Skeleton frames share a bounded ring and are refused when it is full;
// reset, tilt and device commands travel on their own channel and are never dropped
type Loop struct {
	game    *Game
	frames  *event.EventQueue
	control chan event.GameEvent
	wake    chan struct{}
	stopped chan struct{}
	stop    sync.Once
	snap    atomic.Pointer[Snapshot]

	idleInterval time.Duration
}

// NewLoop wraps g and publishes its initial snapshot
func NewLoop(g *Game) *Loop {
	l := &Loop{
		game:         g,
		frames:       event.NewEventQueue(g.Registry().Ints.Get(status.FramesDropped)),
		control:      make(chan event.GameEvent, parameter.ControlQueueSize),
		wake:         make(chan struct{}, 1),
		stopped:      make(chan struct{}),
		idleInterval: parameter.LoopIdleInterval,
	}
	l.publishSnapshot()
	return l
}

// Game returns the owned game; only touch it from the loop goroutine or before Run
func (l *Loop) Game() *Game { return l.game }

// Snapshot returns the latest published state, safe from any goroutine
func (l *Loop) Snapshot() Snapshot {
	return *l.snap.Load()
}

// SubmitJoint implements tracking.FrameSink
// A full ring drops the frame and counts it under status.FramesDropped
func (l *Loop) SubmitJoint(j core.Joint) {
	if l.frames.Push(event.GameEvent{Type: event.EventSkeletonFrame, Payload: &event.SkeletonFramePayload{Joint: j}}) {
		l.signal()
	}
}

// SubmitTilt queues a validated elevation angle
func (l *Loop) SubmitTilt(angle int) {
	l.submit(event.GameEvent{Type: event.EventTiltRequest, Payload: &event.TiltPayload{Angle: angle}})
}

// SubmitReset queues a game reset
func (l *Loop) SubmitReset() {
	l.submit(event.GameEvent{Type: event.EventResetRequest})
}

// SubmitDeviceStatus queues a sensor availability report
func (l *Loop) SubmitDeviceStatus(connected bool, msg string) {
	l.submit(event.GameEvent{Type: event.EventDeviceStatus, Payload: &event.DeviceStatusPayload{Connected: connected, Message: msg}})
}

// submit blocks while the control channel is full; only a stopped loop discards
func (l *Loop) submit(ev event.GameEvent) {
	select {
	case l.control <- ev:
		l.signal()
	case <-l.stopped:
		log.Printf("[engine] loop stopped, %s ignored", ev.Type)
	}
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run processes submissions until ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	defer l.stop.Do(func() { close(l.stopped) })

	ticker := time.NewTicker(l.idleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
			l.Drain()
		case <-ticker.C:
			l.Drain()
		}
	}
}

// Drain handles every pending submission on the calling goroutine, returns the count
// Commands run before frames so a burst of frames never delays a reset
func (l *Loop) Drain() int {
	n := 0
	for pending := len(l.control); pending > 0; pending-- {
		l.handle(<-l.control)
		l.publishSnapshot()
		n++
	}
	for _, ev := range l.frames.Consume() {
		l.handle(ev)
		l.publishSnapshot()
		n++
	}
	return n
}

func (l *Loop) handle(ev event.GameEvent) {
	switch ev.Type {
	case event.EventSkeletonFrame:
		if p, ok := ev.Payload.(*event.SkeletonFramePayload); ok {
			l.game.OnTrackedFrame(p.Joint)
		}
	case event.EventResetRequest:
		l.game.Reset()
	case event.EventTiltRequest:
		if p, ok := ev.Payload.(*event.TiltPayload); ok {
			l.game.SetTiltAngle(p.Angle)
		}
	case event.EventDeviceStatus:
		if p, ok := ev.Payload.(*event.DeviceStatusPayload); ok {
			l.game.SetDeviceStatus(p.Connected, p.Message)
		}
	default:
		log.Printf("[engine] unexpected inbound event %s", ev.Type)
	}
}

func (l *Loop) publishSnapshot() {
	s := l.game.Snapshot()
	l.snap.Store(&s)
}
