package event

// EventType represents the type of game event
type EventType int

const (
	// === Inbound (producer goroutines -> update loop) ===

	// EventSkeletonFrame carries the forward-foot joint of one tracked skeleton
	// Trigger: tracking.Source | Consumer: engine.Loop | Payload: *SkeletonFramePayload
	EventSkeletonFrame EventType = iota + 1

	// EventResetRequest asks the loop to restart the game
	// Trigger: keyboard, HTTP | Consumer: engine.Loop | Payload: nil
	EventResetRequest

	// EventTiltRequest carries a validated sensor elevation angle
	// Trigger: tilt.Controller, keyboard | Consumer: engine.Loop | Payload: *TiltPayload
	EventTiltRequest

	// EventDeviceStatus reports sensor availability from the bridge
	// Trigger: network bridge | Consumer: engine.Loop | Payload: *DeviceStatusPayload
	EventDeviceStatus

	// === Outbound (game -> observers, synchronous on the loop goroutine) ===

	// EventScoreChanged fires after a kick and after reset
	// Payload: *ScorePayload
	EventScoreChanged EventType = iota + 100

	// EventStatusChanged carries a human readable status line
	// Payload: *StatusPayload
	EventStatusChanged

	// EventGameOver fires once per game when the ball lands
	// Payload: *ScorePayload (final score)
	EventGameOver

	// EventGameReset fires after the state machine re-enters Playing
	// Payload: *ResetPayload
	EventGameReset

	// EventTiltChanged fires after an angle was forwarded to the elevator
	// Payload: *TiltPayload
	EventTiltChanged
)

var eventNames = map[EventType]string{
	EventSkeletonFrame: "SkeletonFrame",
	EventResetRequest:  "ResetRequest",
	EventTiltRequest:   "TiltRequest",
	EventDeviceStatus:  "DeviceStatus",
	EventScoreChanged:  "ScoreChanged",
	EventStatusChanged: "StatusChanged",
	EventGameOver:      "GameOver",
	EventGameReset:     "GameReset",
	EventTiltChanged:   "TiltChanged",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a queued or published event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
